package portal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phuket_estate/internal/adapters/portal"
)

func TestRevalidate_SendsTagAndSecret(t *testing.T) {
	var gotTag, gotSecret string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTag = r.URL.Query().Get("tag")
		gotSecret = r.URL.Query().Get("secret")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"revalidated":true}`))
	}))
	defer ts.Close()

	cl := portal.New(ts.URL, "s3cret", time.Second)
	if err := cl.Revalidate(context.Background(), "properties"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotTag != "properties" || gotSecret != "s3cret" {
		t.Fatalf("unexpected query: tag=%q secret=%q", gotTag, gotSecret)
	}
}

func TestRevalidate_BadSecret(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	cl := portal.New(ts.URL, "wrong", time.Second)
	if err := cl.Revalidate(context.Background(), "properties"); err != portal.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRevalidate_Unreachable(t *testing.T) {
	// closed server: the call must fail quickly, not hang
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	cl := portal.New(ts.URL, "s3cret", 500*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := cl.Revalidate(ctx, "properties"); err == nil {
		t.Fatalf("expected error for unreachable portal")
	}
}

func TestRevalidate_DisabledWithoutSecret(t *testing.T) {
	cl := portal.New("http://localhost:0", "", time.Second)
	if err := cl.Revalidate(context.Background(), "properties"); err != portal.ErrDisabled {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"phuket_estate/internal/adapters/observability"
)

var (
	ErrUnauthorized = errors.New("portal: invalid revalidation secret")
	ErrDisabled     = errors.New("portal: revalidation disabled")
)

// Client calls the portal's cache-revalidation endpoint. The call is
// best-effort by contract: callers log failures and move on, so the client
// keeps a short timeout and a rate limiter rather than retrying.
type Client struct {
	base   string
	secret string
	hc     *http.Client
	rl     *rate.Limiter
}

func New(base, secret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		base:   base,
		secret: secret,
		hc:     &http.Client{Timeout: timeout},
		rl:     rate.NewLimiter(rate.Limit(5), 5),
	}
}

// Revalidate asks the portal to drop cached pages for tag
// (e.g. "properties" or "properties:villa-bang-tao").
func (c *Client) Revalidate(ctx context.Context, tag string) error {
	if c.secret == "" {
		return ErrDisabled
	}
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("tag", tag)
	q.Set("secret", c.secret)
	u := fmt.Sprintf("%s/api/revalidate?%s", c.base, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "phuket-estate/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("portal", "revalidate", 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	observability.ObserveExternal("portal", "revalidate", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("portal: revalidate returned %d", resp.StatusCode)
	}
}

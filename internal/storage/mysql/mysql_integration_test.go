//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"phuket_estate/internal/domain"
	mysqlrepo "phuket_estate/internal/storage/mysql"
)

func pstr(s string) *string { return &s }
func pint64(i int64) *int64 { return &i }

func migrationsDir(t *testing.T) string {
	t.Helper()
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	// default to the repo's migrations directory
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("migrations dir %s missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=estate",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "estate")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func seedOne(t *testing.T, repo *mysqlrepo.Repo) string {
	t.Helper()
	ctx := context.Background()

	agent := domain.Agent{ID: "a0000000-0000-0000-0000-000000000001", Name: "Alex Phuket", Email: "alex@phuket-estate.com"}
	if err := repo.UpsertAgent(ctx, agent); err != nil {
		t.Fatalf("UpsertAgent: %v", err)
	}

	id := "p0000000-0000-0000-0000-000000000001"
	p := domain.Property{
		ID: id, Slug: "villa-bang-tao", Price: 45000000,
		Lat: 7.98, Lng: 98.29, Type: "VILLA", Status: "AVAILABLE",
		AgentID: pstr(agent.ID),
	}
	if err := repo.UpsertProperty(ctx, p); err != nil {
		t.Fatalf("UpsertProperty: %v", err)
	}
	for _, tr := range []struct{ lang, field, content string }{
		{"EN", "title", "Luxury Villa in Bang Tao"},
		{"EN", "description", "A beautiful villa near the beach."},
		{"RU", "title", "Роскошная вилла в Банг Тао"},
	} {
		if err := repo.UpsertTranslation(ctx, domain.Translation{
			EntityID: id, EntityType: domain.EntityTypeProperty,
			Field: tr.field, Lang: tr.lang, Content: tr.content,
		}); err != nil {
			t.Fatalf("UpsertTranslation %s/%s: %v", tr.field, tr.lang, err)
		}
	}
	return id
}

func TestRepo_MySQL_UpsertAndRead(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()
	id := seedOne(t, repo)

	got, err := repo.GetBySlug(ctx, "villa-bang-tao")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != id || got.Price != 45000000 || len(got.Translations) != 3 {
		t.Fatalf("unexpected property: %+v", got)
	}

	v := domain.Resolve(got.Property, got.Translations, "RU", domain.DefaultResolveConfig())
	if v.Title != "Роскошная вилла в Банг Тао" {
		t.Fatalf("RU title: %q", v.Title)
	}
	if v.Description != "A beautiful villa near the beach." {
		t.Fatalf("RU description should fall back to EN: %q", v.Description)
	}

	if _, err := repo.GetBySlug(ctx, "no-such"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := repo.ListProperties(ctx)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(all) != 1 || len(all[0].Translations) != 3 {
		t.Fatalf("unexpected list: %+v", all)
	}
}

func TestRepo_MySQL_TranslationUpsertIdempotent(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()
	id := seedOne(t, repo)

	for i := 0; i < 2; i++ {
		if err := repo.UpsertTranslation(ctx, domain.Translation{
			EntityID: id, EntityType: domain.EntityTypeProperty,
			Field: "title", Lang: "TH", Content: "วิลล่าหรูในบางเทา",
		}); err != nil {
			t.Fatalf("UpsertTranslation #%d: %v", i, err)
		}
	}

	var n int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM translations WHERE entity_id=? AND entity_type=? AND field=? AND lang=?`,
		id, domain.EntityTypeProperty, "title", "TH",
	).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one (title, TH) row, got %d", n)
	}
}

func TestRepo_MySQL_UniqueKeyRejectsDuplicateTuple(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	id := seedOne(t, repo)

	// a plain INSERT bypassing the upsert must hit the unique key
	_, err := db.Exec(
		`INSERT INTO translations (entity_id, entity_type, field, lang, content) VALUES (?, ?, ?, ?, ?)`,
		id, domain.EntityTypeProperty, "title", "EN", "duplicate",
	)
	if err == nil {
		t.Fatalf("expected duplicate-key error")
	}
}

func TestRepo_MySQL_UpdateProperty(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()
	id := seedOne(t, repo)

	// combined base + translated update lands atomically
	got, err := repo.UpdateProperty(ctx, id, domain.UpdatePatch{
		Price: pint64(47000000),
		Title: pstr("Updated Villa"),
	}, "EN")
	if err != nil {
		t.Fatalf("UpdateProperty: %v", err)
	}
	if got.Price != 47000000 {
		t.Fatalf("price: %d", got.Price)
	}
	foundEN := false
	for _, tr := range got.Translations {
		if tr.Field == "title" && tr.Lang == "EN" {
			foundEN = true
			if tr.Content != "Updated Villa" {
				t.Fatalf("EN title: %q", tr.Content)
			}
		}
		if tr.Field == "title" && tr.Lang == "RU" && tr.Content != "Роскошная вилла в Банг Тао" {
			t.Fatalf("RU title must be untouched: %q", tr.Content)
		}
	}
	if !foundEN {
		t.Fatalf("EN title row missing: %+v", got.Translations)
	}

	// price-only patch leaves translations alone
	before := len(got.Translations)
	got, err = repo.UpdateProperty(ctx, id, domain.UpdatePatch{Price: pint64(100)}, "EN")
	if err != nil {
		t.Fatalf("UpdateProperty price-only: %v", err)
	}
	if len(got.Translations) != before {
		t.Fatalf("translations changed on price-only update")
	}

	// lazily creates a row for a language seen for the first time
	got, err = repo.UpdateProperty(ctx, id, domain.UpdatePatch{Title: pstr("วิลล่าหรู")}, "TH")
	if err != nil {
		t.Fatalf("UpdateProperty TH: %v", err)
	}
	if len(got.Translations) != before+1 {
		t.Fatalf("expected a new TH row, have %d rows", len(got.Translations))
	}

	if _, err := repo.UpdateProperty(ctx, "missing-id", domain.UpdatePatch{Price: pint64(1)}, "EN"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

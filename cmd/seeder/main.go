package main

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"phuket_estate/internal/adapters/observability"
	redisad "phuket_estate/internal/adapters/redis"
	"phuket_estate/internal/domain"
	"phuket_estate/internal/shared"
	mysqlrepo "phuket_estate/internal/storage/mysql"
)

const seedWorkers = 4

// seedID derives a stable uuid from a seed key, so re-running the seeder
// upserts the same rows instead of inserting new ones.
func seedID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("phuket-estate/"+kind+"/"+key)).String()
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("properties", len(seedProperties)).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	agent := seedAgent
	agent.ID = seedID("agent", agent.Email)
	if err := repo.UpsertAgent(ctx, agent); err != nil {
		log.Fatal().Err(err).Msg("upsert agent failed")
	}
	log.Info().Str("name", agent.Name).Msg("agent seeded")

	sem := semaphore.NewWeighted(int64(seedWorkers))
	var wg sync.WaitGroup

	for _, sp := range seedProperties {
		sp := sp

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedOne(ctx, repo, agent.ID, sp); err != nil {
				log.Warn().Str("slug", sp.Slug).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("slug", sp.Slug).Msg("seed ok")
		}()
	}
	wg.Wait()

	// drop any stale cached views so the portal sees seeded data immediately
	for _, sp := range seedProperties {
		for _, l := range cfg.Langs {
			_ = cache.Del(ctx, fmt.Sprintf("property:%s:%s", sp.Slug, l))
		}
	}
	for _, l := range cfg.Langs {
		_ = cache.Del(ctx, fmt.Sprintf("properties:%s", l))
	}

	log.Info().Msg("seeding completed")
}

func seedOne(ctx context.Context, repo *mysqlrepo.Repo, agentID string, sp seedProperty) error {
	id := seedID("property", sp.Slug)
	p := domain.Property{
		ID:      id,
		Slug:    sp.Slug,
		Price:   sp.Price,
		Lat:     sp.Lat,
		Lng:     sp.Lng,
		Type:    sp.Type,
		Status:  sp.Status,
		AgentID: &agentID,
	}
	if err := repo.UpsertProperty(ctx, p); err != nil {
		return fmt.Errorf("upsert property: %w", err)
	}

	// the slug may already exist with a different id; seed translations
	// against the row actually stored
	stored, err := repo.GetBySlug(ctx, sp.Slug)
	if err != nil {
		return fmt.Errorf("reload property: %w", err)
	}
	for _, st := range sp.Translations {
		if err := repo.UpsertTranslation(ctx, domain.Translation{
			EntityID:   stored.ID,
			EntityType: domain.EntityTypeProperty,
			Field:      st.Field,
			Lang:       st.Lang,
			Content:    st.Content,
		}); err != nil {
			return fmt.Errorf("upsert translation %s/%s: %w", st.Field, st.Lang, err)
		}
	}
	return nil
}

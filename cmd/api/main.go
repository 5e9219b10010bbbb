package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "phuket_estate/internal/adapters/http_server"
	"phuket_estate/internal/adapters/observability"
	"phuket_estate/internal/adapters/portal"
	redisad "phuket_estate/internal/adapters/redis"
	"phuket_estate/internal/app"
	"phuket_estate/internal/domain"
	"phuket_estate/internal/shared"
	mysqlrepo "phuket_estate/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	resolveCfg := domain.ResolveConfig{
		Fields:    []string{domain.FieldTitle, domain.FieldDescription},
		Fallbacks: []string{cfg.DefaultLang},
	}
	q := app.NewQueryService(repo, cache, resolveCfg, cfg.CacheTTL)
	rev := portal.New(cfg.PortalBaseURL, cfg.RevalidateSecret, cfg.RevalidateTimeout)
	adm := app.NewAdminService(repo, cache, rev, cfg.Langs)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Adm: adm})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"nric-gateway/internal/identifier"
	"nric-gateway/internal/identifier/store"
	"nric-gateway/internal/identifier/store/cache"
	"nric-gateway/internal/jwtauth"
	"nric-gateway/internal/platform/config"
	"nric-gateway/internal/platform/httpserver"
	"nric-gateway/internal/platform/logger"
	"nric-gateway/internal/platform/metrics"
	platformredis "nric-gateway/internal/platform/redis"
	httptransport "nric-gateway/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	registry, cleanup, err := buildRegistry(cfg)
	if err != nil {
		log.Error("failed to build registry store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	m := metrics.New()
	tokens := jwtauth.New(cfg.JWTSigningKey, cfg.JWTIssuer)

	svc := identifier.NewService(registry)
	h := identifier.NewHandler(svc, log, m, tokens)
	router := httptransport.NewRouter(h)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting nric-gateway", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildRegistry selects the registry backend: PostgreSQL when configured,
// in-memory otherwise, with an optional Redis read-through cache on top.
func buildRegistry(cfg config.Server) (store.Store, func(), error) {
	cleanup := func() {}

	var registry store.Store = store.NewInMemory()
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, cleanup, err
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, cleanup, err
		}
		registry = store.NewPostgres(db)
		cleanup = func() { _ = db.Close() }
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	if redisClient != nil {
		inner := cleanup
		cleanup = func() {
			_ = redisClient.Close()
			inner()
		}
		registry = cache.New(registry, redisClient.Client, cfg.LookupCacheTTL)
	}

	return registry, cleanup, nil
}

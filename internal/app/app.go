package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/clubpulse/matchday/internal/config"
	"github.com/clubpulse/matchday/internal/infrastructure/notify"
	"github.com/clubpulse/matchday/internal/infrastructure/repository/postgres"
	"github.com/clubpulse/matchday/internal/interfaces/httpapi"
	"github.com/clubpulse/matchday/internal/platform/cache"
	idgen "github.com/clubpulse/matchday/internal/platform/id"
	"github.com/clubpulse/matchday/internal/platform/logging"
	"github.com/clubpulse/matchday/internal/platform/resilience"
	"github.com/clubpulse/matchday/internal/usecase"
)

// App bundles the wired service: database pool, usecase services and the
// HTTP server. Close releases the pool after the server has shut down.
type App struct {
	Server *http.Server

	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := postgres.NewStore(db)
	locks := resilience.NewKeyedMutex()
	cacheTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		cacheTTL = 0
	}
	cacheStore := cache.NewStore(cacheTTL)

	var notifier usecase.Notifier = notify.NewWebhookPublisher(notify.WebhookPublisherConfig{
		URL:                   webhookURL(cfg),
		Token:                 cfg.WebhookToken,
		Timeout:               cfg.WebhookTimeout,
		CircuitFailureCount:   cfg.WebhookCircuitFailureCount,
		CircuitOpenTimeout:    cfg.WebhookCircuitOpenTimeout,
		CircuitHalfOpenMaxReq: cfg.WebhookCircuitHalfOpenMaxReq,
	}, logger)

	ingestionSvc := usecase.NewIngestionService(store, idgen.NewRandomGenerator(), locks, cacheStore, notifier, logger)
	statsSvc := usecase.NewStatsService(store, cacheStore)
	resyncSvc := usecase.NewResyncService(store, locks, cacheStore)
	seasonSvc := usecase.NewSeasonService(store, locks, cacheStore)

	handler := httpapi.NewHandler(ingestionSvc, statsSvc, resyncSvc, seasonSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server: server,
		cfg:    cfg,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	pingTimeout := cfg.ReadTimeout
	if pingTimeout <= 0 {
		pingTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func webhookURL(cfg config.Config) string {
	if !cfg.WebhookEnabled {
		return ""
	}
	return cfg.WebhookURL
}

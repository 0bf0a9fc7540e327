package main

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/cemsak/lyntos-updated-sub006/internal/api"
	"github.com/cemsak/lyntos-updated-sub006/internal/config"
	"github.com/cemsak/lyntos-updated-sub006/internal/engine"
	kafkaevents "github.com/cemsak/lyntos-updated-sub006/internal/events/kafka"
	interfaces "github.com/cemsak/lyntos-updated-sub006/internal/interfaces"
	"github.com/cemsak/lyntos-updated-sub006/internal/recon"
	"github.com/cemsak/lyntos-updated-sub006/internal/storage/memory"
	"github.com/cemsak/lyntos-updated-sub006/internal/storage/postgres"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)

	// Postgres when configured, otherwise the in-memory store for local work.
	var store interfaces.SourceStore
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Fatal("opening database")
		}
		if err := db.Ping(); err != nil {
			logger.WithError(err).Fatal("pinging database")
		}
		store = postgres.NewPostgresSourceStore(db)
		logger.Info("using postgres source store")
	} else {
		store = memory.NewMemorySourceStore()
		logger.Warn("DATABASE_URL not set, using in-memory source store")
	}

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafkaevents.NewPublisher(cfg.KafkaBrokers)
		logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka publisher enabled")
	}

	eng := engine.New(engine.Config{
		Tolerance:          recon.Tolerance{Abs: cfg.ToleranceAbs, Rel: cfg.ToleranceRel},
		LargeDiffThreshold: cfg.LargeDiffThreshold,
	}, logger)

	server := api.NewServer(eng, store, publisher, logger)

	logger.WithField("port", cfg.Port).Info("starting reconciliation service")
	if err := server.Router().Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

// Package main is the entry point for the jokester web app.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"jokester/src/app/server"
	"jokester/src/infra/config"
	"jokester/src/infra/db"
	"jokester/src/infra/logger"
	"jokester/src/infra/repo"
	"jokester/src/infra/security"
	"jokester/src/infra/session"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"storage", cfg.Database.Storage,
	)

	deps := server.Deps{
		Hasher:   security.NewBcryptHasher(0),
		Sessions: session.New(cfg.Session),
	}

	cleanup, err := wireStorage(cfg, log, &deps)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(cfg, log, deps)
	if err != nil {
		return err
	}

	// Run blocks until shutdown signal is received
	return srv.Run()
}

// wireStorage fills the repositories in deps from the configured backend.
func wireStorage(cfg *config.Config, log *slog.Logger, deps *server.Deps) (func(), error) {
	if cfg.Database.Storage == config.StorageMemory {
		mem := repo.NewMemoryRepository()
		deps.Jokes, deps.Users = mem, mem
		return func() {}, nil
	}

	ctx := context.Background()
	log = logger.WithComponent(log, "storage")
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
	}

	pgRepo := repo.NewPostgresRepository(pg, log)
	deps.Jokes, deps.Users = pgRepo, pgRepo
	return pg.Close, nil
}

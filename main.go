package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/ClientDesk/client-desk-backend/config"
	"github.com/ClientDesk/client-desk-backend/db"
	"github.com/ClientDesk/client-desk-backend/handlers"
	"github.com/ClientDesk/client-desk-backend/internal/store/postgres"
	"github.com/ClientDesk/client-desk-backend/logger"
	"github.com/ClientDesk/client-desk-backend/models/client/service"
	"github.com/ClientDesk/client-desk-backend/router"
)

func main() {
	// A missing .env file is fine, real environments set variables directly.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbURL := cfg.Database.ConnectionURL()

	if err := db.RunMigrations(dbURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	clientStore := postgres.NewClientStore(pool)
	clientService := service.NewClientService(clientStore)

	r := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		ClientHandler: handlers.NewClientHandler(clientService),
		HealthHandler: handlers.NewHealthHandler(clientStore),
		Logger:        log,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

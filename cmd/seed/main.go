// Package main provides a small tool that loads the sample client roster
// into the database. Existing rows are kept as-is, seeding is keyed by email
// so it is safe to run repeatedly.
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/ClientDesk/client-desk-backend/config"
	"github.com/ClientDesk/client-desk-backend/db"
	"github.com/ClientDesk/client-desk-backend/internal/store/postgres"
	"github.com/ClientDesk/client-desk-backend/internal/utils"
	"github.com/ClientDesk/client-desk-backend/types"
)

func strPtr(s string) *string { return &s }

var clients = []types.Client{
	{Name: strPtr("Jane Doe"), Email: "jane@doe.com"},
	{Name: strPtr("John Doe"), Email: "john@doe.com"},
	{Name: strPtr("Mary Jane"), Email: "mary@jane.com"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	dbURL := cfg.Database.ConnectionURL()

	if err := db.RunMigrations(dbURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	clientStore := postgres.NewClientStore(pool)
	for i := range clients {
		clients[i].ID = utils.NewClientID()
		id, err := clientStore.UpsertClient(ctx, &clients[i])
		if err != nil {
			log.Fatalf("Failed to seed client %s: %v", clients[i].Email, err)
		}
		log.Printf("Seeded client %s (%s)", clients[i].Email, id)
	}

	log.Println("Added client data")
}

// seed inserts a demo user and a handful of tasks into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aidosk/taskvault/internal/auth"
	"github.com/aidosk/taskvault/internal/infrastructure/postgres"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "password123"
)

var tasks = []struct {
	title       string
	description string
}{
	{"Buy milk", "2 liters, whole"},
	{"Renew passport", "expires next month"},
	{"Write weekly report", ""},
	{"Book dentist appointment", "ask about the Friday slot"},
	{"Water the plants", ""},
	{"Pay electricity bill", "due on the 25th"},
	{"Clean the garage", "donate the old bike"},
	{"Plan weekend trip", "check train tickets first"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.RunMigrations(ctx, dbURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert demo user
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		"Seed User", seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	inserted := 0
	for _, t := range tasks {
		if _, err := pool.Exec(ctx, `
			INSERT INTO tasks (owner_id, title, description)
			VALUES ($1, $2, $3)`,
			userID, t.title, t.description,
		); err != nil {
			log.Fatalf("seed task %q: %v", t.title, err)
		}
		inserted++
	}

	fmt.Printf("seeded user %s (%s / %s) with %d tasks\n", userID, seedEmail, seedPassword, inserted)
}

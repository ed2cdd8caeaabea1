package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/config"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demoUser"
	phone := "1234567890"
	email := "demo@example.com"
	password := "Password1"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO accounts (username, phone_number, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(email)) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, phone, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	fmt.Printf("seeded account: id=%s username=%s email=%s password=%s\n", id, username, email, password)
}

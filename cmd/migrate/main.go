package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"tradehall/internal/config"
)

const (
	pgInvalidCatalogName = "3D000"
	pgDuplicateDatabase  = "42P04"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "Migration command: up, down, down-to, status, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	dir := flag.String("dir", "migrations", "Migrations directory")
	flag.Parse()

	cfg := config.Load()

	db, err := connect(cfg, *command == "up")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	if err := run(db, *dir, *command, *name, *targetVersion); err != nil {
		log.Fatalf("Migration command %q failed: %v", *command, err)
	}
}

func run(db *sql.DB, dir, command, name string, targetVersion int64) error {
	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return err
		}
		log.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return err
		}
		log.Println("Migrations rolled back successfully")
	case "down-to":
		if err := goose.DownTo(db, dir, targetVersion); err != nil {
			return err
		}
		log.Printf("Migrations rolled back to version %d successfully", targetVersion)
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return errors.New("migration name is required for create command")
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return err
		}
		log.Printf("Created migration: %s", name)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

// connect opens the configured database. With createMissing it creates the
// database first when postgres reports that it does not exist.
func connect(cfg *config.Config, createMissing bool) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err == nil {
		return db, nil
	}
	db.Close()

	if !createMissing || !hasCode(err, pgInvalidCatalogName) {
		return nil, err
	}
	if err := createDatabase(cfg); err != nil {
		return nil, err
	}

	db, err = sql.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

func createDatabase(cfg *config.Config) error {
	admin := *cfg
	admin.Database.Name = "postgres"

	db, err := sql.Open("postgres", admin.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}

	_, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Database.Name))
	if err != nil && !hasCode(err, pgDuplicateDatabase) {
		return fmt.Errorf("failed to create database: %w", err)
	}

	log.Printf("Database '%s' is ready", cfg.Database.Name)
	return nil
}

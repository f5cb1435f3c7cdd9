package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"tradehall/internal/config"
	"tradehall/internal/domain"
)

// SetupTestDB connects to the database named by envRelPath and applies the
// goose migrations found at migrationsRelPath.
func SetupTestDB(envRelPath, migrationsRelPath string) (*sqlx.DB, error) {
	_ = godotenv.Load(envRelPath)
	cfg := config.Load()

	db, err := sqlx.Connect("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("connect to test db: %w", err)
	}

	if err = goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set dialect: %w", err)
	}

	if err = goose.Up(db.DB, migrationsRelPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return db, nil
}

func RequireDB(t *testing.T, db *sqlx.DB) {
	t.Helper()
	if db == nil {
		t.Skip("Test database not initialized")
	}
}

// CreateCharacter inserts a character with the given gold.
func CreateCharacter(t *testing.T, db sqlx.ExtContext, gold uint) *domain.Character {
	t.Helper()
	character := &domain.Character{
		Name: fmt.Sprintf("character-%d", time.Now().UnixNano()),
		Gold: domain.NewMoney(gold),
	}
	err := db.QueryRowxContext(context.Background(),
		`INSERT INTO characters (name, gold) VALUES ($1, $2) RETURNING id, created_at`,
		character.Name, int64(gold),
	).Scan(&character.ID, &character.CreatedAt)
	require.NoError(t, err)
	return character
}

// CreateItem inserts an item of the given type and price.
func CreateItem(t *testing.T, db sqlx.ExtContext, itemType domain.ItemType, price uint) *domain.Item {
	t.Helper()
	item := &domain.Item{
		Name:    fmt.Sprintf("%s-%d", itemType, time.Now().UnixNano()),
		Type:    itemType,
		Attack:  2,
		Defense: 1,
		Hp:      5,
		Price:   domain.NewMoney(price),
	}
	err := db.QueryRowxContext(context.Background(),
		`INSERT INTO items (name, type, attack, defense, hp, price)
		 VALUES ($1, $2::item_type, $3, $4, $5, $6) RETURNING id, created_at`,
		item.Name, string(item.Type), item.Attack, item.Defense, item.Hp, int64(price),
	).Scan(&item.ID, &item.CreatedAt)
	require.NoError(t, err)
	return item
}

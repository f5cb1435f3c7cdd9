package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tradehall/internal/domain"
)

var (
	ErrCharacterNotFound = errors.New("character not found")
)

type characterRow struct {
	domain.Model
	Name string `db:"name"`
	Gold int64  `db:"gold"`
}

func (r characterRow) toDomain() *domain.Character {
	return &domain.Character{
		Model: r.Model,
		Name:  r.Name,
		Gold:  domain.NewMoney(uint(r.Gold)),
	}
}

type CharacterRepository struct {
	db sqlx.ExtContext
}

func NewCharacterRepository(db sqlx.ExtContext) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) Create(ctx context.Context, character *domain.Character) error {
	query := `
		INSERT INTO characters (name, gold)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, character.Name, int64(character.Gold.Amount())).
		Scan(&character.ID, &character.CreatedAt)
	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	return nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	return r.find(ctx, id, "")
}

// FindByIDForUpdate locks the character row until the surrounding
// transaction ends. It guards both the gold balance and the inventory.
func (r *CharacterRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	return r.find(ctx, id, "FOR UPDATE")
}

func (r *CharacterRepository) find(ctx context.Context, id uuid.UUID, lock string) (*domain.Character, error) {
	query := `
		SELECT id, created_at, deleted_at, name, gold
		FROM characters
		WHERE id = $1 AND deleted_at IS NULL
	` + lock

	var row characterRow
	err := sqlx.GetContext(ctx, r.db, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}

	return row.toDomain(), nil
}

func (r *CharacterRepository) UpdateGold(ctx context.Context, id uuid.UUID, gold domain.Money) error {
	query := `UPDATE characters SET gold = $1 WHERE id = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, int64(gold.Amount()), id)
	if err != nil {
		return fmt.Errorf("update gold: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

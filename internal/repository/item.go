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
	ErrItemNotFound = errors.New("item not found")
	ErrItemExists   = errors.New("item already exists")
)

const itemColumns = `i.id, i.created_at, i.deleted_at, i.name, i.type, i.attack, i.defense, i.hp, i.price`

type itemRow struct {
	domain.Model
	Name    string `db:"name"`
	Type    string `db:"type"`
	Attack  int    `db:"attack"`
	Defense int    `db:"defense"`
	Hp      int    `db:"hp"`
	Price   int64  `db:"price"`
}

func (r itemRow) toDomain() *domain.Item {
	return &domain.Item{
		Model:   r.Model,
		Name:    r.Name,
		Type:    domain.ItemType(r.Type),
		Attack:  r.Attack,
		Defense: r.Defense,
		Hp:      r.Hp,
		Price:   domain.NewMoney(uint(r.Price)),
	}
}

type ItemRepository struct {
	db sqlx.ExtContext
}

func NewItemRepository(db sqlx.ExtContext) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (name, type, attack, defense, hp, price)
		VALUES ($1, $2::item_type, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		item.Name, string(item.Type), item.Attack, item.Defense, item.Hp, int64(item.Price.Amount()),
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrItemExists
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i WHERE i.id = $1 AND i.deleted_at IS NULL`

	var row itemRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// IsPlaced reports whether the item already sits in an inventory or a store.
func (r *ItemRepository) IsPlaced(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM inventory_items WHERE item_id = $1)
			OR EXISTS (SELECT 1 FROM store_items WHERE item_id = $1)
	`

	var placed bool
	if err := sqlx.GetContext(ctx, r.db, &placed, query, id); err != nil {
		return false, err
	}
	return placed, nil
}

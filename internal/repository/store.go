package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tradehall/internal/domain"
)

var (
	ErrStoreNotFound = errors.New("store not found")
)

type storeRow struct {
	domain.Model
	CharacterID uuid.UUID `db:"character_id"`
	Type        string    `db:"type"`
	Money       int64     `db:"money"`
}

type storeItemRow struct {
	itemRow
	Slot      int   `db:"slot"`
	ListPrice int64 `db:"list_price"`
}

type StoreRepository struct {
	db sqlx.ExtContext
}

func NewStoreRepository(db sqlx.ExtContext) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	query := `
		INSERT INTO stores (id, character_id, type, money)
		VALUES ($1, $2, $3::store_type, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		store.ID(), store.CharacterID(), string(store.Type()), int64(store.Money().Amount()),
	)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	return r.saveItems(ctx, store)
}

func (r *StoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	return r.find(ctx, id, "")
}

// FindByIDForUpdate locks the store row so concurrent trades on the same
// store are applied one after another.
func (r *StoreRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	return r.find(ctx, id, "FOR UPDATE")
}

func (r *StoreRepository) find(ctx context.Context, id uuid.UUID, lock string) (*domain.Store, error) {
	query := `
		SELECT id, created_at, deleted_at, character_id, type, money
		FROM stores
		WHERE id = $1 AND deleted_at IS NULL
	` + lock

	var row storeRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	itemsQuery := `
		SELECT ` + itemColumns + `, si.slot, si.price AS list_price
		FROM store_items si
		INNER JOIN items i ON i.id = si.item_id
		WHERE si.store_id = $1 AND i.deleted_at IS NULL
		ORDER BY si.slot
	`

	var rows []storeItemRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, itemsQuery, id); err != nil {
		return nil, fmt.Errorf("load store items: %w", err)
	}

	items := make(map[int]*domain.StoreItem, len(rows))
	for _, listed := range rows {
		items[listed.Slot] = domain.NewStoreItem(listed.toDomain(), domain.NewMoney(uint(listed.ListPrice)))
	}

	return domain.NewStore(row.ID, row.CharacterID, domain.StoreType(row.Type), items, domain.NewMoney(uint(row.Money)))
}

// Save writes the store's balance and replaces its listed items.
func (r *StoreRepository) Save(ctx context.Context, store *domain.Store) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stores SET money = $1 WHERE id = $2 AND deleted_at IS NULL`,
		int64(store.Money().Amount()), store.ID(),
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStoreNotFound
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM store_items WHERE store_id = $1`, store.ID()); err != nil {
		return fmt.Errorf("clear store items: %w", err)
	}

	return r.saveItems(ctx, store)
}

func (r *StoreRepository) saveItems(ctx context.Context, store *domain.Store) error {
	items := store.Items()
	if len(items) == 0 {
		return nil
	}

	itemIDs := make([]string, 0, len(items))
	slots := make([]int64, 0, len(items))
	prices := make([]int64, 0, len(items))
	for slot, si := range items {
		itemIDs = append(itemIDs, si.ID().String())
		slots = append(slots, int64(slot))
		prices = append(prices, int64(si.Price.Amount()))
	}

	query := `
		INSERT INTO store_items (store_id, item_id, slot, price)
		SELECT $1, unnest($2::uuid[]), unnest($3::int[]), unnest($4::bigint[])
	`
	_, err := r.db.ExecContext(ctx, query, store.ID(), pq.Array(itemIDs), pq.Array(slots), pq.Array(prices))
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrItemPlaced
		}
		return fmt.Errorf("save store items: %w", err)
	}
	return nil
}

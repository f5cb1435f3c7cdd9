package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tradehall/internal/domain"
)

var (
	// ErrItemPlaced means the item already sits in another inventory or store.
	ErrItemPlaced = errors.New("item already placed")
)

type inventoryRow struct {
	itemRow
	Slot     int  `db:"slot"`
	Equipped bool `db:"equipped"`
}

type InventoryRepository struct {
	db sqlx.ExtContext
}

func NewInventoryRepository(db sqlx.ExtContext) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Load builds the character's inventory from its persisted slot mapping.
func (r *InventoryRepository) Load(ctx context.Context, characterID uuid.UUID) (domain.Inventory, error) {
	query := `
		SELECT ` + itemColumns + `, ii.slot, ii.equipped
		FROM inventory_items ii
		INNER JOIN items i ON i.id = ii.item_id
		WHERE ii.character_id = $1 AND i.deleted_at IS NULL
		ORDER BY ii.slot
	`

	var rows []inventoryRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, characterID); err != nil {
		return domain.Inventory{}, fmt.Errorf("load inventory: %w", err)
	}

	items := make(map[int]*domain.Item, len(rows))
	for _, row := range rows {
		item := row.toDomain()
		item.Equipped = row.Equipped
		item.SetInventorySlot(row.Slot)
		items[row.Slot] = item
	}

	inv, err := domain.NewInventory(items)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("load inventory of %s: %w", characterID, err)
	}
	return inv, nil
}

// Save replaces the persisted slot mapping with the inventory's.
func (r *InventoryRepository) Save(ctx context.Context, characterID uuid.UUID, inv domain.Inventory) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE character_id = $1`, characterID); err != nil {
		return fmt.Errorf("clear inventory: %w", err)
	}

	items := inv.Items()
	if len(items) == 0 {
		return nil
	}

	itemIDs := make([]string, 0, len(items))
	slots := make([]int64, 0, len(items))
	equipped := make([]bool, 0, len(items))
	for slot, item := range items {
		itemIDs = append(itemIDs, item.ID.String())
		slots = append(slots, int64(slot))
		equipped = append(equipped, item.IsEquipped())
	}

	query := `
		INSERT INTO inventory_items (character_id, item_id, slot, equipped)
		SELECT $1, unnest($2::uuid[]), unnest($3::int[]), unnest($4::bool[])
	`
	_, err := r.db.ExecContext(ctx, query, characterID, pq.Array(itemIDs), pq.Array(slots), pq.Array(equipped))
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrItemPlaced
		}
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}

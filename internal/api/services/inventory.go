package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"tradehall/internal/domain"
	"tradehall/internal/repository"
)

type InventoryService struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewInventoryService(db *sqlx.DB, log *slog.Logger) *InventoryService {
	return &InventoryService{
		db:  db,
		log: log,
	}
}

func (s *InventoryService) GetInventory(ctx context.Context, characterID uuid.UUID) (domain.Inventory, error) {
	if _, err := repository.NewCharacterRepository(s.db).FindByID(ctx, characterID); err != nil {
		return domain.Inventory{}, err
	}
	return repository.NewInventoryRepository(s.db).Load(ctx, characterID)
}

// AddItem puts an unowned item into the character's inventory, at slot when
// given and at the lowest free slot otherwise.
func (s *InventoryService) AddItem(ctx context.Context, characterID, itemID uuid.UUID, slot *int) (domain.Inventory, error) {
	var result domain.Inventory

	err := observe(ctx, "inventory.add_item", func(ctx context.Context) error {
		return repository.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
			if _, err := repository.NewCharacterRepository(tx).FindByIDForUpdate(ctx, characterID); err != nil {
				return err
			}

			itemRepo := repository.NewItemRepository(tx)
			item, err := itemRepo.FindByID(ctx, itemID)
			if err != nil {
				return err
			}
			placed, err := itemRepo.IsPlaced(ctx, itemID)
			if err != nil {
				return err
			}
			if placed {
				return ErrItemAlreadyOwned
			}

			inventoryRepo := repository.NewInventoryRepository(tx)
			inv, err := inventoryRepo.Load(ctx, characterID)
			if err != nil {
				return err
			}

			if slot != nil {
				inv, err = inv.WithAddedItem(*slot, item)
			} else {
				inv, err = inv.WithAddedItemToFreeSlot(item)
			}
			if err != nil {
				return err
			}

			if err := inventoryRepo.Save(ctx, characterID, inv); err != nil {
				if errors.Is(err, repository.ErrItemPlaced) {
					return ErrItemAlreadyOwned
				}
				return err
			}

			result = inv
			return nil
		})
	}, attribute.String("character.id", characterID.String()), attribute.String("item.id", itemID.String()))
	if err != nil {
		return domain.Inventory{}, err
	}

	s.log.InfoContext(ctx, "item added to inventory", "character_id", characterID, "item_id", itemID)
	return result, nil
}

// EquipItem equips the item and unequips whatever was worn in its place.
func (s *InventoryService) EquipItem(ctx context.Context, characterID, itemID uuid.UUID) (domain.Inventory, error) {
	return s.changeEquipment(ctx, "inventory.equip", characterID, itemID, func(inv domain.Inventory, item *domain.Item) {
		if current, ok := inv.FindEquippedItemOfType(item.Type); ok {
			current.Equipped = false
		}
		item.Equipped = true
	})
}

func (s *InventoryService) UnequipItem(ctx context.Context, characterID, itemID uuid.UUID) (domain.Inventory, error) {
	return s.changeEquipment(ctx, "inventory.unequip", characterID, itemID, func(_ domain.Inventory, item *domain.Item) {
		item.Equipped = false
	})
}

func (s *InventoryService) changeEquipment(
	ctx context.Context,
	operation string,
	characterID, itemID uuid.UUID,
	apply func(inv domain.Inventory, item *domain.Item),
) (domain.Inventory, error) {
	var result domain.Inventory

	err := observe(ctx, operation, func(ctx context.Context) error {
		return repository.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
			if _, err := repository.NewCharacterRepository(tx).FindByIDForUpdate(ctx, characterID); err != nil {
				return err
			}

			inventoryRepo := repository.NewInventoryRepository(tx)
			inv, err := inventoryRepo.Load(ctx, characterID)
			if err != nil {
				return err
			}

			item, ok := inv.FindItem(itemID)
			if !ok {
				return ErrItemNotInInventory
			}
			apply(inv, item)

			if err := inventoryRepo.Save(ctx, characterID, inv); err != nil {
				return err
			}

			result = inv
			return nil
		})
	}, attribute.String("character.id", characterID.String()), attribute.String("item.id", itemID.String()))
	if err != nil {
		return domain.Inventory{}, err
	}

	s.log.InfoContext(ctx, "equipment changed", "operation", operation, "character_id", characterID, "item_id", itemID)
	return result, nil
}

// Effects sums every effect over the character's equipped items.
func (s *InventoryService) Effects(ctx context.Context, characterID uuid.UUID) (map[domain.EffectType]int, error) {
	inv, err := s.GetInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}

	effects := make(map[domain.EffectType]int, len(domain.EffectTypes))
	for _, effect := range domain.EffectTypes {
		effects[effect] = inv.EquippedItemsEffect(effect)
	}
	return effects, nil
}

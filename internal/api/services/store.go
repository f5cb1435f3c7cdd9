package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"tradehall/internal/api/ws"
	"tradehall/internal/domain"
	"tradehall/internal/metrics"
	r "tradehall/internal/redis"
	"tradehall/internal/repository"
)

// StoreNotifier pushes trade notifications to store owners.
type StoreNotifier interface {
	SendStoreUpdate(ownerID uuid.UUID, update ws.StoreUpdateData) error
}

type StoreService struct {
	db       *sqlx.DB
	cache    *r.StoreCache
	notifier StoreNotifier
	log      *slog.Logger
}

func NewStoreService(db *sqlx.DB, cache *r.StoreCache, notifier StoreNotifier, log *slog.Logger) *StoreService {
	return &StoreService{
		db:       db,
		cache:    cache,
		notifier: notifier,
		log:      log,
	}
}

func (s *StoreService) GetStore(ctx context.Context, storeID uuid.UUID) (*domain.Store, error) {
	store, err := s.cache.Get(ctx, storeID)
	if err != nil {
		s.log.WarnContext(ctx, "store cache get failed", "store_id", storeID, "error", err)
	}
	if store != nil {
		return store, nil
	}

	gen, genErr := s.cache.Generation(ctx, storeID)
	if genErr != nil {
		s.log.WarnContext(ctx, "store cache generation failed", "store_id", storeID, "error", genErr)
	}

	store, err = repository.NewStoreRepository(s.db).FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		if err := s.cache.Set(ctx, store, gen); err != nil {
			s.log.WarnContext(ctx, "store cache set failed", "store_id", storeID, "error", err)
		}
	}
	return store, nil
}

func (s *StoreService) ItemsOfType(ctx context.Context, storeID uuid.UUID, itemType domain.ItemType) ([]*domain.StoreItem, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return store.FindItemsOfType(itemType), nil
}

func (s *StoreService) OpenStore(ctx context.Context, characterID uuid.UUID, storeType domain.StoreType) (*domain.Store, error) {
	var store *domain.Store

	err := observe(ctx, "store.open", func(ctx context.Context) error {
		return repository.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
			if _, err := repository.NewCharacterRepository(tx).FindByID(ctx, characterID); err != nil {
				return err
			}

			var err error
			store, err = domain.NewStore(uuid.New(), characterID, storeType, nil, domain.NewMoney(0))
			if err != nil {
				return err
			}
			return repository.NewStoreRepository(tx).Create(ctx, store)
		})
	}, attribute.String("character.id", characterID.String()))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "store opened", "store_id", store.ID(), "character_id", characterID, "type", storeType)
	return store, nil
}

// ListItem moves an unequipped item from the owner's inventory into their store.
func (s *StoreService) ListItem(ctx context.Context, ownerID, storeID, itemID uuid.UUID) (*domain.Store, error) {
	var store *domain.Store

	err := s.trade(ctx, "store.list_item", storeID, itemID, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		store, err = repository.NewStoreRepository(tx).FindByIDForUpdate(ctx, storeID)
		if err != nil {
			return err
		}
		if store.CharacterID() != ownerID {
			return ErrNotStoreOwner
		}
		if _, err := repository.NewCharacterRepository(tx).FindByIDForUpdate(ctx, ownerID); err != nil {
			return err
		}

		inventoryRepo := repository.NewInventoryRepository(tx)
		inv, err := inventoryRepo.Load(ctx, ownerID)
		if err != nil {
			return err
		}
		item, ok := inv.FindItem(itemID)
		if !ok {
			return ErrItemNotInInventory
		}
		if item.IsEquipped() {
			return ErrItemEquipped
		}

		inv, item, err = inv.WithoutItem(itemID)
		if err != nil {
			return err
		}
		if err := store.Add(item); err != nil {
			return err
		}

		if err := inventoryRepo.Save(ctx, ownerID, inv); err != nil {
			return err
		}
		return repository.NewStoreRepository(tx).Save(ctx, store)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// RetractItem takes a listed item back into the owner's inventory.
func (s *StoreService) RetractItem(ctx context.Context, ownerID, storeID, itemID uuid.UUID) (domain.Inventory, error) {
	var inv domain.Inventory

	err := s.trade(ctx, "store.retract_item", storeID, itemID, func(ctx context.Context, tx *sqlx.Tx) error {
		storeRepo := repository.NewStoreRepository(tx)
		store, err := storeRepo.FindByIDForUpdate(ctx, storeID)
		if err != nil {
			return err
		}
		if store.CharacterID() != ownerID {
			return ErrNotStoreOwner
		}
		if _, err := repository.NewCharacterRepository(tx).FindByIDForUpdate(ctx, ownerID); err != nil {
			return err
		}

		inventoryRepo := repository.NewInventoryRepository(tx)
		inv, err = inventoryRepo.Load(ctx, ownerID)
		if err != nil {
			return err
		}

		listing, ok := store.FindItem(itemID)
		if !ok {
			return domain.ErrItemNotInContainer
		}
		inv, err = inv.WithAddedItemToFreeSlot(listing.ToBaseItem())
		if err != nil {
			return err
		}
		if _, err := store.TakeOut(itemID); err != nil {
			return err
		}

		if err := storeRepo.Save(ctx, store); err != nil {
			return err
		}
		return inventoryRepo.Save(ctx, ownerID, inv)
	})
	if err != nil {
		return domain.Inventory{}, err
	}
	return inv, nil
}

// BuyItem pays the listed price from the buyer to the store and moves the
// item into the buyer's lowest free inventory slot.
func (s *StoreService) BuyItem(ctx context.Context, buyerID, storeID, itemID uuid.UUID) (*domain.Item, error) {
	var (
		bought *domain.Item
		store  *domain.Store
		price  domain.Money
	)

	err := s.trade(ctx, "store.buy_item", storeID, itemID, func(ctx context.Context, tx *sqlx.Tx) error {
		storeRepo := repository.NewStoreRepository(tx)
		var err error
		store, err = storeRepo.FindByIDForUpdate(ctx, storeID)
		if err != nil {
			return err
		}
		if store.CharacterID() == buyerID {
			return ErrOwnStore
		}

		characterRepo := repository.NewCharacterRepository(tx)
		buyer, err := characterRepo.FindByIDForUpdate(ctx, buyerID)
		if err != nil {
			return err
		}

		listing, ok := store.FindItem(itemID)
		if !ok {
			return domain.ErrItemNotInContainer
		}
		price = listing.Price

		if buyer.Gold.LessThan(price) {
			return ErrInsufficientGold
		}
		gold, err := buyer.Gold.Remove(price)
		if err != nil {
			return err
		}

		inventoryRepo := repository.NewInventoryRepository(tx)
		inv, err := inventoryRepo.Load(ctx, buyerID)
		if err != nil {
			return err
		}
		inv, err = inv.WithAddedItemToFreeSlot(listing.ToBaseItem())
		if err != nil {
			return err
		}

		bought, err = store.TakeOut(itemID)
		if err != nil {
			return err
		}
		store.PutMoneyIn(price)

		if err := storeRepo.Save(ctx, store); err != nil {
			return err
		}
		if err := inventoryRepo.Save(ctx, buyerID, inv); err != nil {
			return err
		}
		return characterRepo.UpdateGold(ctx, buyerID, gold)
	})
	if err != nil {
		return nil, err
	}

	if !price.IsZero() {
		metrics.StoreMoneyMoved.WithLabelValues("in").Add(float64(price.Amount()))
	}
	s.notify(ctx, store, itemID, "buy")
	return bought, nil
}

// SellItem sells an unequipped item from the seller's inventory to the store
// at the item's own price. Sell-only stores refuse.
func (s *StoreService) SellItem(ctx context.Context, sellerID, storeID, itemID uuid.UUID) (*domain.Store, error) {
	var (
		store *domain.Store
		paid  domain.Money
	)

	err := s.trade(ctx, "store.sell_item", storeID, itemID, func(ctx context.Context, tx *sqlx.Tx) error {
		storeRepo := repository.NewStoreRepository(tx)
		var err error
		store, err = storeRepo.FindByIDForUpdate(ctx, storeID)
		if err != nil {
			return err
		}
		if store.CharacterID() == sellerID {
			return ErrOwnStore
		}

		characterRepo := repository.NewCharacterRepository(tx)
		seller, err := characterRepo.FindByIDForUpdate(ctx, sellerID)
		if err != nil {
			return err
		}

		inventoryRepo := repository.NewInventoryRepository(tx)
		inv, err := inventoryRepo.Load(ctx, sellerID)
		if err != nil {
			return err
		}
		item, ok := inv.FindItem(itemID)
		if !ok {
			return ErrItemNotInInventory
		}
		if item.IsEquipped() {
			return ErrItemEquipped
		}

		// The loaded store is dropped on any error below, so a failed Add
		// after the payout never reaches the database or the cache.
		paid, err = store.TakeMoneyOut(item.Price)
		if err != nil {
			return err
		}
		inv, item, err = inv.WithoutItem(itemID)
		if err != nil {
			return err
		}
		if err := store.Add(item); err != nil {
			return err
		}

		if err := storeRepo.Save(ctx, store); err != nil {
			return err
		}
		if err := inventoryRepo.Save(ctx, sellerID, inv); err != nil {
			return err
		}
		return characterRepo.UpdateGold(ctx, sellerID, seller.Gold.Combine(paid))
	})
	if err != nil {
		return nil, err
	}

	if !paid.IsZero() {
		metrics.StoreMoneyMoved.WithLabelValues("out").Add(float64(paid.Amount()))
	}
	s.notify(ctx, store, itemID, "sell")
	return store, nil
}

// trade runs fn in a transaction and drops the cached store afterwards.
func (s *StoreService) trade(ctx context.Context, operation string, storeID, itemID uuid.UUID, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	err := observe(ctx, operation, func(ctx context.Context) error {
		return repository.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
			return fn(ctx, tx)
		})
	}, attribute.String("store.id", storeID.String()), attribute.String("item.id", itemID.String()))
	if err != nil {
		s.log.WarnContext(ctx, "store operation failed", "operation", operation, "store_id", storeID, "item_id", itemID, "error", err)
		return err
	}

	if err := s.cache.Invalidate(ctx, storeID); err != nil {
		s.log.WarnContext(ctx, "store cache invalidate failed", "store_id", storeID, "error", err)
	}
	s.log.InfoContext(ctx, "store operation done", "operation", operation, "store_id", storeID, "item_id", itemID)
	return nil
}

func (s *StoreService) notify(ctx context.Context, store *domain.Store, itemID uuid.UUID, action string) {
	if s.notifier == nil {
		return
	}

	update := ws.StoreUpdateData{
		StoreID: store.ID(),
		ItemID:  itemID,
		Action:  action,
		Money:   store.Money().Amount(),
		Items:   store.Len(),
	}
	if err := s.notifier.SendStoreUpdate(store.CharacterID(), update); err != nil {
		s.log.WarnContext(ctx, "store update push failed", "store_id", store.ID(), "error", err)
	}
}

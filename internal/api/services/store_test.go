package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehall/internal/domain"
	"tradehall/internal/repository"
	"tradehall/internal/testutil"
)

func setMoney(t *testing.T, storeID uuid.UUID, money uint) {
	t.Helper()
	_, err := testDB.Exec(`UPDATE stores SET money = $1 WHERE id = $2`, int64(money), storeID)
	require.NoError(t, err)
}

// listedStore opens a store for a fresh owner and lists one item in it.
func listedStore(t *testing.T, service *StoreService, storeType domain.StoreType, price uint) (*domain.Character, *domain.Store, *domain.Item) {
	t.Helper()
	ctx := context.Background()

	owner := testutil.CreateCharacter(t, testDB, 0)
	store, err := service.OpenStore(ctx, owner.ID, storeType)
	require.NoError(t, err)

	item := testutil.CreateItem(t, testDB, domain.ItemTypeWeapon, price)
	putInInventory(t, owner.ID, item, 0)

	store, err = service.ListItem(ctx, owner.ID, store.ID(), item.ID)
	require.NoError(t, err)
	return owner, store, item
}

func TestStoreService_OpenStore(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, _, _ := newTestStoreService(t)

	owner := testutil.CreateCharacter(t, testDB, 0)
	store, err := service.OpenStore(ctx, owner.ID, domain.StoreTypeBuyAndSell)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, store.CharacterID())
	assert.True(t, store.Money().IsZero())

	got, err := service.GetStore(ctx, store.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StoreTypeBuyAndSell, got.Type())

	t.Run("unknown character", func(t *testing.T) {
		_, err := service.OpenStore(ctx, uuid.New(), domain.StoreTypeSellOnly)
		assert.ErrorIs(t, err, repository.ErrCharacterNotFound)
	})
}

func TestStoreService_GetStoreCaches(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, _, mr := newTestStoreService(t)

	owner := testutil.CreateCharacter(t, testDB, 0)
	store, err := service.OpenStore(ctx, owner.ID, domain.StoreTypeSellOnly)
	require.NoError(t, err)

	_, err = service.GetStore(ctx, store.ID())
	require.NoError(t, err)
	assert.True(t, mr.Exists("store:"+store.ID().String()))

	item := testutil.CreateItem(t, testDB, domain.ItemTypeRing, 12)
	putInInventory(t, owner.ID, item, 0)
	_, err = service.ListItem(ctx, owner.ID, store.ID(), item.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists("store:"+store.ID().String()))
	gen, err := mr.Get("store-gen:" + store.ID().String())
	require.NoError(t, err)
	assert.Equal(t, "1", gen)

	fresh, err := service.GetStore(ctx, store.ID())
	require.NoError(t, err)
	_, ok := fresh.FindItem(item.ID)
	assert.True(t, ok)

	_, err = service.GetStore(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreService_ListItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, _, mr := newTestStoreService(t)

	owner, store, item := listedStore(t, service, domain.StoreTypeSellOnly, 30)

	listing, ok := loadStore(t, store.ID()).FindItem(item.ID)
	require.True(t, ok)
	assert.Equal(t, uint(30), listing.Price.Amount())
	assert.False(t, loadInventory(t, owner.ID).HasItem(item))
	assert.False(t, mr.Exists("store:"+store.ID().String()))

	t.Run("not the owner", func(t *testing.T) {
		stranger := testutil.CreateCharacter(t, testDB, 0)
		other := testutil.CreateItem(t, testDB, domain.ItemTypeRing, 5)
		putInInventory(t, stranger.ID, other, 0)

		_, err := service.ListItem(ctx, stranger.ID, store.ID(), other.ID)
		assert.ErrorIs(t, err, ErrNotStoreOwner)
	})

	t.Run("equipped item", func(t *testing.T) {
		worn := testutil.CreateItem(t, testDB, domain.ItemTypeHead, 5)
		putInInventory(t, owner.ID, worn, 1)
		_, err := newTestInventoryService().EquipItem(ctx, owner.ID, worn.ID)
		require.NoError(t, err)

		_, err = service.ListItem(ctx, owner.ID, store.ID(), worn.ID)
		assert.ErrorIs(t, err, ErrItemEquipped)
		assert.True(t, loadInventory(t, owner.ID).HasItem(worn))
	})

	t.Run("item not in inventory", func(t *testing.T) {
		_, err := service.ListItem(ctx, owner.ID, store.ID(), uuid.New())
		assert.ErrorIs(t, err, ErrItemNotInInventory)
	})
}

func TestStoreService_RetractItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, _, _ := newTestStoreService(t)

	owner, store, item := listedStore(t, service, domain.StoreTypeSellOnly, 30)

	inv, err := service.RetractItem(ctx, owner.ID, store.ID(), item.ID)
	require.NoError(t, err)
	assert.True(t, inv.HasItem(item))
	assert.Equal(t, 0, loadStore(t, store.ID()).Len())

	_, err = service.RetractItem(ctx, owner.ID, store.ID(), item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotInContainer)
}

func TestStoreService_BuyItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, notifier, _ := newTestStoreService(t)

	owner, store, item := listedStore(t, service, domain.StoreTypeSellOnly, 30)

	t.Run("own store", func(t *testing.T) {
		_, err := service.BuyItem(ctx, owner.ID, store.ID(), item.ID)
		assert.ErrorIs(t, err, ErrOwnStore)
	})

	t.Run("not enough gold", func(t *testing.T) {
		poor := testutil.CreateCharacter(t, testDB, 29)

		_, err := service.BuyItem(ctx, poor.ID, store.ID(), item.ID)
		assert.ErrorIs(t, err, ErrInsufficientGold)
		assert.Equal(t, uint(29), goldOf(t, poor.ID))
		assert.Equal(t, 1, loadStore(t, store.ID()).Len())
	})

	t.Run("buys into lowest free slot", func(t *testing.T) {
		buyer := testutil.CreateCharacter(t, testDB, 100)
		putInInventory(t, buyer.ID, testutil.CreateItem(t, testDB, domain.ItemTypeRing, 1), 0)

		bought, err := service.BuyItem(ctx, buyer.ID, store.ID(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, bought.ID)

		assert.Equal(t, uint(70), goldOf(t, buyer.ID))
		got, ok := loadInventory(t, buyer.ID).ItemForSlot(1)
		require.True(t, ok)
		assert.Equal(t, item.ID, got.ID)

		after := loadStore(t, store.ID())
		assert.Equal(t, 0, after.Len())
		assert.Equal(t, uint(30), after.Money().Amount())

		sent := notifier.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, owner.ID, sent[0].ownerID)
		assert.Equal(t, "buy", sent[0].update.Action)
		assert.Equal(t, uint(30), sent[0].update.Money)
	})

	t.Run("already sold", func(t *testing.T) {
		buyer := testutil.CreateCharacter(t, testDB, 100)

		_, err := service.BuyItem(ctx, buyer.ID, store.ID(), item.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotInContainer)
	})
}

func TestStoreService_BuyItem_FullInventory(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, _, _ := newTestStoreService(t)

	_, store, item := listedStore(t, service, domain.StoreTypeSellOnly, 10)

	buyer := testutil.CreateCharacter(t, testDB, 100)
	for slot := 0; slot < domain.InventorySlots-1; slot++ {
		putInInventory(t, buyer.ID, testutil.CreateItem(t, testDB, domain.ItemTypeRing, 1), slot)
	}

	_, err := service.BuyItem(ctx, buyer.ID, store.ID(), item.ID)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSpace)
	assert.Equal(t, uint(100), goldOf(t, buyer.ID))

	after := loadStore(t, store.ID())
	assert.Equal(t, 1, after.Len())
	assert.True(t, after.Money().IsZero())
}

func TestStoreService_SellItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, notifier, _ := newTestStoreService(t)

	owner := testutil.CreateCharacter(t, testDB, 0)

	t.Run("sell-only store refuses", func(t *testing.T) {
		store, err := service.OpenStore(ctx, owner.ID, domain.StoreTypeSellOnly)
		require.NoError(t, err)
		setMoney(t, store.ID(), 100)

		seller := testutil.CreateCharacter(t, testDB, 0)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeLegs, 20)
		putInInventory(t, seller.ID, item, 0)

		_, err = service.SellItem(ctx, seller.ID, store.ID(), item.ID)
		assert.ErrorIs(t, err, domain.ErrStoreDoesNotBuyItems)
		assert.True(t, loadInventory(t, seller.ID).HasItem(item))
		assert.Equal(t, uint(100), loadStore(t, store.ID()).Money().Amount())
	})

	store, err := service.OpenStore(ctx, owner.ID, domain.StoreTypeBuyAndSell)
	require.NoError(t, err)

	t.Run("store cannot pay", func(t *testing.T) {
		seller := testutil.CreateCharacter(t, testDB, 0)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeLegs, 20)
		putInInventory(t, seller.ID, item, 0)

		_, err := service.SellItem(ctx, seller.ID, store.ID(), item.ID)
		assert.ErrorIs(t, err, domain.ErrNotEnoughMoney)
		assert.True(t, loadInventory(t, seller.ID).HasItem(item))
	})

	t.Run("sells at item price", func(t *testing.T) {
		setMoney(t, store.ID(), 50)
		seller := testutil.CreateCharacter(t, testDB, 5)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeLegs, 20)
		putInInventory(t, seller.ID, item, 0)

		_, err := service.SellItem(ctx, seller.ID, store.ID(), item.ID)
		require.NoError(t, err)

		assert.Equal(t, uint(25), goldOf(t, seller.ID))
		assert.False(t, loadInventory(t, seller.ID).HasItem(item))

		after := loadStore(t, store.ID())
		assert.Equal(t, uint(30), after.Money().Amount())
		listing, ok := after.FindItem(item.ID)
		require.True(t, ok)
		assert.Equal(t, uint(20), listing.Price.Amount())

		sent := notifier.sent()
		require.NotEmpty(t, sent)
		assert.Equal(t, "sell", sent[len(sent)-1].update.Action)
	})

	t.Run("own store", func(t *testing.T) {
		item := testutil.CreateItem(t, testDB, domain.ItemTypeFeet, 1)
		putInInventory(t, owner.ID, item, 0)

		_, err := service.SellItem(ctx, owner.ID, store.ID(), item.ID)
		assert.ErrorIs(t, err, ErrOwnStore)
	})
}

func TestStoreService_ItemsOfType(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service, _, _ := newTestStoreService(t)

	owner, store, weapon := listedStore(t, service, domain.StoreTypeSellOnly, 10)
	ring := testutil.CreateItem(t, testDB, domain.ItemTypeRing, 3)
	putInInventory(t, owner.ID, ring, 0)
	_, err := service.ListItem(ctx, owner.ID, store.ID(), ring.ID)
	require.NoError(t, err)

	weapons, err := service.ItemsOfType(ctx, store.ID(), domain.ItemTypeWeapon)
	require.NoError(t, err)
	require.Len(t, weapons, 1)
	assert.Equal(t, weapon.ID, weapons[0].ID())

	shields, err := service.ItemsOfType(ctx, store.ID(), domain.ItemTypeShield)
	require.NoError(t, err)
	assert.Empty(t, shields)
}

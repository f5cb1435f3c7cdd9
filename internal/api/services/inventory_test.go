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

func TestInventoryService_GetInventory(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newTestInventoryService()

	t.Run("empty inventory", func(t *testing.T) {
		character := testutil.CreateCharacter(t, testDB, 0)

		inv, err := service.GetInventory(ctx, character.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, inv.Len())
	})

	t.Run("unknown character", func(t *testing.T) {
		_, err := service.GetInventory(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrCharacterNotFound)
	})
}

func TestInventoryService_AddItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newTestInventoryService()

	t.Run("lowest free slot", func(t *testing.T) {
		character := testutil.CreateCharacter(t, testDB, 0)
		putInInventory(t, character.ID, testutil.CreateItem(t, testDB, domain.ItemTypeWeapon, 10), 0)
		putInInventory(t, character.ID, testutil.CreateItem(t, testDB, domain.ItemTypeShield, 10), 2)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeRing, 10)

		inv, err := service.AddItem(ctx, character.ID, item.ID, nil)
		require.NoError(t, err)

		got, ok := inv.ItemForSlot(1)
		require.True(t, ok)
		assert.Equal(t, item.ID, got.ID)
		assert.True(t, loadInventory(t, character.ID).HasItem(item))
	})

	t.Run("explicit slot", func(t *testing.T) {
		character := testutil.CreateCharacter(t, testDB, 0)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeHead, 10)
		slot := 7

		_, err := service.AddItem(ctx, character.ID, item.ID, &slot)
		require.NoError(t, err)

		got, ok := loadInventory(t, character.ID).ItemForSlot(7)
		require.True(t, ok)
		assert.Equal(t, item.ID, got.ID)
	})

	t.Run("slot taken", func(t *testing.T) {
		character := testutil.CreateCharacter(t, testDB, 0)
		putInInventory(t, character.ID, testutil.CreateItem(t, testDB, domain.ItemTypeWeapon, 10), 3)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeBelt, 10)
		slot := 3

		_, err := service.AddItem(ctx, character.ID, item.ID, &slot)
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
		assert.Equal(t, 1, loadInventory(t, character.ID).Len())
	})

	t.Run("slot out of range", func(t *testing.T) {
		character := testutil.CreateCharacter(t, testDB, 0)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeBelt, 10)
		slot := domain.InventorySlots

		_, err := service.AddItem(ctx, character.ID, item.ID, &slot)
		assert.ErrorIs(t, err, domain.ErrSlotOutOfRange)
	})

	t.Run("item owned by someone else", func(t *testing.T) {
		owner := testutil.CreateCharacter(t, testDB, 0)
		other := testutil.CreateCharacter(t, testDB, 0)
		item := testutil.CreateItem(t, testDB, domain.ItemTypeNeck, 10)
		putInInventory(t, owner.ID, item, 0)

		_, err := service.AddItem(ctx, other.ID, item.ID, nil)
		assert.ErrorIs(t, err, ErrItemAlreadyOwned)
	})

	t.Run("unknown item", func(t *testing.T) {
		character := testutil.CreateCharacter(t, testDB, 0)

		_, err := service.AddItem(ctx, character.ID, uuid.New(), nil)
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
	})
}

func TestInventoryService_EquipItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newTestInventoryService()

	character := testutil.CreateCharacter(t, testDB, 0)
	first := testutil.CreateItem(t, testDB, domain.ItemTypeWeapon, 10)
	second := testutil.CreateItem(t, testDB, domain.ItemTypeWeapon, 10)
	putInInventory(t, character.ID, first, 0)
	putInInventory(t, character.ID, second, 1)

	_, err := service.EquipItem(ctx, character.ID, first.ID)
	require.NoError(t, err)

	inv, err := service.EquipItem(ctx, character.ID, second.ID)
	require.NoError(t, err)

	equipped, ok := inv.FindEquippedItemOfType(domain.ItemTypeWeapon)
	require.True(t, ok)
	assert.Equal(t, second.ID, equipped.ID)

	stored := loadInventory(t, character.ID)
	assert.Len(t, stored.EquippedItems(), 1)
	got, _ := stored.ItemForSlot(0)
	assert.False(t, got.IsEquipped())

	t.Run("unequip", func(t *testing.T) {
		inv, err := service.UnequipItem(ctx, character.ID, second.ID)
		require.NoError(t, err)
		assert.Empty(t, inv.EquippedItems())
	})

	t.Run("item not in inventory", func(t *testing.T) {
		_, err := service.EquipItem(ctx, character.ID, uuid.New())
		assert.ErrorIs(t, err, ErrItemNotInInventory)
	})
}

func TestInventoryService_Effects(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newTestInventoryService()

	character := testutil.CreateCharacter(t, testDB, 0)
	weapon := testutil.CreateItem(t, testDB, domain.ItemTypeWeapon, 10)
	ring := testutil.CreateItem(t, testDB, domain.ItemTypeRing, 10)
	loose := testutil.CreateItem(t, testDB, domain.ItemTypeHead, 10)
	putInInventory(t, character.ID, weapon, 0)
	putInInventory(t, character.ID, ring, 1)
	putInInventory(t, character.ID, loose, 2)

	effects, err := service.Effects(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, effects[domain.EffectAttack])

	_, err = service.EquipItem(ctx, character.ID, weapon.ID)
	require.NoError(t, err)
	_, err = service.EquipItem(ctx, character.ID, ring.ID)
	require.NoError(t, err)

	effects, err = service.Effects(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, weapon.Attack+ring.Attack, effects[domain.EffectAttack])
	assert.Equal(t, weapon.Defense+ring.Defense, effects[domain.EffectDefense])
	assert.Equal(t, weapon.Hp+ring.Hp, effects[domain.EffectHp])
}

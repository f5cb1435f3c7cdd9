package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehall/internal/domain"
	"tradehall/internal/testutil"
)

func TestStoreRepository_CreateFindSave(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	repo := NewStoreRepository(testDB)
	owner := testutil.CreateCharacter(t, testDB, 0)

	store, err := domain.NewStore(uuid.New(), owner.ID, domain.StoreTypeBuyAndSell, nil, domain.NewMoney(100))
	require.NoError(t, err)
	helmet := testutil.CreateItem(t, testDB, domain.ItemTypeHead, 40)
	require.NoError(t, store.Add(helmet))
	require.NoError(t, repo.Create(ctx, store))

	found, err := repo.FindByID(ctx, store.ID())
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.CharacterID())
	assert.Equal(t, domain.StoreTypeBuyAndSell, found.Type())
	assert.Equal(t, domain.NewMoney(100), found.Money())
	listed, ok := found.FindItem(helmet.ID)
	require.True(t, ok)
	assert.Equal(t, domain.NewMoney(40), listed.Price)

	_, err = found.TakeOut(helmet.ID)
	require.NoError(t, err)
	found.PutMoneyIn(domain.NewMoney(40))
	require.NoError(t, repo.Save(ctx, found))

	reloaded, err := repo.FindByID(ctx, store.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Len())
	assert.Equal(t, domain.NewMoney(140), reloaded.Money())
}

func TestStoreRepository_FindByIDForUpdate(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	owner := testutil.CreateCharacter(t, testDB, 0)

	store, err := domain.NewStore(uuid.New(), owner.ID, domain.StoreTypeSellOnly, nil, domain.NewMoney(0))
	require.NoError(t, err)
	require.NoError(t, NewStoreRepository(testDB).Create(ctx, store))

	err = InTx(ctx, testDB, func(tx *sqlx.Tx) error {
		locked, err := NewStoreRepository(tx).FindByIDForUpdate(ctx, store.ID())
		if err != nil {
			return err
		}
		assert.Equal(t, store.ID(), locked.ID())
		return nil
	})
	require.NoError(t, err)
}

func TestStoreRepository_NotFound(t *testing.T) {
	testutil.RequireDB(t, testDB)

	_, err := NewStoreRepository(testDB).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
)

func TestRetailerRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	repo := NewRetailerRepository(db)
	ctx := context.Background()

	r := &entities.RetailerProfile{
		AccountID:   null.StringFrom("ext-42"),
		Name:        "Kirana Store",
		PhoneNumber: "9123456780",
		Address:     "Market Road",
	}
	require.NoError(t, repo.Create(ctx, r))
	require.NotEqual(t, uuid.Nil, r.ID)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "Kirana Store", got.Name)
	require.Equal(t, "ext-42", got.AccountID.String)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRetailerRepository_CreateWithExplicitID(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	repo := NewRetailerRepository(db)
	ctx := context.Background()

	id := uuid.New()
	r := &entities.RetailerProfile{ID: id, Name: "Fixed ID Store", PhoneNumber: "9000000000"}
	require.NoError(t, repo.Create(ctx, r))
	require.Equal(t, id, r.ID)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Fixed ID Store", got.Name)
	require.False(t, got.AccountID.Valid)
}

package service

import (
	"context"
	"testing"

	"github.com/facturio/facturio-api/internal/domain/repository"
	infraRepo "github.com/facturio/facturio-api/internal/infrastructure/repository"
	"github.com/facturio/facturio-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateRequiresAName(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewClientService(infraRepo.NewClientRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &ClientInput{UserID: user.ID})
	assert.Error(t, err)

	// A contact name alone is enough
	client, err := svc.Create(ctx, &ClientInput{
		UserID:           user.ID,
		ContactFirstname: "Jean",
		ContactLastname:  "Martin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jean Martin", client.DisplayName())
}

func TestClientListPagination(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewClientService(infraRepo.NewClientRepository(db))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := svc.Create(ctx, &ClientInput{UserID: user.ID, Name: "Client"})
		require.NoError(t, err)
	}

	result, err := svc.List(ctx, user.ID, &repository.ClientFilterParams{
		Pagination: &pagination.PaginationParams{Page: 2, PerPage: 15},
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, int64(20), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}

func TestClientUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	svc := NewClientService(infraRepo.NewClientRepository(db))
	ctx := context.Background()

	client, err := svc.Create(ctx, &ClientInput{UserID: user.ID, Name: "ACME"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, client.ID, &ClientInput{UserID: user.ID, Name: "ACME SARL", City: "Lyon"})
	require.NoError(t, err)
	assert.Equal(t, "ACME SARL", updated.Name)
	assert.Equal(t, "Lyon", updated.City)

	// Another user cannot touch it
	_, err = svc.Update(ctx, client.ID, &ClientInput{UserID: other.ID, Name: "X"})
	assert.Error(t, err)
	assert.Error(t, svc.Delete(ctx, other.ID, client.ID))

	require.NoError(t, svc.Delete(ctx, user.ID, client.ID))
	_, err = svc.GetByID(ctx, user.ID, client.ID)
	assert.Error(t, err)
}

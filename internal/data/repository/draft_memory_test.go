package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDraftRepository_RoundTripIsolated(t *testing.T) {
	repo := NewMemoryDraftRepository()
	ctx := context.Background()
	d := sampleDraft()
	require.NoError(t, repo.Create(ctx, d))

	// mutasi caller tidak boleh bocor ke store
	d.State.Seats[0] = "9-99"

	got, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1-10"}, got.State.Seats)
}

func TestMemoryDraftRepository_OptimisticUpdate(t *testing.T) {
	repo := NewMemoryDraftRepository()
	ctx := context.Background()
	d := sampleDraft()
	require.NoError(t, repo.Create(ctx, d))

	first, _ := repo.FindByID(ctx, d.ID)
	second, _ := repo.FindByID(ctx, d.ID)

	first.State.Seats = []string{"1-11"}
	require.NoError(t, repo.Update(ctx, first, first.Version))
	assert.Equal(t, d.Version+1, first.Version)

	second.State.Seats = []string{"1-12"}
	assert.ErrorIs(t, repo.Update(ctx, second, second.Version), ErrDraftConflict)

	got, _ := repo.FindByID(ctx, d.ID)
	assert.Equal(t, []string{"1-11"}, got.State.Seats)
}

func TestMemoryDraftRepository_DeleteAndExpire(t *testing.T) {
	repo := NewMemoryDraftRepository()
	ctx := context.Background()
	d := sampleDraft()
	require.NoError(t, repo.Create(ctx, d))

	ids, err := repo.DeleteExpired(ctx, d.UpdatedAt)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = repo.DeleteExpired(ctx, d.UpdatedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{d.ID}, ids)

	got, err := repo.FindByID(ctx, d.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.Delete(ctx, d.ID))
	assert.ErrorIs(t, repo.Update(ctx, d, d.Version), ErrDraftConflict)
}

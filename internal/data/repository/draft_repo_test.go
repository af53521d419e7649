package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"club-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockDraftRepo(t *testing.T) (pgxmock.PgxPoolIface, DraftRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewDraftRepository(mock, zap.NewNop())
}

func sampleDraft() *entity.Draft {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return &entity.Draft{
		ID:         uuid.MustParse("7d1f8c0e-4c0c-4a53-9a57-2b7f3c1e9a10"),
		OwnerID:    "42",
		Generation: 1,
		Version:    3,
		State: entity.DraftState{
			Tariff: &entity.Tariff{ID: 1, Name: "Standard", Price: 30, Hours: 3},
			Date:   "2025-03-14",
			Seats:  []string{"1-10"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDraftRepository_Create(t *testing.T) {
	mock, repo := newMockDraftRepo(t)
	d := sampleDraft()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_drafts")).
		WithArgs(d.ID, d.OwnerID, d.Generation, d.Version, pgxmock.AnyArg(), d.CreatedAt, d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_FindByID(t *testing.T) {
	mock, repo := newMockDraftRepo(t)
	d := sampleDraft()
	payload, err := json.Marshal(d.State)
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{"id", "owner_id", "generation", "version", "payload", "created_at", "updated_at"}).
		AddRow(d.ID, d.OwnerID, d.Generation, d.Version, payload, d.CreatedAt, d.UpdatedAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_drafts")).WithArgs(d.ID).WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), d.ID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.OwnerID, got.OwnerID)
	assert.Equal(t, d.State.Seats, got.State.Seats)
	assert.Equal(t, d.State.Tariff, got.State.Tariff)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newMockDraftRepo(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_drafts")).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftRepository_UpdateBumpsVersion(t *testing.T) {
	mock, repo := newMockDraftRepo(t)
	d := sampleDraft()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE booking_drafts")).
		WithArgs(d.ID, int64(3), d.Generation, int64(4), pgxmock.AnyArg(), d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), d, 3))
	assert.Equal(t, int64(4), d.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_UpdateConflict(t *testing.T) {
	mock, repo := newMockDraftRepo(t)
	d := sampleDraft()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE booking_drafts")).
		WithArgs(d.ID, int64(3), d.Generation, int64(4), pgxmock.AnyArg(), d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), d, 3)

	assert.ErrorIs(t, err, ErrDraftConflict)
	assert.Equal(t, int64(3), d.Version)
}

func TestDraftRepository_DeleteExpired(t *testing.T) {
	mock, repo := newMockDraftRepo(t)
	before := time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC)

	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM booking_drafts WHERE updated_at < $1 RETURNING id")).
		WithArgs(before).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(a).AddRow(b))

	ids, err := repo.DeleteExpired(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

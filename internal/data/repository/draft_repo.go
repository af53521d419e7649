package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"club-booking/internal/data/entity"
	"club-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrDraftConflict: draft sudah diubah request lain sejak dibaca.
var ErrDraftConflict = errors.New("booking draft was modified concurrently")

// DraftSchema creates the table used by the Postgres draft store.
var DraftSchema = []string{
	`CREATE TABLE IF NOT EXISTS booking_drafts (
		id          UUID PRIMARY KEY,
		owner_id    TEXT        NOT NULL,
		generation  BIGINT      NOT NULL DEFAULT 0,
		version     BIGINT      NOT NULL DEFAULT 0,
		payload     JSONB       NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_booking_drafts_updated_at ON booking_drafts (updated_at)`,
}

type DraftRepository interface {
	Create(ctx context.Context, draft *entity.Draft) error
	// FindByID returns nil, nil when the draft does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Draft, error)
	// Update stores draft only if the stored version still equals expectedVersion,
	// then sets draft.Version to expectedVersion+1. Otherwise it returns ErrDraftConflict.
	Update(ctx context.Context, draft *entity.Draft, expectedVersion int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes drafts not touched since before and returns their ids.
	DeleteExpired(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}

type draftRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDraftRepository(db database.PgxIface, log *zap.Logger) DraftRepository {
	return &draftRepository{
		db:  db,
		log: log.With(zap.String("repository", "draft")),
	}
}

func (r *draftRepository) Create(ctx context.Context, draft *entity.Draft) error {
	payload, err := json.Marshal(draft.State)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	query := `
		INSERT INTO booking_drafts (id, owner_id, generation, version, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Exec(ctx, query,
		draft.ID,
		draft.OwnerID,
		draft.Generation,
		draft.Version,
		payload,
		draft.CreatedAt,
		draft.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create draft",
			zap.Error(err),
			zap.String("draft_id", draft.ID.String()),
		)
		return fmt.Errorf("failed to create draft: %w", err)
	}

	return nil
}

func (r *draftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Draft, error) {
	query := `
		SELECT id, owner_id, generation, version, payload, created_at, updated_at
		FROM booking_drafts
		WHERE id = $1
	`

	var (
		draft   entity.Draft
		payload []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&draft.ID,
		&draft.OwnerID,
		&draft.Generation,
		&draft.Version,
		&payload,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find draft", zap.Error(err), zap.String("draft_id", id.String()))
		return nil, fmt.Errorf("failed to find draft: %w", err)
	}

	if err := json.Unmarshal(payload, &draft.State); err != nil {
		return nil, fmt.Errorf("failed to decode draft %s: %w", id, err)
	}

	return &draft, nil
}

func (r *draftRepository) Update(ctx context.Context, draft *entity.Draft, expectedVersion int64) error {
	payload, err := json.Marshal(draft.State)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	query := `
		UPDATE booking_drafts
		SET generation = $3, version = $4, payload = $5, updated_at = $6
		WHERE id = $1 AND version = $2
	`

	tag, err := r.db.Exec(ctx, query,
		draft.ID,
		expectedVersion,
		draft.Generation,
		expectedVersion+1,
		payload,
		draft.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update draft", zap.Error(err), zap.String("draft_id", draft.ID.String()))
		return fmt.Errorf("failed to update draft: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDraftConflict
	}

	draft.Version = expectedVersion + 1
	return nil
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM booking_drafts WHERE id = $1`, id); err != nil {
		r.log.Error("Failed to delete draft", zap.Error(err), zap.String("draft_id", id.String()))
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (r *draftRepository) DeleteExpired(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM booking_drafts WHERE updated_at < $1 RETURNING id`, before)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired drafts: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired drafts: %w", err)
	}
	return ids, nil
}

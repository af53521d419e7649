package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"club-booking/internal/data/entity"

	"github.com/google/uuid"
)

// memoryDraftRepository dipakai jika DB_HOST kosong (dev, single instance).
// Drafts are stored as deep copies so callers never share state with the store.
type memoryDraftRepository struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]entity.Draft
}

func NewMemoryDraftRepository() DraftRepository {
	return &memoryDraftRepository{drafts: make(map[uuid.UUID]entity.Draft)}
}

func (r *memoryDraftRepository) Create(ctx context.Context, draft *entity.Draft) error {
	stored, err := cloneDraft(draft)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.drafts[draft.ID]; exists {
		return fmt.Errorf("draft %s already exists", draft.ID)
	}
	r.drafts[draft.ID] = *stored
	return nil
}

func (r *memoryDraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Draft, error) {
	r.mu.Lock()
	stored, ok := r.drafts[id]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return cloneDraft(&stored)
}

func (r *memoryDraftRepository) Update(ctx context.Context, draft *entity.Draft, expectedVersion int64) error {
	next, err := cloneDraft(draft)
	if err != nil {
		return err
	}
	next.Version = expectedVersion + 1

	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.drafts[draft.ID]
	if !ok || current.Version != expectedVersion {
		return ErrDraftConflict
	}
	r.drafts[draft.ID] = *next
	draft.Version = next.Version
	return nil
}

func (r *memoryDraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
	return nil
}

func (r *memoryDraftRepository) DeleteExpired(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for id, d := range r.drafts {
		if d.UpdatedAt.Before(before) {
			delete(r.drafts, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// cloneDraft round-trips the state through JSON, the same encoding the Postgres store uses.
func cloneDraft(d *entity.Draft) (*entity.Draft, error) {
	raw, err := json.Marshal(d.State)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	out := *d
	out.State = entity.DraftState{}
	if err := json.Unmarshal(raw, &out.State); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &out, nil
}

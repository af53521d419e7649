package repository

import (
	"context"
	"fmt"
	"strconv"

	"club-booking/internal/data/entity"

	"go.uber.org/zap"
)

type PCRepository interface {
	FindAll(ctx context.Context) ([]entity.PC, error)
	Update(ctx context.Context, id int64, in entity.PCUpdate) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
}

type pcRepository struct {
	api Upstream
	log *zap.Logger
}

func NewPCRepository(api Upstream, log *zap.Logger) PCRepository {
	return &pcRepository{
		api: api,
		log: log.With(zap.String("repository", "pc")),
	}
}

func (r *pcRepository) FindAll(ctx context.Context) ([]entity.PC, error) {
	var payload []pcPayload
	if err := r.api.Get(ctx, "/api/v1/pcs/allPc", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get pcs: %w", err)
	}

	pcs, err := decodeAll(payload, pcPayload.toEntity)
	if err != nil {
		r.log.Error("Unexpected pc payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode pcs: %w", err)
	}
	return pcs, nil
}

func (r *pcRepository) Update(ctx context.Context, id int64, in entity.PCUpdate) error {
	if err := r.api.Put(ctx, "/api/v1/pcs/updatePc/"+strconv.FormatInt(id, 10), in, nil); err != nil {
		return fmt.Errorf("failed to update pc %d: %w", id, err)
	}
	return nil
}

// SetEnabled memakai endpoint activatePs/disablePs (nama dari backend).
func (r *pcRepository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	action := "disablePs"
	if enabled {
		action = "activatePs"
	}
	if err := r.api.Put(ctx, "/api/v1/pcs/"+action+"/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("failed to %s pc %d: %w", action, id, err)
	}
	return nil
}

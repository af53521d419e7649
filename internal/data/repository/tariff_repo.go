package repository

import (
	"context"
	"fmt"
	"strconv"

	"club-booking/internal/data/entity"

	"go.uber.org/zap"
)

type TariffRepository interface {
	FindAll(ctx context.Context) ([]entity.Tariff, error)
	// FindByID returns nil, nil when the tariff does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Tariff, error)
	Create(ctx context.Context, in entity.TariffInput) (*entity.Tariff, error)
	Update(ctx context.Context, id int64, in entity.TariffInput) (*entity.Tariff, error)
	Delete(ctx context.Context, id int64) error
}

type tariffRepository struct {
	api Upstream
	log *zap.Logger
}

func NewTariffRepository(api Upstream, log *zap.Logger) TariffRepository {
	return &tariffRepository{
		api: api,
		log: log.With(zap.String("repository", "tariff")),
	}
}

func (r *tariffRepository) FindAll(ctx context.Context) ([]entity.Tariff, error) {
	var payload []tariffPayload
	if err := r.api.Get(ctx, "/api/v1/tariffs/allTariffs", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get tariffs: %w", err)
	}

	tariffs, err := decodeAll(payload, tariffPayload.toEntity)
	if err != nil {
		r.log.Error("Unexpected tariff payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode tariffs: %w", err)
	}
	return tariffs, nil
}

// Backend tidak punya endpoint detail tarif, jadi dicari dari list.
func (r *tariffRepository) FindByID(ctx context.Context, id int64) (*entity.Tariff, error) {
	tariffs, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tariffs {
		if tariffs[i].ID == id {
			return &tariffs[i], nil
		}
	}
	return nil, nil
}

func (r *tariffRepository) Create(ctx context.Context, in entity.TariffInput) (*entity.Tariff, error) {
	var payload tariffPayload
	if err := r.api.Post(ctx, "/api/v1/tariffs/createTariff", in, &payload); err != nil {
		return nil, fmt.Errorf("failed to create tariff %q: %w", in.Name, err)
	}
	return r.decodeOne(payload)
}

func (r *tariffRepository) Update(ctx context.Context, id int64, in entity.TariffInput) (*entity.Tariff, error) {
	var payload tariffPayload
	path := "/api/v1/tariffs/updateTariff/" + strconv.FormatInt(id, 10)
	if err := r.api.Put(ctx, path, in, &payload); err != nil {
		return nil, fmt.Errorf("failed to update tariff %d: %w", id, err)
	}
	return r.decodeOne(payload)
}

func (r *tariffRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, "/api/v1/tariffs/deleteTariff/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("failed to delete tariff %d: %w", id, err)
	}
	return nil
}

func (r *tariffRepository) decodeOne(payload tariffPayload) (*entity.Tariff, error) {
	tariff, err := payload.toEntity()
	if err != nil {
		r.log.Error("Unexpected tariff payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode tariff: %w", err)
	}
	return &tariff, nil
}

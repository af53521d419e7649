package repository

import (
	"context"
	"fmt"

	"club-booking/internal/data/entity"

	"go.uber.org/zap"
)

type ProfileRepository interface {
	// Get returns the profile of the caller whose credentials are in ctx.
	Get(ctx context.Context) (*entity.Profile, error)
	Update(ctx context.Context, in entity.ProfileUpdate) (*entity.Profile, error)
}

type profileRepository struct {
	api Upstream
	log *zap.Logger
}

func NewProfileRepository(api Upstream, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		api: api,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var payload profilePayload
	if err := r.api.Get(ctx, "/api/v1/profile/getProfile", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile, err := payload.toEntity()
	if err != nil {
		r.log.Error("Unexpected profile payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, in entity.ProfileUpdate) (*entity.Profile, error) {
	var payload profilePayload
	if err := r.api.Put(ctx, "/api/v1/profile/update", in, &payload); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile, err := payload.toEntity()
	if err != nil {
		r.log.Error("Unexpected profile payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

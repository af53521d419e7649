package repository

import (
	"context"
	"fmt"
	"strconv"

	"club-booking/internal/data/entity"

	"go.uber.org/zap"
)

// UserRepository is the admin view of the user service.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.Profile, error)
	Block(ctx context.Context, id int64) (*entity.Profile, error)
	Unblock(ctx context.Context, id int64) (*entity.Profile, error)
	// AddCoins adds coins to the user's bonus balance (upstream increments, it does not set).
	AddCoins(ctx context.Context, id int64, coins int) (*entity.Profile, error)
}

type userRepository struct {
	api Upstream
	log *zap.Logger
}

func NewUserRepository(api Upstream, log *zap.Logger) UserRepository {
	return &userRepository{
		api: api,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.Profile, error) {
	var payload []profilePayload
	if err := r.api.Get(ctx, "/api/v1/users/getAllUsers", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users, err := decodeAll(payload, profilePayload.toEntity)
	if err != nil {
		r.log.Error("Unexpected user payload", zap.Error(err))
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Block(ctx context.Context, id int64) (*entity.Profile, error) {
	return r.put(ctx, "/api/v1/users/blockUser/"+strconv.FormatInt(id, 10), nil)
}

func (r *userRepository) Unblock(ctx context.Context, id int64) (*entity.Profile, error) {
	return r.put(ctx, "/api/v1/users/unBlockUser/"+strconv.FormatInt(id, 10), nil)
}

func (r *userRepository) AddCoins(ctx context.Context, id int64, coins int) (*entity.Profile, error) {
	body := map[string]int{"coins": coins}
	return r.put(ctx, "/api/v1/users/coins/"+strconv.FormatInt(id, 10), body)
}

func (r *userRepository) put(ctx context.Context, path string, body any) (*entity.Profile, error) {
	var payload profilePayload
	if err := r.api.Put(ctx, path, body, &payload); err != nil {
		return nil, fmt.Errorf("PUT %s: %w", path, err)
	}

	user, err := payload.toEntity()
	if err != nil {
		r.log.Error("Unexpected user payload", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

package repository

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"club-booking/internal/data/entity"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	defaultProfileTTL = 10 * time.Minute
	nonceSize         = 24
)

var errSealedProfile = errors.New("cannot open cached profile")

// ProfileCache menyimpan profil terakhir yang berhasil diambil (best-effort).
type ProfileCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, userID string) (*entity.Profile, error)
	Set(ctx context.Context, userID string, profile *entity.Profile) error
}

// redisProfileCache menyimpan profil (berisi email & telepon) dalam bentuk terenkripsi secretbox.
type redisProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
	key [32]byte
	log *zap.Logger
}

// NewRedisProfileCache derives the sealing key from secret.
func NewRedisProfileCache(rdb *redis.Client, ttl time.Duration, secret string, log *zap.Logger) ProfileCache {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &redisProfileCache{
		rdb: rdb,
		ttl: ttl,
		key: sha256.Sum256([]byte("profile-cache:" + secret)),
		log: log.With(zap.String("repository", "profile_cache")),
	}
}

func profileKey(userID string) string {
	return "club-booking:profile:" + userID
}

func (c *redisProfileCache) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	raw, err := c.rdb.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached profile: %w", err)
	}

	var profile entity.Profile
	plain, err := c.open(raw)
	if err == nil {
		err = json.Unmarshal(plain, &profile)
	}
	if err != nil {
		c.log.Warn("Dropping corrupt cached profile", zap.String("user_id", userID), zap.Error(err))
		_ = c.rdb.Del(ctx, profileKey(userID)).Err()
		return nil, nil
	}
	return &profile, nil
}

func (c *redisProfileCache) Set(ctx context.Context, userID string, profile *entity.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	sealed, err := c.seal(raw)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, profileKey(userID), sealed, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}

func (c *redisProfileCache) seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plain, &nonce, &c.key), nil
}

func (c *redisProfileCache) open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, errSealedProfile
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, errSealedProfile
	}
	return plain, nil
}

type noopProfileCache struct{}

func NewNoopProfileCache() ProfileCache { return noopProfileCache{} }

func (noopProfileCache) Get(context.Context, string) (*entity.Profile, error) { return nil, nil }

func (noopProfileCache) Set(context.Context, string, *entity.Profile) error { return nil }

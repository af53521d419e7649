package repository

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"club-booking/pkg/database"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Upstream is the club backend client (apiclient.Client).
type Upstream interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
	Do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error)
}

type Repository struct {
	Account      AccountRepository
	Tariff       TariffRepository
	PC           PCRepository
	Session      SessionRepository
	Profile      ProfileRepository
	User         UserRepository
	ProfileCache ProfileCache
	Draft        DraftRepository
}

type Options struct {
	// DB nil: draft disimpan di memori
	DB database.PgxIface
	// Redis nil: cache profil dimatikan
	Redis      *redis.Client
	ProfileTTL time.Duration
	// CacheSecret dipakai untuk mengenkripsi profil di Redis
	CacheSecret string
}

func NewRepository(api Upstream, opts Options, log *zap.Logger) *Repository {
	repo := &Repository{
		Account:      NewAccountRepository(api, log),
		Tariff:       NewTariffRepository(api, log),
		PC:           NewPCRepository(api, log),
		Session:      NewSessionRepository(api, log),
		Profile:      NewProfileRepository(api, log),
		User:         NewUserRepository(api, log),
		ProfileCache: NewNoopProfileCache(),
		Draft:        NewMemoryDraftRepository(),
	}
	if opts.DB != nil {
		repo.Draft = NewDraftRepository(opts.DB, log)
	}
	if opts.Redis != nil {
		repo.ProfileCache = NewRedisProfileCache(opts.Redis, opts.ProfileTTL, opts.CacheSecret, log)
	}
	return repo
}

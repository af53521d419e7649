package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

// UpstreamConfig menunjuk ke backend klub (auth, tariffs, pcs, sessions, profile).
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatabaseConfig is optional. An empty Host keeps drafts in memory.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// RedisConfig is optional. An empty Addr disables the profile cache.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	ProfileTTL time.Duration
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type JWTConfig struct {
	Secret     string
	CookieName string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type BookingConfig struct {
	BonusUnitsPerCurrency int
	MaxBonusShare         float64
	EarnRate              float64
	DraftTTL              time.Duration
	CleanupInterval       time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "club-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8081")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PROFILE_TTL", "10m")
	v.SetDefault("JWT_COOKIE_NAME", "auth_token")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	v.SetDefault("BONUS_UNITS_PER_CURRENCY", 100)
	v.SetDefault("BONUS_MAX_SHARE", 0.5)
	v.SetDefault("BONUS_EARN_RATE", 0.10)
	v.SetDefault("BOOKING_DRAFT_TTL", "2h")
	v.SetDefault("BOOKING_CLEANUP_INTERVAL", "10m")

	// .env opsional, environment variable tetap dipakai
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
			Timeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:       v.GetString("REDIS_ADDR"),
			Password:   v.GetString("REDIS_PASSWORD"),
			DB:         v.GetInt("REDIS_DB"),
			ProfileTTL: v.GetDuration("REDIS_PROFILE_TTL"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			CookieName: v.GetString("JWT_COOKIE_NAME"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Booking: BookingConfig{
			BonusUnitsPerCurrency: v.GetInt("BONUS_UNITS_PER_CURRENCY"),
			MaxBonusShare:         v.GetFloat64("BONUS_MAX_SHARE"),
			EarnRate:              v.GetFloat64("BONUS_EARN_RATE"),
			DraftTTL:              v.GetDuration("BOOKING_DRAFT_TTL"),
			CleanupInterval:       v.GetDuration("BOOKING_CLEANUP_INTERVAL"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Upstream.BaseURL == "" {
		return errors.New("UPSTREAM_BASE_URL is required")
	}
	if c.Booking.BonusUnitsPerCurrency <= 0 {
		return fmt.Errorf("BONUS_UNITS_PER_CURRENCY must be positive, got %d", c.Booking.BonusUnitsPerCurrency)
	}
	if c.Booking.MaxBonusShare < 0 || c.Booking.MaxBonusShare > 1 {
		return fmt.Errorf("BONUS_MAX_SHARE must be within [0,1], got %v", c.Booking.MaxBonusShare)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

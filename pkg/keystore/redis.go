package keystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/franchiseos/franchiseos-go/pkg/config"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "franchiseos:credentials:"

// RedisStore keeps credentials in Redis for deployments where several
// dashboard hosts share one service account.
type RedisStore struct {
	raw *redis.Client
}

// NewRedisStore connects to Redis and verifies connectivity before returning.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, logg *logger.Logger) (*RedisStore, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	if logg != nil {
		logg.Debug(ctx, "redis credential store connected")
	}
	return &RedisStore{raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	return opts, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.raw.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading credential: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.raw.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	namespaced := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaced = append(namespaced, redisKeyPrefix+key)
	}
	if err := s.raw.Del(ctx, namespaced...).Err(); err != nil {
		return fmt.Errorf("deleting credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.raw.Close()
}

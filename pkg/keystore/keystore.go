package keystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/franchiseos/franchiseos-go/pkg/config"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
)

// Fixed keys under which session credentials are persisted. Stored values are
// rehydrated at process start, so the keys must stay stable across releases.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("keystore: key not found")

// Store is durable client-side credential storage. Implementations must be
// safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open builds the store selected by configuration.
func Open(ctx context.Context, cfg config.StorageConfig, redisCfg config.RedisConfig, logg *logger.Logger) (Store, error) {
	switch cfg.Backend {
	case config.StorageBackendFile:
		return NewFileStore(cfg.Path)
	case config.StorageBackendSQLite:
		return NewSQLiteStore(cfg.Path)
	case config.StorageBackendRedis:
		return NewRedisStore(ctx, redisCfg, logg)
	case config.StorageBackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

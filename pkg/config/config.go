package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable consumed by the SDK.
const EnvPrefix = "franchiseos"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Storage backend identifiers accepted by StorageConfig.Backend.
const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Redis   RedisConfig
	Debug   DebugConfig
	Refresh RefreshConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Storage.ensurePath(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FRANCHISEOS_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"FRANCHISEOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FRANCHISEOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the SDK at the platform REST API.
type APIConfig struct {
	BaseURL   string        `envconfig:"FRANCHISEOS_API_URL" default:"http://localhost:8080/api/v1"`
	Timeout   time.Duration `envconfig:"FRANCHISEOS_API_TIMEOUT" default:"15s"`
	UserAgent string        `envconfig:"FRANCHISEOS_API_USER_AGENT" default:"franchiseos-go"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api base url %q must be absolute", a.BaseURL)
	}
	return nil
}

// StorageConfig selects where credential tokens are persisted between runs.
type StorageConfig struct {
	Backend string `envconfig:"FRANCHISEOS_STORAGE_BACKEND" default:"file"`
	Path    string `envconfig:"FRANCHISEOS_STORAGE_PATH"`
}

func (s *StorageConfig) ensurePath() error {
	switch s.Backend {
	case StorageBackendFile, StorageBackendSQLite:
	case StorageBackendRedis, StorageBackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	if s.Path != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory for storage path: %w", err)
	}
	name := "credentials.json"
	if s.Backend == StorageBackendSQLite {
		name = "credentials.db"
	}
	s.Path = filepath.Join(home, ".franchiseos", name)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"FRANCHISEOS_REDIS_URL"`
	Address      string        `envconfig:"FRANCHISEOS_REDIS_ADDR"`
	Password     string        `envconfig:"FRANCHISEOS_REDIS_PASSWORD"`
	DB           int           `envconfig:"FRANCHISEOS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FRANCHISEOS_REDIS_POOL_SIZE" default:"5"`
	MinIdleConns int           `envconfig:"FRANCHISEOS_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"FRANCHISEOS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FRANCHISEOS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FRANCHISEOS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// DebugConfig controls the agent's local diagnostics listener.
type DebugConfig struct {
	Addr string `envconfig:"FRANCHISEOS_DEBUG_ADDR" default:":9464"`
}

// RefreshConfig tunes the agent's background sync cadence.
type RefreshConfig struct {
	Interval time.Duration `envconfig:"FRANCHISEOS_REFRESH_INTERVAL" default:"5m"`
}

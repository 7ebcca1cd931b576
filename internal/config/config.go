package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

var (
	ErrUnknownCacheBackend = errors.New("unknown cache backend")
	ErrInvalidCacheTTL     = errors.New("cache ttl must be positive")
	ErrInvalidCacheSize    = errors.New("cache size must be positive")
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile     string  `yaml:"log-file" env:"LOG_FILE"`
	HTTPPort    string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	DatabaseURL string  `yaml:"database-url" env:"DATABASE_URL" env-required:"true"`
	Cache       Cache   `yaml:"cache"`
	Redis       Redis   `yaml:"redis"`
	Tracing     Tracing `yaml:"tracing"`
}

type Cache struct {
	Enabled bool          `yaml:"enabled" env:"CACHE_ENABLED"`
	Backend string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
	Size    int           `yaml:"size" env:"CACHE_SIZE" env-default:"100"`
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"30s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Tracing struct {
	Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads .env into the environment, then the yml file at path with env overrides.
// A missing yml file is not an error, the environment alone is used then.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Cache.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Cache) validate() error {
	switch that.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCacheBackend, that.Backend)
	}

	if that.TTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCacheTTL, that.TTL)
	}

	if that.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, that.Size)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

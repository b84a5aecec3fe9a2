package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable read by Load
const EnvPrefix = "HAPTICS_"

// Config holds all service configuration
type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	Upstream UpstreamConfig `envPrefix:"UPSTREAM_"`
	Audio    AudioConfig    `envPrefix:"AUDIO_"`
	Cache    CacheConfig    `envPrefix:"CACHE_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Taxonomy TaxonomyConfig `envPrefix:"TAXONOMY_"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host         string        `env:"HOST" envDefault:"0.0.0.0"`
	Port         int           `env:"PORT" envDefault:"8080"`
	Mode         string        `env:"MODE" envDefault:"debug"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
}

// AuthConfig holds the shared secret clients send in the Authorization header
type AuthConfig struct {
	Key string `env:"KEY"`
}

// UpstreamConfig holds the zero-shot classification endpoint settings
type UpstreamConfig struct {
	URL        string        `env:"URL" envDefault:"https://api-inference.huggingface.co/models/facebook/bart-large-mnli"`
	Token      string        `env:"TOKEN"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	RunTimeout time.Duration `env:"RUN_TIMEOUT" envDefault:"55s"`
}

// AudioConfig holds the location of the audio cues
type AudioConfig struct {
	Dir string `env:"DIR" envDefault:"audio_files"`
}

// CacheConfig holds result cache settings
type CacheConfig struct {
	Backend string        `env:"BACKEND" envDefault:"memory"`
	MaxSize int           `env:"MAX_SIZE" envDefault:"100"`
	TTL     time.Duration `env:"TTL" envDefault:"5m"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// DatabaseConfig holds classification history database settings
type DatabaseConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"haptics"`
	Password string `env:"PASSWORD" envDefault:"haptics"`
	DBName   string `env:"NAME" envDefault:"haptics"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// TaxonomyConfig selects the class taxonomy
type TaxonomyConfig struct {
	Path string `env:"PATH"`
	Mode string `env:"MODE" envDefault:"hierarchical"`
}

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Load loads .env (if present) and parses environment variables into Config
func Load() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings that have no safe default
func (c *Config) Validate() error {
	var errs []error
	if c.Auth.Key == "" {
		errs = append(errs, fmt.Errorf("%sAUTH_KEY is required", EnvPrefix))
	}
	if c.Upstream.Token == "" {
		errs = append(errs, fmt.Errorf("%sUPSTREAM_TOKEN is required", EnvPrefix))
	}
	if c.Upstream.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%sUPSTREAM_TIMEOUT must be positive", EnvPrefix))
	}
	if c.Upstream.RunTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%sUPSTREAM_RUN_TIMEOUT must be positive", EnvPrefix))
	} else if c.Server.WriteTimeout > 0 && c.Upstream.RunTimeout >= c.Server.WriteTimeout {
		errs = append(errs, fmt.Errorf("%sUPSTREAM_RUN_TIMEOUT (%s) must be shorter than %sSERVER_WRITE_TIMEOUT (%s)",
			EnvPrefix, c.Upstream.RunTimeout, EnvPrefix, c.Server.WriteTimeout))
	}
	if c.Cache.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("%sCACHE_MAX_SIZE must be positive", EnvPrefix))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("%sCACHE_TTL must be positive", EnvPrefix))
	}
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		errs = append(errs, fmt.Errorf("%sCACHE_BACKEND %q is not supported", EnvPrefix, c.Cache.Backend))
	}
	return errors.Join(errs...)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

type Config struct {
	Port        int
	DatabaseURL string
	Backend     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StoreTimeout   time.Duration
	EnrichBatch    int
	RateLimitRPS   float64
	RateLimitBurst int

	QRServiceURL string
	StaticDir    string
	SeedSamples  bool

	LogMode string
	LogFile string
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("store_backend", BackendPostgres)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("store_timeout", 3*time.Second)
	v.SetDefault("enrich_batch_size", 100)
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)
	v.SetDefault("qr_service_url", "https://api.qrserver.com/v1/create-qr-code/")
	v.SetDefault("log_mode", "development")
	v.SetDefault("seed_samples", false)
}

// Load reads configuration from the environment. Values from envFiles (.env style)
// are loaded first and never override variables that are already set.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"port", "database_url", "store_backend", "redis_addr", "redis_password", "redis_db",
		"store_timeout", "enrich_batch_size", "rate_limit_rps", "rate_limit_burst",
		"qr_service_url", "static_dir", "seed_samples", "log_mode", "log_file",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := Config{
		Port:           v.GetInt("port"),
		DatabaseURL:    v.GetString("database_url"),
		Backend:        strings.ToLower(v.GetString("store_backend")),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		RedisDB:        v.GetInt("redis_db"),
		StoreTimeout:   v.GetDuration("store_timeout"),
		EnrichBatch:    v.GetInt("enrich_batch_size"),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
		QRServiceURL:   v.GetString("qr_service_url"),
		StaticDir:      v.GetString("static_dir"),
		SeedSamples:    v.GetBool("seed_samples"),
		LogMode:        v.GetString("log_mode"),
		LogFile:        v.GetString("log_file"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Backend)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}
	if c.EnrichBatch <= 0 {
		return errors.New("ENRICH_BATCH_SIZE must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

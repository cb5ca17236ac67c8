package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	DraftTTL time.Duration `mapstructure:"draft_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// EngineConfig tunes the simulated storage layer and the engine's
// timing behaviour.
type EngineConfig struct {
	Storage       string        `mapstructure:"storage"` // memory, postgres
	LatencyMin    time.Duration `mapstructure:"latency_min"`
	LatencyMax    time.Duration `mapstructure:"latency_max"`
	FailureRate   float64       `mapstructure:"failure_rate"` // 0.0 - 1.0
	Deterministic bool          `mapstructure:"deterministic"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryBase     time.Duration `mapstructure:"retry_base"`
	EventTick     time.Duration `mapstructure:"event_tick"`
	AutosaveDelay time.Duration `mapstructure:"autosave_delay"`
	PageSize      int           `mapstructure:"page_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: DRE_ (Dispute
// Resolution Engine). Nested keys use underscore: DRE_DATABASE_HOST,
// DRE_ENGINE_FAILURE_RATE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "dispute_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.draft_ttl", "72h")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "dispute-resolution-engine")
	v.SetDefault("engine.storage", "memory")
	v.SetDefault("engine.latency_min", "200ms")
	v.SetDefault("engine.latency_max", "800ms")
	v.SetDefault("engine.failure_rate", 0.05)
	v.SetDefault("engine.deterministic", false)
	v.SetDefault("engine.retry_attempts", 3)
	v.SetDefault("engine.retry_base", "300ms")
	v.SetDefault("engine.event_tick", "2s")
	v.SetDefault("engine.autosave_delay", "3s")
	v.SetDefault("engine.page_size", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: DRE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("DRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Engine.FailureRate < 0 || cfg.Engine.FailureRate > 1 {
		return nil, fmt.Errorf("engine.failure_rate must be within [0, 1], got %v", cfg.Engine.FailureRate)
	}
	if cfg.Engine.LatencyMax < cfg.Engine.LatencyMin {
		return nil, fmt.Errorf("engine.latency_max must be >= engine.latency_min")
	}

	return &cfg, nil
}

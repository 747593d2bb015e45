package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	AdmissionMemory = "memory"
	AdmissionRedis  = "redis"
)

type Config struct {
	Env        string          `json:"env"`
	Http       HttpConfig      `json:"http"`
	Storage    string          `json:"storage"`
	Postgres   PostgresConfig  `json:"postgres"`
	Redis      RedisConfig     `json:"redis"`
	Admission  AdmissionConfig `json:"admission"`
	Auth       AuthConfig      `json:"auth"`
	Notify     NotifyConfig    `json:"notify"`
	AdminLimit RateLimitConfig `json:"admin_limit"`
	Connect    ConnectConfig   `json:"connect"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP. Only
	// enable it behind a proxy that overwrites those headers.
	TrustProxy bool `json:"trust_proxy"`
}

type PostgresConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Database    string `json:"database"`
	User        string `json:"user"`
	Password    string `json:"password,omitempty"`
	SSLMode     string `json:"ssl_mode"`
	AutoMigrate bool   `json:"auto_migrate"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AdmissionConfig struct {
	Backend    string        `json:"backend"`
	Window     time.Duration `json:"window"`
	Limit      int           `json:"limit"`
	SweepEvery time.Duration `json:"sweep_every"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

type NotifyConfig struct {
	Enabled  bool   `json:"enabled"`
	QueueKey string `json:"queue_key"`

	// WebhookURL is where the relay posts queued notices. Empty leaves them in
	// the queue for an external consumer.
	WebhookURL  string        `json:"webhook_url"`
	WebhookWait time.Duration `json:"webhook_wait"`
}

type RateLimitConfig struct {
	RPS   float64 `json:"rps"`
	Burst int     `json:"burst"`
}

// ConnectConfig bounds the startup retry of Postgres and Redis.
type ConnectConfig struct {
	MaxElapsed time.Duration `json:"max_elapsed"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			TrustProxy:      getEnvBool("HTTP_TRUST_PROXY", false),
		},
		Storage: strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "rescueops"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			AutoMigrate:     getEnvBool("POSTGRES_AUTO_MIGRATE", true),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Admission: AdmissionConfig{
			Backend:    strings.ToLower(getEnv("ADMISSION_BACKEND", AdmissionMemory)),
			Window:     getEnvDuration("ADMISSION_WINDOW", time.Hour),
			Limit:      getEnvInt("ADMISSION_LIMIT", 1),
			SweepEvery: getEnvDuration("ADMISSION_SWEEP_EVERY", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "rescueops"),
		},
		Notify: NotifyConfig{
			Enabled:     getEnvBool("NOTIFY_ENABLED", true),
			QueueKey:    getEnv("NOTIFY_QUEUE_KEY", "notifications:queue"),
			WebhookURL:  getEnv("NOTIFY_WEBHOOK_URL", ""),
			WebhookWait: getEnvDuration("NOTIFY_WEBHOOK_TIMEOUT", 5*time.Second),
		},
		AdminLimit: RateLimitConfig{
			RPS:   getEnvFloat("ADMIN_RATE_RPS", 5),
			Burst: getEnvInt("ADMIN_RATE_BURST", 10),
		},
		Connect: ConnectConfig{
			MaxElapsed: getEnvDuration("CONNECT_MAX_ELAPSED", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage", cfg.Storage),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("admission_backend", cfg.Admission.Backend))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Storage {
	case StoragePostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q", StoragePostgres, StorageMemory)
	}

	switch c.Admission.Backend {
	case AdmissionMemory, AdmissionRedis:
	default:
		return fmt.Errorf("ADMISSION_BACKEND must be %q or %q", AdmissionMemory, AdmissionRedis)
	}
	if c.Admission.Window <= 0 {
		return errors.New("ADMISSION_WINDOW must be positive")
	}
	if c.Admission.Limit < 1 {
		return errors.New("ADMISSION_LIMIT must be at least 1")
	}
	if c.Admission.SweepEvery <= 0 {
		return errors.New("ADMISSION_SWEEP_EVERY must be positive")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}

	if c.Notify.WebhookURL != "" && !c.Notify.Enabled {
		return errors.New("NOTIFY_WEBHOOK_URL needs NOTIFY_ENABLED")
	}

	if c.AdminLimit.RPS <= 0 || c.AdminLimit.Burst < 1 {
		return errors.New("ADMIN_RATE_RPS and ADMIN_RATE_BURST must be positive")
	}

	return nil
}

// NeedsRedis reports whether any component is backed by Redis.
func (c *Config) NeedsRedis() bool {
	return c.Admission.Backend == AdmissionRedis || c.Notify.Enabled
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

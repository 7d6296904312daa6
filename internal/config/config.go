package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища записей
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Бэкенды реестра (леджера)
const (
	LedgerLevelDB = "leveldb"
	LedgerNode    = "node"
)

// Бэкенды блокировок
const (
	LockMemory = "memory"
	LockRedis  = "redis"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Store Config
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`
	DataDir      string `env:"DATA_DIR" envDefault:"."`
	MirrorDir    string `env:"MIRROR_DIR" envDefault:"data"`
	DatabaseURL  string `env:"DATABASE_URL"`

	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Ledger Config
	LedgerBackend string        `env:"LEDGER_BACKEND" envDefault:"leveldb"`
	LedgerPath    string        `env:"LEDGER_PATH" envDefault:"ledger_db"`
	LedgerNodeURL string        `env:"LEDGER_NODE_URL"`
	LedgerTimeout time.Duration `env:"LEDGER_TIMEOUT" envDefault:"10s"`

	// Dispatch Config
	LockBackend          string        `env:"LOCK_BACKEND" envDefault:"memory"`
	LockTTL              time.Duration `env:"LOCK_TTL" envDefault:"30s"`
	DispatchMaxAttempts  int           `env:"DISPATCH_MAX_ATTEMPTS" envDefault:"3"`
	NearestHospitalLimit int           `env:"NEAREST_HOSPITAL_LIMIT" envDefault:"5"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// NATS Config
	NATSURL string `env:"NATS_URL"`

	// Rate limit Config
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		StoreBackend:         getEnv("STORE_BACKEND", StoreFile),
		DataDir:              getEnv("DATA_DIR", "."),
		MirrorDir:            getEnv("MIRROR_DIR", "data"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		MigrationsDir:        getEnv("MIGRATIONS_DIR", "migrations"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		LedgerBackend:        getEnv("LEDGER_BACKEND", LedgerLevelDB),
		LedgerPath:           getEnv("LEDGER_PATH", "ledger_db"),
		LedgerNodeURL:        os.Getenv("LEDGER_NODE_URL"),
		LedgerTimeout:        getEnvAsDuration("LEDGER_TIMEOUT", 10*time.Second),
		LockBackend:          getEnv("LOCK_BACKEND", LockMemory),
		LockTTL:              getEnvAsDuration("LOCK_TTL", 30*time.Second),
		DispatchMaxAttempts:  getEnvAsInt("DISPATCH_MAX_ATTEMPTS", 3),
		NearestHospitalLimit: getEnvAsInt("NEAREST_HOSPITAL_LIMIT", 5),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		NATSURL:              os.Getenv("NATS_URL"),
		RateLimitRPS:         getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:       getEnvAsInt("RATE_LIMIT_BURST", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность выбранных бэкендов
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreFile, StoreRedis, StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for STORE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	switch c.LedgerBackend {
	case LedgerLevelDB:
	case LedgerNode:
		if c.LedgerNodeURL == "" {
			return fmt.Errorf("LEDGER_NODE_URL environment variable is required for LEDGER_BACKEND=node")
		}
	default:
		return fmt.Errorf("unknown LEDGER_BACKEND %q", c.LedgerBackend)
	}

	if c.LockBackend != LockMemory && c.LockBackend != LockRedis {
		return fmt.Errorf("unknown LOCK_BACKEND %q", c.LockBackend)
	}

	if c.DispatchMaxAttempts < 1 {
		c.DispatchMaxAttempts = 1
	}
	return nil
}

// NeedsRedis сообщает, нужен ли клиент Redis при текущей конфигурации
func (c *Config) NeedsRedis() bool {
	return c.StoreBackend == StoreRedis || c.LockBackend == LockRedis || c.WebhookURL != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Приемники алертов
const (
	AlertSinkNone  = "none"
	AlertSinkRedis = "redis"
	AlertSinkKafka = "kafka"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Model & reference data
	ModelDir      string `env:"MODEL_DIR" envDefault:"./models"`
	ReferenceFile string `env:"REFERENCE_FILE"`
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Alerts
	AlertSink       string   `env:"ALERT_SINK" envDefault:"none"`
	KafkaBrokers    []string `env:"KAFKA_BROKERS"`
	KafkaAlertTopic string   `env:"KAFKA_ALERT_TOPIC" envDefault:"food-risk-alerts"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		ModelDir:          getEnv("MODEL_DIR", "./models"),
		ReferenceFile:     os.Getenv("REFERENCE_FILE"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "file://migrations"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		AlertSink:         strings.ToLower(getEnv("ALERT_SINK", AlertSinkNone)),
		KafkaBrokers:      getEnvAsList("KAFKA_BROKERS"),
		KafkaAlertTopic:   getEnv("KAFKA_ALERT_TOPIC", "food-risk-alerts"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:           getEnvAsList("API_KEYS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AlertSink {
	case AlertSinkNone, AlertSinkRedis:
	case AlertSinkKafka:
		if len(c.KafkaBrokers) == 0 {
			return errors.New("KAFKA_BROKERS is required when ALERT_SINK=kafka")
		}
		if c.KafkaAlertTopic == "" {
			return errors.New("KAFKA_ALERT_TOPIC is required when ALERT_SINK=kafka")
		}
	default:
		return fmt.Errorf("unknown ALERT_SINK %q, want none, redis or kafka", c.AlertSink)
	}
	if c.ModelDir == "" {
		return errors.New("MODEL_DIR must not be empty")
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1, got %d", c.WebhookMaxRetries)
	}
	if c.WebhookBaseDelay <= 0 {
		return fmt.Errorf("WEBHOOK_BASE_DELAY must be positive, got %s", c.WebhookBaseDelay)
	}
	return nil
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

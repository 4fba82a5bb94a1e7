package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Port           string
	AllowedOrigins []string
	WordsPerPage   int
	MaxUploadMB    int64
	Storage        string

	DeepLAPIKey string
	DeepLAPIURL string
	GutendexURL string

	// Telegram surface, disabled when BotToken is empty
	BotToken    string
	BotPassword string

	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	wordsPerPage, err := getEnvInt("WORDS_PER_PAGE", 300)
	if err != nil {
		return nil, err
	}
	maxUploadMB, err := getEnvInt("MAX_UPLOAD_MB", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           getEnv("BACKEND_PORT", "3000"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		WordsPerPage:   wordsPerPage,
		MaxUploadMB:    int64(maxUploadMB),
		Storage:        strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DeepLAPIKey:    os.Getenv("DEEPL_API_KEY"),
		DeepLAPIURL:    os.Getenv("DEEPL_API_URL"),
		GutendexURL:    os.Getenv("GUTENDEX_URL"),
		BotToken:       os.Getenv("BOT_TOKEN"),
		BotPassword:    os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordreader"),
			User:     getEnv("DB_USER", "wordreader"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate
	if cfg.WordsPerPage <= 0 {
		return nil, fmt.Errorf("WORDS_PER_PAGE must be positive")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required when STORAGE=postgres")
		}
	default:
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.Storage)
	}

	return cfg, nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

// BotEnabled reports whether the Telegram surface should start
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}

// splitList parses a comma separated list, dropping empty items
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv resets every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BACKEND_PORT", "ALLOWED_ORIGINS", "WORDS_PER_PAGE", "MAX_UPLOAD_MB", "STORAGE",
		"DEEPL_API_KEY", "DEEPL_API_URL", "GUTENDEX_URL", "BOT_TOKEN", "BOT_PASSWORD",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 300, cfg.WordsPerPage)
	assert.Equal(t, int64(100*1024*1024), cfg.MaxUploadBytes())
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.False(t, cfg.BotEnabled())
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wordreader", cfg.Database.Name)
	assert.Equal(t, "wordreader", cfg.Database.User)
}

func TestLoad_Custom(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173,https://reader.example")
	t.Setenv("WORDS_PER_PAGE", "150")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("STORAGE", "Postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DEEPL_API_KEY", "key:fx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:5173", "https://reader.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 150, cfg.WordsPerPage)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadBytes())
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.True(t, cfg.BotEnabled())
	assert.Equal(t, "key:fx", cfg.DeepLAPIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{name: "postgres without password", env: map[string]string{"STORAGE": "postgres"}, contains: "DB_PASSWORD"},
		{name: "unknown storage", env: map[string]string{"STORAGE": "redis"}, contains: "STORAGE"},
		{name: "words per page not a number", env: map[string]string{"WORDS_PER_PAGE": "many"}, contains: "WORDS_PER_PAGE"},
		{name: "words per page zero", env: map[string]string{"WORDS_PER_PAGE": "0"}, contains: "WORDS_PER_PAGE"},
		{name: "negative upload limit", env: map[string]string{"MAX_UPLOAD_MB": "-1"}, contains: "MAX_UPLOAD_MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

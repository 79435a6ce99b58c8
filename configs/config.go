package configs

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// StorageConfig holds key-value storage configuration.
// Driver selects the backend: memory, sqlite, redis or postgres.
type StorageConfig struct {
	Driver        string
	SQLitePath    string
	RedisURL      string
	RedisPassword string
	RedisDB       int
	PostgresURL   string
}

// SchedulerConfig holds background job configuration
type SchedulerConfig struct {
	RefreshSpec string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "sqlite"),
			SQLitePath:    getEnv("SQLITE_PATH", "botdesk.db"),
			RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			PostgresURL:   getEnv("DATABASE_URL", ""),
		},
		Scheduler: SchedulerConfig{
			RefreshSpec: getEnv("REFRESH_CRON", "*/5 * * * *"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

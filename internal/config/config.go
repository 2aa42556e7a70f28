package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"userbase/internal/logging"
)

type DatabaseType string

const (
	SQLite   DatabaseType = "sqlite"
	Postgres DatabaseType = "postgres"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppName string
	Env     string
	Port    string
	// Database config
	DatabaseType DatabaseType
	SQLitePath   string
	DatabaseURL  string
	ForceSync    bool
	// HTTP config
	BodyLimit   int64
	FaviconPath string
}

// IsDevelopment reports whether error pages may carry full error detail.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Info.Println("No .env file found, relying on environment variables")
	}

	appName := getEnv("APP_NAME", "userbase")

	port := getEnv("PORT", "3000")
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port, got %q", port)
	}

	forceSync, err := getEnvAsBool("DB_FORCE_SYNC", true)
	if err != nil {
		return nil, err
	}

	bodyLimit, err := getEnvAsInt("BODY_LIMIT", 100*1024)
	if err != nil {
		return nil, err
	}
	if bodyLimit <= 0 {
		return nil, fmt.Errorf("BODY_LIMIT must be positive, got %d", bodyLimit)
	}

	config := &Config{
		AppName:      appName,
		Env:          strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		Port:         port,
		DatabaseType: DatabaseType(strings.ToLower(getEnv("DATABASE_TYPE", string(SQLite)))),
		ForceSync:    forceSync,
		BodyLimit:    int64(bodyLimit),
		FaviconPath:  os.Getenv("FAVICON_PATH"),
	}

	switch config.DatabaseType {
	case SQLite:
		sqlitePath := os.Getenv("SQLITE_PATH")
		if sqlitePath == "" {
			sqlitePath = filepath.Join("data", fmt.Sprintf("%s.db", appName))
		}
		config.SQLitePath = sqlitePath
	case Postgres:
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		config.DatabaseURL = databaseURL
	default:
		return nil, fmt.Errorf("unsupported DATABASE_TYPE: %s", config.DatabaseType)
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

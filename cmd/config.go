package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBAutoMigrate  bool
	DBSeedStatuses bool
	LogLevel       slog.Level
}

// LookupFunc reads one environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

var defaults = map[string]string{
	"HTTP_PORT":        "8080",
	"DB_HOST":          "localhost",
	"DB_PORT":          "5432",
	"DB_USER":          "postgres",
	"DB_NAME":          "orders",
	"DB_SSLMODE":       "disable",
	"DB_AUTO_MIGRATE":  "true",
	"DB_SEED_STATUSES": "true",
	"LOG_LEVEL":        "info",
}

// NewConfig reads the service settings, falling back to defaults for unset keys.
func NewConfig(lookup LookupFunc) (Config, error) {
	get := func(key string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return defaults[key]
	}

	autoMigrate, migrateErr := parseBool("DB_AUTO_MIGRATE", get("DB_AUTO_MIGRATE"))
	seedStatuses, seedErr := parseBool("DB_SEED_STATUSES", get("DB_SEED_STATUSES"))

	var level slog.Level
	levelErr := level.UnmarshalText([]byte(get("LOG_LEVEL")))
	if levelErr != nil {
		levelErr = fmt.Errorf("LOG_LEVEL: %w", levelErr)
	}

	if err := errors.Join(migrateErr, seedErr, levelErr); err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:       get("HTTP_PORT"),
		DBHost:         get("DB_HOST"),
		DBPort:         get("DB_PORT"),
		DBUser:         get("DB_USER"),
		DBPassword:     get("DB_PASSWORD"),
		DBName:         get("DB_NAME"),
		DBSslMode:      get("DB_SSLMODE"),
		DBAutoMigrate:  autoMigrate,
		DBSeedStatuses: seedStatuses,
		LogLevel:       level,
	}, nil
}

// DSN returns the key/value connection string understood by the postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func parseBool(key, value string) (bool, error) {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

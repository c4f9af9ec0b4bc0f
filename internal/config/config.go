// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DatasetSource identifies where the travel dataset is loaded from.
type DatasetSource string

const (
	SourceFile     DatasetSource = "file"
	SourceHTTP     DatasetSource = "http"
	SourcePostgres DatasetSource = "postgres"
)

// DefaultDatasetPath is used when no dataset source is configured.
const DefaultDatasetPath = "data/travel_recommendation_api.json"

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Source says which of DatasetPath, DatasetURL or DatabaseURL is used.
	Source DatasetSource

	// DatasetPath is a local JSON or YAML dataset document (DATASET_PATH).
	DatasetPath string

	// DatasetURL is a JSON dataset document fetched over HTTP (DATASET_URL).
	DatasetURL string

	// DatabaseURL is a Postgres connection string holding the dataset (DATABASE_URL).
	DatabaseURL string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is read first if present; variables
// already set in the environment take precedence over it.
//
// At most one of DATASET_PATH, DATASET_URL and DATABASE_URL may be set.
// When none is, the dataset is read from DefaultDatasetPath.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatasetPath: os.Getenv("DATASET_PATH"),
		DatasetURL:  os.Getenv("DATASET_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var set []string
	if cfg.DatasetPath != "" {
		set = append(set, "DATASET_PATH")
		cfg.Source = SourceFile
	}
	if cfg.DatasetURL != "" {
		set = append(set, "DATASET_URL")
		cfg.Source = SourceHTTP
	}
	if cfg.DatabaseURL != "" {
		set = append(set, "DATABASE_URL")
		cfg.Source = SourcePostgres
	}
	switch {
	case len(set) > 1:
		return Config{}, fmt.Errorf("conflicting dataset sources, set only one of: %s", strings.Join(set, ", "))
	case len(set) == 0:
		cfg.Source = SourceFile
		cfg.DatasetPath = DefaultDatasetPath
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES"))
	}
	cfg.MaxBodyBytes = maxBody

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

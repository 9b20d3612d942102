package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config stores runtime configuration for the editor service.
type Config struct {
	HTTP    HTTPConfig
	Store   StoreConfig
	Session SessionConfig
}

type HTTPConfig struct {
	ListenAddr string
	LocalOnly  bool
}

type StoreConfig struct {
	Driver          string
	Path            string
	DatabaseURL     string
	ConnectAttempts int
	LogLevel        string
}

type SessionConfig struct {
	OpTimeout time.Duration
}

// LoadDotEnv loads .env files into the process environment. A missing file
// is only worth a warning.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// Load resolves configuration from environment variables and defaults.
func Load() (Config, error) {
	driver := strings.ToLower(envOrDefault("LOGALINE_DB_DRIVER", DriverSQLite))
	if driver != DriverSQLite && driver != DriverPostgres {
		return Config{}, errors.New("LOGALINE_DB_DRIVER must be sqlite or postgres")
	}

	cfg := Config{
		HTTP: HTTPConfig{
			ListenAddr: envOrDefault("LOGALINE_LISTEN_ADDR", "127.0.0.1:8080"),
			LocalOnly:  envOrDefaultBool("LOGALINE_LOCAL_ONLY", true),
		},
		Store: StoreConfig{
			Driver:      driver,
			Path:        strings.TrimSpace(os.Getenv("LOGALINE_DB_PATH")),
			DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
			LogLevel:    strings.ToLower(envOrDefault("LOGALINE_DB_LOG_LEVEL", "warn")),
		},
		Session: SessionConfig{
			OpTimeout: time.Duration(envOrDefaultInt("LOGALINE_STORE_TIMEOUT_MS", 5000)) * time.Millisecond,
		},
	}

	defaultAttempts := 1
	if driver == DriverPostgres {
		defaultAttempts = 30
		if cfg.Store.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL environment variable is not set")
		}
	}
	cfg.Store.ConnectAttempts = envOrDefaultInt("LOGALINE_DB_CONNECT_ATTEMPTS", defaultAttempts)
	if cfg.Store.ConnectAttempts <= 0 {
		cfg.Store.ConnectAttempts = defaultAttempts
	}

	if driver == DriverSQLite && cfg.Store.Path == "" {
		dir, err := dataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Store.Path = filepath.Join(dir, "LogALineDB.sqlite")
	}

	switch cfg.Store.LogLevel {
	case "silent", "error", "warn", "info":
	default:
		cfg.Store.LogLevel = "warn"
	}
	if cfg.Session.OpTimeout <= 0 {
		cfg.Session.OpTimeout = 5 * time.Second
	}

	return cfg, nil
}

func dataDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "log-a-line"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("could not determine home directory")
	}
	return filepath.Join(home, ".local", "share", "log-a-line"), nil
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	LogLevel      string // Log level (debug, info, warn, error) (default: info)
	LogFormat     string // Log format (json, text) (default: json)
	LogFile       string // Optional: rotating log file mirrored from stdout
	LogMaxSizeMB  int    // Rotate LogFile past this size (default: 1)
	LogMaxBackups int    // Rotated files to keep (default: 5)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database path (default: movies.db)
	DatabaseURL    string // Postgres DSN, required when DatabaseDriver is postgres

	TMDBAPIKey            string        // Optional: movie lookups fail with 502 without it
	TMDBBaseURL           string        // Default: https://api.themoviedb.org/3
	TMDBRequestsPerSecond float64       // Outbound throttle (default: 20)
	TMDBTimeout           time.Duration // Per request timeout (default: 10s)

	RotateSalt           bool          // Draw a fresh salt on password change (default: false)
	HousekeepingInterval time.Duration // Purge interval (default: 1h)
	PurgeAfter           time.Duration // Age of soft deletions before purge (default: 720h)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 1)
	v.SetDefault("LOG_MAX_BACKUPS", 5)

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_FILE", "movies.db")
	v.SetDefault("DATABASE_URL", "")

	v.SetDefault("TMDB_API_KEY", "")
	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("TMDB_REQUESTS_PER_SECOND", 20)
	v.SetDefault("TMDB_TIMEOUT", 10*time.Second)

	v.SetDefault("ACCOUNTS_ROTATE_SALT", false)
	v.SetDefault("HOUSEKEEPING_INTERVAL", time.Hour)
	v.SetDefault("MOVIES_PURGE_AFTER", 30*24*time.Hour)
}

// LoadConfig reads configuration from the environment, optionally layered
// over a YAML file. configFile falls back to $CONFIG_FILE; environment
// variables always win over file values.
func LoadConfig(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		Env:                 v.GetString("ENV"),
		Port:                v.GetInt("PORT"),
		ShutdownGracePeriod: v.GetDuration("SHUTDOWN_GRACE_PERIOD"),

		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		LogFile:       v.GetString("LOG_FILE"),
		LogMaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
		LogMaxBackups: v.GetInt("LOG_MAX_BACKUPS"),

		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseFile:   v.GetString("DATABASE_FILE"),
		DatabaseURL:    v.GetString("DATABASE_URL"),

		TMDBAPIKey:            v.GetString("TMDB_API_KEY"),
		TMDBBaseURL:           v.GetString("TMDB_BASE_URL"),
		TMDBRequestsPerSecond: v.GetFloat64("TMDB_REQUESTS_PER_SECOND"),
		TMDBTimeout:           v.GetDuration("TMDB_TIMEOUT"),

		RotateSalt:           v.GetBool("ACCOUNTS_ROTATE_SALT"),
		HousekeepingInterval: v.GetDuration("HOUSEKEEPING_INTERVAL"),
		PurgeAfter:           v.GetDuration("MOVIES_PURGE_AFTER"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("config: DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	}
	return nil
}

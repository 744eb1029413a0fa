package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	Database Database
	Auth     Auth

	// RandomClues is the default ordering of GET /clues when the request does not say.
	RandomClues bool
	CORSOrigins []string
}

type Database struct {
	Driver       string
	URL          string
	ResetOnStart bool
	// UniqueClueValues adds the (category_id, value) unique index.
	UniqueClueValues bool
}

type Auth struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string

	GateMutations   bool
	GateClueListing bool
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		Port:     getEnv("PORT", "8000"),
		Env:      getEnv("APP_ENV", "production"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: Database{
			Driver:           strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			URL:              os.Getenv("DATABASE_URL"),
			ResetOnStart:     getBool("DB_RESET_ON_START", false, &errs),
			UniqueClueValues: getBool("CLUE_UNIQUE_VALUES", true, &errs),
		},
		Auth: Auth{
			JWTSecret:       os.Getenv("JWT_SECRET"),
			TokenTTL:        getDuration("TOKEN_TTL", 30*time.Minute, &errs),
			AdminUsername:   os.Getenv("ADMIN_USERNAME"),
			AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
			GateMutations:   getBool("ADMIN_GATE_MUTATIONS", false, &errs),
			GateClueListing: getBool("ADMIN_GATE_CLUE_LIST", false, &errs),
		},
		RandomClues: getBool("RANDOM_CLUES", false, &errs),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.Database.Driver))
	}
	if cfg.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if cfg.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if (cfg.Auth.AdminUsername == "") != (cfg.Auth.AdminPassword == "") {
		errs = append(errs, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool, errs *[]error) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

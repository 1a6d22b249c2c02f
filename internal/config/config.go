// internal/config/config.go
//
// Process configuration, read once at startup.
// A .env file in the working directory is loaded first (development), then
// the environment is parsed into Config. Real environment variables win over
// .env entries.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port         string `env:"PORT"          envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL"     envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// Word data. Empty paths fall back to the embedded defaults.
	DictionaryFile string `env:"WORDS_DICTIONARY_FILE"`
	PuzzlesDir     string `env:"WORDS_PUZZLES_DIR"`

	// CatalogDSN, when set, serves words from SQLite; an empty catalog is
	// seeded from the word files above.
	CatalogDSN string `env:"CATALOG_DSN"`

	DailySalt    string        `env:"DAILY_SALT"    envDefault:"local_dev_salt"`
	JWTSecret    string        `env:"JWT_SECRET"    envDefault:"dev_secret_change_me"`
	ChallengeTTL time.Duration `env:"CHALLENGE_TTL" envDefault:"168h"`

	// AdminKeyHash is a bcrypt hash of the admin bearer key. Empty disables /admin.
	AdminKeyHash string `env:"ADMIN_KEY_HASH"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment into a Config.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel    = "RCLI_LOG_LEVEL"
	EnvKeyDir      = "RCLI_KEY_DIR"
	EnvHTTPPort    = "RCLI_HTTP_PORT"
	EnvCORSOrigins = "RCLI_CORS_ORIGINS"
	EnvRateLimit   = "RCLI_RATE_LIMIT"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel    slog.Level
	KeyDir      string   // default output directory for generated keys
	HTTPPort    int      // default port for "http serve"
	CORSOrigins []string // empty disables CORS
	RateLimit   float64  // requests per second per client; 0 disables

	Stdin  io.Reader // optional; defaults to os.Stdin
	Stderr io.Writer // log destination; defaults to os.Stderr
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		KeyDir:   ".",
		HTTPPort: 8080,
	}
}

// LoadConfig applies envFile (if it exists) and then RCLI_* variables on
// top of DefaultConfig. Variables already in the environment win over the
// file. An empty envFile skips the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	if v := getEnv(EnvLogLevel, ""); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	cfg.KeyDir = getEnv(EnvKeyDir, cfg.KeyDir)

	if v := getEnv(EnvHTTPPort, ""); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("%s: invalid port %q", EnvHTTPPort, v)
		}
		cfg.HTTPPort = port
	}

	if v := getEnv(EnvCORSOrigins, ""); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if v := getEnv(EnvRateLimit, ""); v != "" {
		rl, err := strconv.ParseFloat(v, 64)
		if err != nil || rl < 0 {
			return Config{}, fmt.Errorf("%s: invalid rate %q", EnvRateLimit, v)
		}
		cfg.RateLimit = rl
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	BcryptCost      int
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultEnvFile         = ".env"
)

// UsesDefaultJWTSecret reports whether tokens are signed with the built-in fallback secret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// Load parses configuration from flags, environment variables and an optional .env file.
// Real environment variables take precedence over values from the file.
func Load() (*Config, error) {
	lookup, err := withEnvFile(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

func withEnvFile(lookup envLookup) (envLookup, error) {
	path, explicit := lookup("ENV_FILE")
	explicit = explicit && path != ""
	if !explicit {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, ok
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		BcryptCost:      getInt(lookup, "BCRYPT_COST", bcrypt.DefaultCost),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	flags := flag.NewFlagSet("customerhub", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	flags.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor for password hashing")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimRight(string(content), "\r\n")
	}

	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

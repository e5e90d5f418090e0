package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"trainingapi/internal/token"

	"github.com/joho/godotenv"
)

// The listen address and token material are fixed; only operational knobs
// come from the environment.
const listenAddr = ":3000"

type config struct {
	TokenSecret        string
	InvalidTokenPolicy token.FailureMode
	ShutdownTimeout    time.Duration
	RateLimitRPS       float64
	RateLimitBurst     int
	MaxBodyBytes       int64
	AllowedOrigins     []string
	EnableHSTS         bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() (config, error) {
	cfg := config{
		TokenSecret: token.DefaultSecret,
		EnableHSTS:  getEnv("ENABLE_HSTS", "false") == "true",
	}

	var err error
	if cfg.InvalidTokenPolicy, err = token.ParseFailureMode(getEnv("INVALID_TOKEN_POLICY", string(token.FailUnauthorized))); err != nil {
		return config{}, err
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", ""), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourorg/listing-studio/internal/env"
)

type Config struct {
	Port int

	GeminiAPIKey        string
	GeminiModel         string
	GeminiBaseURL       string
	AIRequestsPerMinute int
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RenderCacheTTL      time.Duration
	SeedFile            string
	LogLevel            string
	LogPretty           bool
	WarmWorkers         int
}

// Load reads a .env file when one exists, then the environment. A missing
// Gemini key is not an error: AI features answer with their fallbacks.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	cfg := Config{
		Port:                env.GetInt("PORT", 4002),
		GeminiAPIKey:        env.Get("GEMINI_API_KEY", ""),
		GeminiModel:         env.Get("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL:       env.Get("GEMINI_BASE_URL", ""),
		AIRequestsPerMinute: env.GetInt("AI_REQUESTS_PER_MINUTE", 30),
		RedisAddr:           env.Get("REDIS_ADDR", ""),
		RedisPassword:       env.Get("REDIS_PASSWORD", ""),
		RedisDB:             env.GetInt("REDIS_DB", 0),
		RenderCacheTTL:      env.GetDuration("RENDER_CACHE_TTL", time.Hour),
		SeedFile:            env.Get("SEED_FILE", ""),
		LogLevel:            env.Get("LOG_LEVEL", "info"),
		LogPretty:           env.GetBool("LOG_PRETTY", false),
		WarmWorkers:         env.GetInt("WARM_WORKERS", 2),
	}
	if cfg.AIRequestsPerMinute <= 0 {
		cfg.AIRequestsPerMinute = 30
	}
	if cfg.WarmWorkers < 0 {
		cfg.WarmWorkers = 0
	}
	return cfg
}

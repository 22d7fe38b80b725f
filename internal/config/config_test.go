package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "AI_REQUESTS_PER_MINUTE", "RENDER_CACHE_TTL", "WARM_WORKERS", "LOG_PRETTY"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, 4002, cfg.Port)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-3-flash-preview", cfg.GeminiModel)
	assert.Equal(t, 30, cfg.AIRequestsPerMinute)
	assert.Equal(t, time.Hour, cfg.RenderCacheTTL)
	assert.Equal(t, 2, cfg.WarmWorkers)
	assert.False(t, cfg.LogPretty)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("AI_REQUESTS_PER_MINUTE", "-5")
	t.Setenv("RENDER_CACHE_TTL", "10m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("WARM_WORKERS", "0")
	t.Setenv("LOG_PRETTY", "true")

	cfg := FromEnv()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "k", cfg.GeminiAPIKey)
	assert.Equal(t, 30, cfg.AIRequestsPerMinute)
	assert.Equal(t, 10*time.Minute, cfg.RenderCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.WarmWorkers)
	assert.True(t, cfg.LogPretty)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Equal(t, 1500, cfg.AI.MaxTokens)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg := New()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
}

func TestSplitEnv_TrimsAndSkipsEmpty(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " http://localhost:5173 , https://helpdesk.example.com ,, ")

	cfg := New()

	assert.Equal(t,
		[]string{"http://localhost:5173", "https://helpdesk.example.com"},
		cfg.Server.CORSOrigins)
}

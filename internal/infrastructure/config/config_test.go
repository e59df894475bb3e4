package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Platewise", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "platewise", cfg.Database.Database)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, "gpt-4o", cfg.AI.PlanModel)
	assert.Equal(t, 0.85, cfg.AI.MatchThreshold)
	assert.True(t, cfg.AI.EnableCache)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PLATEWISE_SERVER_PORT", "9090")
	t.Setenv("PLATEWISE_AI_PROVIDER", "ollama")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.AI.Provider)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("valid defaults", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := base()
		cfg.Database.Database = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("jwt secret required in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		cfg.Auth.JWTSecret = ""
		assert.Error(t, cfg.Validate())

		cfg.Auth.JWTSecret = "secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("match threshold bounds", func(t *testing.T) {
		cfg := base()
		cfg.AI.MatchThreshold = 1.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("port bounds", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.local"
	cfg.Database.Port = 5433
	cfg.Database.Username = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Database = "platewise"
	cfg.Database.SSLMode = "require"

	assert.Equal(t,
		"host=db.local port=5433 user=app password=pw dbname=platewise sslmode=require",
		cfg.GetDSN())
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Host = "cache.local"
	cfg.Redis.Port = 6380

	assert.Equal(t, "cache.local:6380", cfg.RedisAddr())
}

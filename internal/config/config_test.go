package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// An empty directory exercises the pure-defaults path
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "/uploads", cfg.Storage.PublicPrefix)
	assert.Equal(t, 60*24, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	// No default exists for the signing secret
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "test-secret"
	assert.NoError(t, cfg.Validate())

	cfg.Auth.TokenTTLMinutes = 0
	assert.Error(t, cfg.Validate())

	cfg.Auth.TokenTTLMinutes = 60
	cfg.Storage.UploadDir = ""
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "svc",
		Password: "pw",
		Name:     "social",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal user=svc password=pw dbname=social port=5433 sslmode=require",
		c.DSN())
}

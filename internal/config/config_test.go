package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, TokenJWT, cfg.Auth.TokenStrategy)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.ImageHost.Timeout)
	assert.True(t, cfg.Server.IsDevelopment())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestLoad_PasetoKeyLength(t *testing.T) {
	t.Setenv("AUTH_TOKEN_STRATEGY", "paseto")
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	assert.ErrorContains(t, err, "exactly 32 bytes")

	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TokenPaseto, cfg.Auth.TokenStrategy)
}

func TestLoad_UnknownStoreDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("D_GO", "2m")
	t.Setenv("D_SECONDS", "45")
	t.Setenv("D_BAD", "soon")

	assert.Equal(t, 2*time.Minute, getDurationEnv("D_GO", time.Second))
	assert.Equal(t, 45*time.Second, getDurationEnv("D_SECONDS", time.Second))
	assert.Equal(t, time.Second, getDurationEnv("D_BAD", time.Second))
	assert.Equal(t, time.Second, getDurationEnv("D_UNSET", time.Second))
}

func TestGetSliceEnv(t *testing.T) {
	t.Setenv("ORIGINS", " http://a.test , ,http://b.test")

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getSliceEnv("ORIGINS", nil))
	assert.Equal(t, []string{"x"}, getSliceEnv("ORIGINS_UNSET", []string{"x"}))
}

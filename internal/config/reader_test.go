package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Defaults(t *testing.T) {
	t.Setenv("ENV", EnvDev)

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("ENV", EnvProd)
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("HTTP_MAX_BODY_BYTES", "2048")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.HTTP.MaxBodyBytes)
}

func TestEnvReader_UnknownEnv(t *testing.T) {
	t.Setenv("ENV", "staging")

	_, err := NewEnvReader().Read()
	assert.EqualError(t, err, "unknown env: staging")
}

func TestEnvReader_MissingEnv(t *testing.T) {
	t.Setenv("ENV", "")

	_, err := NewEnvReader().Read()
	assert.Error(t, err)
}

func TestGlobal(t *testing.T) {
	prev := Global()
	t.Cleanup(func() { SetGlobal(prev) })

	cfg := &Config{Env: EnvLocal}
	SetGlobal(cfg)
	assert.Same(t, cfg, Global())
}

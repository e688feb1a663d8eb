package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "libclpsolve.so", cfg.LibraryPath)
	assert.Equal(t, "clp_solve", cfg.Symbol)
	assert.Equal(t, "primal", cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Jobs)
	assert.False(t, cfg.Reentrant)
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"CLIPPY_LIBRARY":   "/opt/clp/lib/libclpsolve.so",
		"CLIPPY_SYMBOL":    "clp_solve_v2",
		"CLIPPY_MODE":      "dual",
		"CLIPPY_LOG_LEVEL": "debug",
		"CLIPPY_JOBS":      "4",
		"CLIPPY_REENTRANT": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		LibraryPath: "/opt/clp/lib/libclpsolve.so",
		Symbol:      "clp_solve_v2",
		Mode:        "dual",
		LogLevel:    "debug",
		Jobs:        4,
		Reentrant:   true,
	}, cfg)
}

func TestLoadFromRejectsBadJobs(t *testing.T) {
	_, err := LoadFrom(map[string]string{"CLIPPY_JOBS": "0"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"CLIPPY_JOBS": "many"})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Setenv("CLIPPY_LIBRARY", "/tmp/libclpsolve.so")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/libclpsolve.so", cfg.LibraryPath)
}

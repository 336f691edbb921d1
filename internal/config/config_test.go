package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"QALGEBRA_TOLERANCE_RTOL", "QALGEBRA_TOLERANCE_ATOL", "QALGEBRA_EXACT", "LOG_LEVEL", "LOG_PRETTY"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cmatrix.DefaultRelTol, cfg.RelTol)
	assert.Equal(t, cmatrix.DefaultAbsTol, cfg.AbsTol)
	assert.False(t, cfg.Exact)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("QALGEBRA_TOLERANCE_RTOL", "0.001")
	t.Setenv("QALGEBRA_TOLERANCE_ATOL", "1e-3")
	t.Setenv("QALGEBRA_EXACT", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg.RelTol)
	assert.Equal(t, 1e-3, cfg.AbsTol)
	assert.True(t, cfg.Exact)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("QALGEBRA_TOLERANCE_RTOL", "tiny")
	t.Setenv("QALGEBRA_EXACT", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cmatrix.DefaultRelTol, cfg.RelTol)
	assert.False(t, cfg.Exact)
}

func TestLoad_RejectsNegativeTolerance(t *testing.T) {
	clearEnv(t)
	t.Setenv("QALGEBRA_TOLERANCE_ATOL", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute tolerance")
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones.
	for _, key := range []string{"QALGEBRA_TOLERANCE_RTOL", "QALGEBRA_EXACT"} {
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "qalgebra.env")
	require.NoError(t, os.WriteFile(path, []byte("QALGEBRA_TOLERANCE_RTOL=0.5\nQALGEBRA_EXACT=1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.RelTol)
	assert.True(t, cfg.Exact)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Blank out anything the surrounding environment may carry
	for _, key := range []string{
		"PORT", "GIN_MODE", "TEMPLATES_DIR", "TEMPLATE_FLAT_FILE", "TEMPLATE_XTR_FILE",
		"CORS_ALLOW_ORIGINS", "FILL_MAX_CONCURRENT", "PPROF_ENABLED", "PPROF_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./templates", cfg.Templates.Dir)
	assert.Equal(t, "Flat Tracker Imperial.xlsm", cfg.Templates.FlatFile)
	assert.Equal(t, "XTR.xlsm", cfg.Templates.XTRFile)
	assert.Equal(t, DefaultAllowOrigins, cfg.CORS.AllowOrigins)
	assert.Equal(t, 0, cfg.Fill.MaxConcurrent)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, "6060", cfg.Profiling.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TEMPLATES_DIR", "/srv/templates")
	t.Setenv("TEMPLATE_XTR_FILE", "XTR-v2.xlsm")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("FILL_MAX_CONCURRENT", "4")
	t.Setenv("PPROF_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/templates", cfg.Templates.Dir)
	assert.Equal(t, "XTR-v2.xlsm", cfg.Templates.XTRFile)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 4, cfg.Fill.MaxConcurrent)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoadRejectsNegativeConcurrency(t *testing.T) {
	t.Setenv("FILL_MAX_CONCURRENT", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILL_MAX_CONCURRENT")
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("FILL_MAX_CONCURRENT", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Fill.MaxConcurrent)
}

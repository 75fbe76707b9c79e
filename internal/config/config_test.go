package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, int64(50*1024*1024), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 10*time.Minute, cfg.Storage.SweepInterval)
	assert.Equal(t, 2*time.Hour, cfg.Storage.Retention)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
storage:
  upload_dir: /tmp/pdfcraft/in
  output_dir: /tmp/pdfcraft/out
  retention: 1h
observability:
  log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/tmp/pdfcraft/in", cfg.Storage.UploadDir)
	assert.Equal(t, time.Hour, cfg.Storage.Retention)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	// Untouched fields keep defaults.
	assert.Equal(t, 10*time.Minute, cfg.Storage.SweepInterval)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("MAX_UPLOAD_MB", "10")
	t.Setenv("RETENTION", "30m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, int64(10*1024*1024), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 30*time.Minute, cfg.Storage.Retention)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero upload cap", func(c *Config) { c.Server.MaxUploadBytes = 0 }},
		{"same scratch dirs", func(c *Config) { c.Storage.OutputDir = c.Storage.UploadDir }},
		{"tiny sweep interval", func(c *Config) { c.Storage.SweepInterval = time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

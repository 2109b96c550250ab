package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reactflow-docs", config.Server.Name)
	assert.Equal(t, "dev", config.Server.Version)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.Equal(t, 1024, config.Cache.MaxEntries)
	assert.Equal(t, 5, config.Breaker.FailureThreshold)
	assert.Equal(t, 30*time.Second, config.Breaker.ResetTimeout)
	assert.Equal(t, "", config.Docs.OverlayFile)
}

func TestLoad_Overrides(t *testing.T) {
	resetViper(t)

	viper.Set("server.name", "custom-docs")
	viper.Set("logging.level", "debug")
	viper.Set("logging.format", "json")
	viper.Set("cache.max_entries", 64)
	viper.Set("breaker.failure_threshold", 10)
	viper.Set("breaker.reset_timeout", "2m")
	viper.Set("docs.overlay_file", "/etc/docs/overlay.yml")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "custom-docs", config.Server.Name)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Equal(t, 64, config.Cache.MaxEntries)
	assert.Equal(t, 10, config.Breaker.FailureThreshold)
	assert.Equal(t, 2*time.Minute, config.Breaker.ResetTimeout)
	assert.Equal(t, "/etc/docs/overlay.yml", config.Docs.OverlayFile)
}

func TestLoad_YAMLFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), ".reactflow-docs.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  name: file-docs
logging:
  level: error
  format: json
cache:
  max_entries: 32
breaker:
  failure_threshold: 7
  reset_timeout: 45s
docs:
  overlay_file: /var/lib/docs/overlay.yml
`), 0o644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	config, err := Load()
	require.NoError(t, err)

	// Underscore keys must decode into their fields, not fall back to
	// defaults.
	assert.Equal(t, "file-docs", config.Server.Name)
	assert.Equal(t, "error", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Equal(t, 32, config.Cache.MaxEntries)
	assert.Equal(t, 7, config.Breaker.FailureThreshold)
	assert.Equal(t, 45*time.Second, config.Breaker.ResetTimeout)
	assert.Equal(t, "/var/lib/docs/overlay.yml", config.Docs.OverlayFile)
}

func TestLoad_LogLevelFlagFallback(t *testing.T) {
	resetViper(t)

	viper.Set("log-level", "warn")

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Logging.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		wantErr string
	}{
		{
			name:    "bad log level",
			key:     "logging.level",
			value:   "verbose",
			wantErr: "level",
		},
		{
			name:    "bad log format",
			key:     "logging.format",
			value:   "xml",
			wantErr: "format",
		},
		{
			name:    "negative cache size",
			key:     "cache.max_entries",
			value:   -1,
			wantErr: "max_entries",
		},
		{
			name:    "negative failure threshold",
			key:     "breaker.failure_threshold",
			value:   -2,
			wantErr: "failure_threshold",
		},
		{
			name:    "negative reset timeout",
			key:     "breaker.reset_timeout",
			value:   "-5s",
			wantErr: "reset_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

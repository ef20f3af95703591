package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content into a file with the given name in a temporary directory and returns
// its path.
func writeConfig(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestDefaults loads the configuration without a file.
func TestDefaults(t *testing.T) {
	t.Setenv("DBUSER", "dirk")
	t.Setenv("DBPWD", "secret")
	t.Setenv("DBHOST", "localhost:3306")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, "dirk:secret@tcp(localhost:3306)/test?parseTime=true", cfg.Storage.DSN)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "assistant.log", cfg.Logger.Path)
	assert.True(t, cfg.UI.Color)
	assert.Equal(t, 60, cfg.UI.SuggestionThreshold)
	assert.Equal(t, "Enter a command: ", cfg.UI.Prompt)
}

// TestFile reads a YAML file and expects its values to replace the defaults.
func TestFile(t *testing.T) {
	path := writeConfig(t, "assistant.yaml", `
storage:
  driver: postgres
  dsn: postgres://localhost/assistant?sslmode=disable
logger:
  level: debug
  path: "-"
ui:
  color: false
  suggestion_threshold: 75
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/assistant?sslmode=disable", cfg.Storage.DSN)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "-", cfg.Logger.Path)
	assert.False(t, cfg.UI.Color)
	assert.Equal(t, 75, cfg.UI.SuggestionThreshold)
	assert.Equal(t, "Enter a command: ", cfg.UI.Prompt)
}

// TestExpansion expects references to environment variables to be replaced, with the default
// for unset variables.
func TestExpansion(t *testing.T) {
	t.Setenv("ASSISTANT_TEST_DIR", "/var/lib/assistant")
	path := writeConfig(t, "assistant.yaml", `
storage:
  data_dir: "${ASSISTANT_TEST_DIR}"
ui:
  color: "${ASSISTANT_TEST_COLOR:-false}"
  suggestion_threshold: "${ASSISTANT_TEST_THRESHOLD:-80}"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/assistant", cfg.Storage.DataDir)
	assert.False(t, cfg.UI.Color)
	assert.Equal(t, 80, cfg.UI.SuggestionThreshold)
}

// TestEnvironmentOverride expects ASSISTANT_* variables to win over the defaults.
func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("ASSISTANT_STORAGE_DRIVER", "mysql")
	t.Setenv("ASSISTANT_LOGGER_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, cfg.Storage.Driver)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

// TestInvalidDriver expects an unknown storage driver to be rejected.
func TestInvalidDriver(t *testing.T) {
	path := writeConfig(t, "assistant.json", `{"storage": {"driver": "sqlite"}}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

// TestInvalidThreshold expects a similarity threshold above 100 to be rejected.
func TestInvalidThreshold(t *testing.T) {
	t.Setenv("ASSISTANT_UI_SUGGESTION_THRESHOLD", "150")
	_, err := Load("")
	assert.Error(t, err)
}

// TestMissingFile expects an error for a configuration file that does not exist.
func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v.ReadInConfig")
}

// TestExpandEnvWithDefaults covers set, unset and literal values.
func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("ASSISTANT_TEST_SET", "value")
	assert.Equal(t, "value", expandEnvWithDefaults("${ASSISTANT_TEST_SET:-other}"))
	assert.Equal(t, "other", expandEnvWithDefaults("${ASSISTANT_TEST_UNSET:-other}"))
	assert.Equal(t, "", expandEnvWithDefaults("${ASSISTANT_TEST_UNSET}"))
	assert.Equal(t, "a-value-b", expandEnvWithDefaults("a-${ASSISTANT_TEST_SET}-b"))
	assert.Equal(t, "plain", expandEnvWithDefaults("plain"))
}

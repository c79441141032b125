package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultMode, cfg.CompareConfig.Mode)
	assert.Equal(t, DefaultMaxInputSizeMB, cfg.CompareConfig.MaxInputSizeMB)
	assert.Equal(t, DefaultOutputDir, cfg.ReporterConfig.OutputDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)

	require.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")

	cfg, err := LoadGlobalConfig("")

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
compare_config:
  mode: target
  lookahead_window: 5
  max_input_size_mb: 2
reporter_config:
  output_dir: out
log_config:
  log_level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadGlobalConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "target", cfg.CompareConfig.Mode)
	assert.Equal(t, 5, cfg.CompareConfig.LookaheadWindow)
	assert.Equal(t, 2, cfg.CompareConfig.MaxInputSizeMB)
	assert.Equal(t, "out", cfg.ReporterConfig.OutputDir)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := []byte(`{"compare_config": {"mode": "mutual", "max_input_size_mb": 4}}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadGlobalConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "mutual", cfg.CompareConfig.Mode)
	assert.Equal(t, 4, cfg.CompareConfig.MaxInputSizeMB)
}

func TestLoadGlobalConfig_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compare_config:\n  mode: diagonal\n"), 0644))

	_, err := LoadGlobalConfig(path)

	assert.Error(t, err)
}

func TestValidateConfig_InvalidLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "loud"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_InvalidLogFormat(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogFormat = "xml"

	assert.Error(t, ValidateConfig(cfg))
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	t.Setenv(ConfigEnvVar, path)

	assert.Equal(t, path, GetConfigPath(""))
}

func TestGetConfigPath_FlagTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(envPath, []byte("{}"), 0644))
	t.Setenv(ConfigEnvVar, envPath)

	assert.Equal(t, flagPath, GetConfigPath(flagPath))
}

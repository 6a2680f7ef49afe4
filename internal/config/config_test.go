package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/config"
)

func TestLoadFromDirDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DefaultDataFileName), cfg.DataFile)
	assert.Equal(t, config.DefaultExportFormat, cfg.Export.Format)
}

func TestLoadFromDirReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "data_file: /data/wellness.csv\nexport:\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := config.LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/wellness.csv", cfg.DataFile)
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestLoadFromDirPartialFileFilledWithDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "export:\n  format: yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := config.LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DefaultDataFileName), cfg.DataFile)
	assert.Equal(t, "yaml", cfg.Export.Format)
}

func TestEnvOverridesDataFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDataFile, "/elsewhere/entries.csv")

	cfg, err := config.LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/entries.csv", cfg.DataFile)
}

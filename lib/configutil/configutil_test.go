package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Database string `json:"database"`
	Port     int    `json:"port"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{database: "nrl.db", port: 8000}`), 0o644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "nrl.db", config.Database)
	require.Equal(t, 8000, config.Port)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.json5"),
		[]byte(`{database: "nrl.db", port: 8000}`), 0o644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "config.local.json5"),
		[]byte(`{port: 9000}`), 0o644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "nrl.db", config.Database)
	require.Equal(t, 9000, config.Port)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

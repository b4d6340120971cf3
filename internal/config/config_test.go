package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "daybook_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DataPath)
	assert.NotEmpty(t, cfg.LogPath)
	assert.Equal(t, "", cfg.ThemeName) // empty until set
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default paths when no config file exists
	assert.Equal(t, filepath.Join(configDir, "todos.json"), cfg.DataPath)
	assert.Equal(t, filepath.Join(configDir, "daybook.log"), cfg.LogPath)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		DataPath:  filepath.Join(configDir, "custom.json"),
		LogPath:   filepath.Join(configDir, "custom.log"),
		ThemeName: "nord",
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.DataPath, loaded.DataPath)
	assert.Equal(t, cfg.LogPath, loaded.LogPath)
	assert.Equal(t, cfg.ThemeName, loaded.ThemeName)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// remove the config directory
	os.RemoveAll(configDir)

	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// verify directory was created
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUpdateTheme(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// save initial config
	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// update theme
	err = UpdateTheme("light")
	require.NoError(t, err)

	// verify update
	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.ThemeName)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// a config file that only sets the theme still gets default paths
	err := os.WriteFile(configFile, []byte("theme_name: nord\n"), 0644)
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "nord", loaded.ThemeName)
	assert.Equal(t, filepath.Join(configDir, "todos.json"), loaded.DataPath)
	assert.Equal(t, filepath.Join(configDir, "daybook.log"), loaded.LogPath)
}

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetConfigField(t *testing.T) {
	t.Parallel()

	config := &CLIConfig{}

	require.NoError(t, setConfigField(config, "endpoint", "https://example.com"))
	require.NoError(t, setConfigField(config, "api_key", "key"))
	require.NoError(t, setConfigField(config, "token", "tok"))
	require.NoError(t, setConfigField(config, "org_id", "O1"))
	require.NoError(t, setConfigField(config, "output", "json"))

	assert.Equal(t, "https://example.com", config.Endpoint)
	assert.Equal(t, "key", config.APIKey)
	assert.Equal(t, "tok", config.Token)
	assert.Equal(t, "O1", config.OrgID)
	assert.Equal(t, "json", config.Output)

	err := setConfigField(config, "bogus", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigSaveLoadRoundtrip(t *testing.T) {
	// Not parallel: mutates the global viper "config" key.
	path := filepath.Join(t.TempDir(), "config.yml")
	viper.Set("config", path)

	defer viper.Set("config", "")

	saved := &CLIConfig{
		Endpoint: "https://example.com",
		APIKey:   "key",
		Token:    "tok",
	}
	require.NoError(t, saveConfig(saved))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := loadConfig()
	assert.Equal(t, saved.Endpoint, loaded.Endpoint)
	assert.Equal(t, saved.APIKey, loaded.APIKey)
	assert.Equal(t, saved.Token, loaded.Token)
}

func TestLoadConfig_MissingFileYieldsEmpty(t *testing.T) {
	viper.Set("config", filepath.Join(t.TempDir(), "absent.yml"))

	defer viper.Set("config", "")

	config := loadConfig()
	assert.Empty(t, config.Endpoint)
	assert.Empty(t, config.Token)
}

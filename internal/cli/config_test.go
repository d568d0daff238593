package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFirstRun(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "stride")

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	assert.Equal(t, defaultBackend, v.GetString(cfgKeyBackend))

	userID := v.GetString(cfgKeyUserID)
	_, err = uuid.Parse(userID)
	assert.NoError(t, err, "first run generates a principal id")

	_, err = os.Stat(filepath.Join(configDir, configFileExt))
	assert.NoError(t, err, "default config.yaml written")
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	configDir := t.TempDir()
	existing := []byte("backend: sqlite\nuser_id: my-stable-id\ndata_dir: /var/lib/stride\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), existing, 0o644))

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	assert.Equal(t, "my-stable-id", v.GetString(cfgKeyUserID))
	assert.Equal(t, "/var/lib/stride", v.GetString(cfgKeyDataDir))

	// A second load must not regenerate the user id.
	v2, err := loadConfig(configDir)
	require.NoError(t, err)
	assert.Equal(t, "my-stable-id", v2.GetString(cfgKeyUserID))
}

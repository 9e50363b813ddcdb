package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

func TestLoadConfigWritesDefaultOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, configFileFull))
	assert.NoError(t, err, "default config.yaml must be created")

	assert.Equal(t, defaultGridWidth, cfg.GetInt(cfgKeyGridWidth))
	assert.Equal(t, defaultGridHeight, cfg.GetInt(cfgKeyGridHeight))
	assert.Equal(t, types.SelectionRay4, cfg.GetString(cfgKeySelectionModel))
	assert.True(t, cfg.GetBool(cfgKeyAllowReverse))
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	custom := "grid_width: 8\nselection_model: snake\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileFull), []byte(custom), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.GetInt(cfgKeyGridWidth))
	assert.Equal(t, types.SelectionSnake, cfg.GetString(cfgKeySelectionModel))
	// Untouched keys fall back to defaults.
	assert.Equal(t, defaultGridHeight, cfg.GetInt(cfgKeyGridHeight))

	data, err := os.ReadFile(filepath.Join(dir, configFileFull))
	require.NoError(t, err)
	assert.Equal(t, custom, string(data), "existing config must not be overwritten")
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileFull = "config.yaml"

	cfgKeyGridWidth      = "grid_width"
	cfgKeyGridHeight     = "grid_height"
	cfgKeySelectionModel = "selection_model"
	cfgKeyAllowReverse   = "allow_reverse_selection"
	cfgKeyWordsFile      = "words_file"
	cfgKeyDataDir        = "data_dir"

	defaultGridWidth  = 6
	defaultGridHeight = 6
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Pathword CLI configuration

# Grid dimensions for generated puzzles
grid_width: 6
grid_height: 6

# Selection model: ray_4, ray_8, or snake
selection_model: ray_4

# Accept reversed cell sequences during play
allow_reverse_selection: true

# Word source file (optional; embedded defaults when unset)
# words_file:

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyGridWidth, defaultGridWidth)
	v.SetDefault(cfgKeyGridHeight, defaultGridHeight)
	v.SetDefault(cfgKeySelectionModel, types.SelectionRay4)
	v.SetDefault(cfgKeyAllowReverse, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileFull)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// Config loading for the stockroom CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"

	defaultConfigDirName = ".stockroom"
	defaultDataDirName   = ".stockroom-db"

	envConfigDir = "STOCKROOM_CONFIG_DIR"
	envDataDir   = "STOCKROOM_DATA_DIR"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Stockroom configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig resolves the config directory, reads config.yaml with Viper,
// and assembles the store Config. Precedence per setting:
// flag > environment > config.yaml > default. A missing config.yaml is not
// an error; a default one is written on first run.
func loadConfig() (types.Config, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return types.Config{}, err
	}

	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	dataDir, err := resolveDataDir(v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  dataDir,
		InMemory: flagMemory,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// resolveConfigDir follows --config-dir flag > env > $(CWD)/.stockroom.
func resolveConfigDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(cwd, defaultConfigDirName), nil
}

// resolveDataDir follows --data-dir flag > config.yaml data_dir > env >
// $(CWD)/.stockroom-db.
func resolveDataDir(fromConfig string) (string, error) {
	if flagDataDir != "" {
		return flagDataDir, nil
	}
	if fromConfig != "" {
		return fromConfig, nil
	}
	if dir := os.Getenv(envDataDir); dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(cwd, defaultDataDirName), nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns the default locations of the config file and the data
// directory. HSYNC_CONFIG_PATH overrides ~/.config/hsync.toml and HSYNC_HOME
// overrides ~/.local/share/hsync. Logs live under the data directory.
func GetDefaults() (map[string]string, error) {
	configPath, err := envOrHome("HSYNC_CONFIG_PATH", ".config", "hsync.toml")
	if err != nil {
		return nil, err
	}
	baseDir, err := envOrHome("HSYNC_HOME", ".local", "share", "hsync")
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// envOrHome returns $env when set, otherwise elems joined under the home directory.
func envOrHome(env string, elems ...string) (string, error) {
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory for %s default: %w", env, err)
	}
	return filepath.Join(append([]string{home}, elems...)...), nil
}

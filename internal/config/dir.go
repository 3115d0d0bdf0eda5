package config

import (
	"os"
	"path/filepath"
)

const (
	ConfigDirEnv = "ROBOTSX_CONFIG_DIR"
	ConfigSubdir = "robotsx"
)

// ConfigDir resolves the settings directory: $ROBOTSX_CONFIG_DIR, then
// $XDG_CONFIG_HOME/robotsx, then ~/.config/robotsx. Without a home
// directory it is ./robotsx.
func ConfigDir() string {
	if d := os.Getenv(ConfigDirEnv); d != "" {
		return d
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, ConfigSubdir)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", ConfigSubdir)
	}
	return filepath.Join(".", ConfigSubdir)
}

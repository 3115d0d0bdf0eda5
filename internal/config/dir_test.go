package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	xdg := t.TempDir()

	tests := []struct {
		name string
		env  map[string]string
		want func(t *testing.T) string
	}{
		{
			name: "explicit directory wins",
			env:  map[string]string{ConfigDirEnv: "/etc/robotsx", "XDG_CONFIG_HOME": xdg},
			want: func(*testing.T) string { return "/etc/robotsx" },
		},
		{
			name: "xdg config home",
			env:  map[string]string{ConfigDirEnv: "", "XDG_CONFIG_HOME": xdg},
			want: func(*testing.T) string { return filepath.Join(xdg, ConfigSubdir) },
		},
		{
			name: "relative xdg is ignored",
			env:  map[string]string{ConfigDirEnv: "", "XDG_CONFIG_HOME": "relative"},
			want: func(t *testing.T) string {
				home, err := os.UserHomeDir()
				if err != nil {
					t.Skipf("no home dir: %v", err)
				}
				return filepath.Join(home, ".config", ConfigSubdir)
			},
		},
		{
			name: "no home directory",
			env: map[string]string{
				ConfigDirEnv: "", "XDG_CONFIG_HOME": "",
				"HOME": "", "USERPROFILE": "", "HOMEDRIVE": "", "HOMEPATH": "", "home": "",
			},
			want: func(*testing.T) string { return filepath.Join(".", ConfigSubdir) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			want := tt.want(t)
			if got := ConfigDir(); got != want {
				t.Errorf("ConfigDir() = %q, want %q", got, want)
			}
		})
	}
}

func TestSettingsPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	if got, want := SettingsPath(), filepath.Join(dir, SettingsFileName); got != want {
		t.Errorf("SettingsPath() = %q, want %q", got, want)
	}
}

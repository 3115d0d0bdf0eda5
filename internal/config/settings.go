package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xmazu/robotsx/robotstxt"
)

const (
	SettingsFileName = "config.yaml"
	FileEnv          = "ROBOTSX_FILE"
	DefaultFile      = "robots.txt"
)

const (
	LineEndingPreserve = "preserve"
	LineEndingLF       = "lf"
	LineEndingCRLF     = "crlf"
)

type Settings struct {
	File       string   `yaml:"file"`
	LineEnding string   `yaml:"line_ending"`
	Audit      bool     `yaml:"audit"`
	Exclude    []string `yaml:"exclude,omitempty"`

	path string
}

func DefaultSettings() *Settings {
	return &Settings{
		File:       DefaultFile,
		LineEnding: LineEndingPreserve,
		Audit:      true,
	}
}

func SettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// LoadSettings reads the settings file, falling back to defaults when it
// does not exist. ROBOTSX_FILE overrides the configured file.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

func LoadSettingsFrom(path string) (*Settings, error) {
	s := DefaultSettings()
	s.path = path

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if f := os.Getenv(FileEnv); f != "" {
		s.File = f
	}
	if s.File == "" {
		s.File = DefaultFile
	}
	if s.LineEnding == "" {
		s.LineEnding = LineEndingPreserve
	}

	if _, err := ParseLineEnding(s.LineEnding); err != nil {
		return nil, fmt.Errorf("line_ending: %w", err)
	}

	return s, nil
}

func (s *Settings) Path() string { return s.path }

func (s *Settings) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if err := os.WriteFile(s.path, out, 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ParseLineEnding maps a configured line ending name to a terminator. An
// empty terminator means the file's own line ending is kept.
func ParseLineEnding(name string) (robotstxt.LineEnding, error) {
	switch name {
	case LineEndingPreserve, "":
		return "", nil
	case LineEndingLF:
		return robotstxt.LF, nil
	case LineEndingCRLF:
		return robotstxt.CRLF, nil
	default:
		return "", fmt.Errorf("unknown line ending %q (want lf, crlf or preserve)", name)
	}
}

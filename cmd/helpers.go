package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/robotstxt"
)

func stdout(cmd *cobra.Command) io.Writer {
	if cmd != nil {
		return cmd.OutOrStdout()
	}
	return os.Stdout
}

func stderr(cmd *cobra.Command) io.Writer {
	if cmd != nil {
		return cmd.ErrOrStderr()
	}
	return os.Stderr
}

func resolveFile(flag string, s *config.Settings) string {
	if flag != "" {
		return flag
	}
	return s.File
}

// loadRobots loads the file named by flag, or the configured default. Read
// commands pass mustExist; edit commands create the file on save.
func loadRobots(flag string, mustExist bool) (*robotstxt.File, *config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	path := resolveFile(flag, settings)
	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return nil, nil, fmt.Errorf("robots file %s: %w", path, err)
		}
	}

	f, err := robotstxt.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	eol, err := config.ParseLineEnding(settings.LineEnding)
	if err != nil {
		return nil, nil, err
	}
	f.SetLineEnding(eol)

	return f, settings, nil
}

// saveEdits writes f and, when enabled, journals the changes in the
// project's audit log.
func saveEdits(f *robotstxt.File, s *config.Settings, op audit.Op, changes []editor.Change) error {
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", f.Path(), err)
	}
	if !s.Audit {
		return nil
	}
	abs, err := filepath.Abs(f.Path())
	if err != nil {
		abs = f.Path()
	}
	if err := editor.Journal(editor.JournalRoot(filepath.Dir(abs)), op, abs, changes); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		return writeJSON(w, v)
	case "yaml":
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing settings file without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return writeYAML(stdout(cmd), s)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(stdout(cmd), config.SettingsPath())
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.SettingsPath()
	if _, err := os.Stat(path); err == nil && !configForce {
		ok, err := tui.Confirm(fmt.Sprintf("%s exists. Overwrite?", path))
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			fmt.Fprintln(stderr(cmd), tui.Muted("Kept existing settings."))
			return nil
		}
	}

	s, err := config.LoadSettingsFrom(path)
	if err != nil {
		// unreadable settings are replaced wholesale
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		if s, err = config.LoadSettingsFrom(path); err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
	}
	d := config.DefaultSettings()
	s.File, s.LineEnding, s.Audit, s.Exclude = d.File, d.LineEnding, d.Audit, d.Exclude
	if err := s.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	fmt.Fprintf(stderr(cmd), "%s %s\n", tui.Success("✓"), tui.Label("wrote")+" "+path)
	return nil
}

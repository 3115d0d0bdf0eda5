package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommand(t *testing.T) {
	t.Run("root command has correct metadata", func(t *testing.T) {
		if rootCmd.Use != "robotsx" {
			t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "robotsx")
		}
		if rootCmd.Short != "Lossless robots.txt parser and editor" {
			t.Errorf("rootCmd.Short = %q", rootCmd.Short)
		}
		if rootCmd.Long == "" {
			t.Error("rootCmd.Long should not be empty")
		}
	})

	t.Run("root command executes without error with --help", func(t *testing.T) {
		testCmd := &cobra.Command{
			Use:   rootCmd.Use,
			Short: rootCmd.Short,
			Long:  rootCmd.Long,
			Run:   func(cmd *cobra.Command, args []string) {},
		}

		testCmd.SetArgs([]string{"--help"})
		var buf bytes.Buffer
		testCmd.SetOut(&buf)

		if err := testCmd.Execute(); err != nil {
			t.Errorf("Execute() with --help error = %v", err)
		}
		if buf.Len() == 0 {
			t.Error("--help should produce output")
		}
	})

	t.Run("root command has subcommands", func(t *testing.T) {
		commands := []string{"parse", "get", "set", "append", "remove", "fmt", "check", "show", "ls", "watch", "audit", "config", "mcp"}
		for _, name := range commands {
			found := false
			for _, sub := range rootCmd.Commands() {
				if sub.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("subcommand %q not found", name)
			}
		}
	})

	t.Run("long description mentions the main commands", func(t *testing.T) {
		for _, s := range []string{"robots.txt", "parse", "set", "append", "check"} {
			if !strings.Contains(rootCmd.Long, s) {
				t.Errorf("rootCmd.Long should contain %q", s)
			}
		}
	})
}

func TestSetVersion(t *testing.T) {
	old := rootCmd.Version
	defer func() { rootCmd.Version = old }()

	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", rootCmd.Version)
	}
}

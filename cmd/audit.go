package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/internal/tui"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "View and verify the edit journal",
	Long: `View the journal of edits made with set, append, remove, fmt and the MCP tools.

Each entry carries the hash of the one before it, so rewriting or deleting an
earlier entry breaks the chain.`,
}

var auditShowCmd = &cobra.Command{
	Use:   "show [--last=N]",
	Short: "Show journal entries",
	RunE:  runAuditShow,
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify journal chain integrity",
	RunE:  runAuditVerify,
}

var (
	auditLastN   int
	auditWorkdir string
)

func init() {
	auditShowCmd.Flags().IntVarP(&auditLastN, "last", "n", 10, "Number of entries to show")
	auditShowCmd.Flags().StringVarP(&auditWorkdir, "workdir", "w", "", "Project directory (default: project root of the current directory)")

	auditVerifyCmd.Flags().StringVarP(&auditWorkdir, "workdir", "w", "", "Project directory (default: project root of the current directory)")

	auditCmd.AddCommand(auditShowCmd)
	auditCmd.AddCommand(auditVerifyCmd)

	rootCmd.AddCommand(auditCmd)
}

func auditRoot() string {
	if auditWorkdir != "" {
		return auditWorkdir
	}
	return editor.JournalRoot(".")
}

func runAuditShow(cmd *cobra.Command, args []string) error {
	out := stdout(cmd)
	entries, err := audit.Show(auditRoot(), auditLastN)
	if err != nil {
		if errors.Is(err, audit.ErrNoAuditLog) {
			fmt.Fprintln(out, "No audit log found. Edits are journaled once you change a file.")
			return nil
		}
		return fmt.Errorf("read audit log: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries in audit log.")
		return nil
	}
	return writeJSON(out, entries)
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	out := stdout(cmd)
	result, err := audit.Verify(auditRoot())
	if err != nil {
		if errors.Is(err, audit.ErrNoAuditLog) {
			fmt.Fprintln(out, "No audit log found.")
			return nil
		}
		return fmt.Errorf("verify audit log: %w", err)
	}

	fmt.Fprintf(out, "Audit log verified: %d entries\n", result.TotalEntries)

	if len(result.Breaks) == 0 {
		fmt.Fprintln(out, "Chain integrity: "+tui.Success("OK"))
		return nil
	}

	fmt.Fprintf(out, "Chain breaks detected at lines: %v\n", result.Breaks)
	fmt.Fprintln(out, tui.Warning("Warning: log may have been tampered with."))
	return nil
}

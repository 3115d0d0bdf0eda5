package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/internal/tui"
)

var removeCmd = &cobra.Command{
	Use:     "remove KEY",
	Aliases: []string{"rm"},
	Short:   "Delete a directive line",
	Long: `Delete the directive KEY from the file. Other lines keep their text.
When KEY appears on several lines, pick one with --line or delete all with --all.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

var (
	removeFile string
	removeLine int
	removeAll  bool
)

func init() {
	removeCmd.Flags().StringVarP(&removeFile, "file", "f", "", "Path to robots.txt (default from settings)")
	removeCmd.Flags().IntVarP(&removeLine, "line", "l", 0, "Line number of the directive to delete")
	removeCmd.Flags().BoolVarP(&removeAll, "all", "a", false, "Delete every matching directive")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	f, settings, err := loadRobots(removeFile, true)
	if err != nil {
		return err
	}

	changes, err := editor.Remove(f.Document(), editor.Target{Key: args[0], Line: removeLine, All: removeAll})
	if err != nil {
		return err
	}
	if err := saveEdits(f, settings, audit.OpRemove, changes); err != nil {
		return err
	}

	errOut := stderr(cmd)
	for _, c := range changes {
		fmt.Fprintf(errOut, "%s %s %s\n", tui.Success("✓"), tui.Label(fmt.Sprintf("removed line %d", c.Line)), tui.Key(c.Key))
	}
	return nil
}

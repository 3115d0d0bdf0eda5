package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/internal/tui"
)

var appendCmd = &cobra.Command{
	Use:   "append KEY VALUE",
	Short: "Add a directive at the end of the file",
	Long: `Append "KEY: VALUE" as a new last line. Existing lines are not touched.
The file is created when it does not exist.`,
	Args: cobra.ExactArgs(2),
	RunE: runAppend,
}

var appendFile string

func init() {
	appendCmd.Flags().StringVarP(&appendFile, "file", "f", "", "Path to robots.txt (default from settings)")
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	f, settings, err := loadRobots(appendFile, false)
	if err != nil {
		return err
	}

	change, err := editor.Append(f.Document(), args[0], args[1])
	if err != nil {
		return err
	}
	if err := saveEdits(f, settings, audit.OpAppend, []editor.Change{change}); err != nil {
		return err
	}

	fmt.Fprintf(stderr(cmd), "%s %s %s\n", tui.Success("✓"), tui.Label(fmt.Sprintf("line %d", change.Line)), tui.Key(change.Key)+": "+change.New)
	return nil
}

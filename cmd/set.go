package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/internal/tui"
)

var setCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Change the value of a directive in place",
	Long: `Replace the value of the directive KEY. The key spelling, the spacing around
the value and any trailing comment are kept. Without VALUE you are prompted for it.

When KEY appears on several lines, pick one with --line or change all with --all.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

var (
	setFile string
	setLine int
	setAll  bool
)

func init() {
	setCmd.Flags().StringVarP(&setFile, "file", "f", "", "Path to robots.txt (default from settings)")
	setCmd.Flags().IntVarP(&setLine, "line", "l", 0, "Line number of the directive to change")
	setCmd.Flags().BoolVarP(&setAll, "all", "a", false, "Change every matching directive")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	f, settings, err := loadRobots(setFile, true)
	if err != nil {
		return err
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		value, err = tui.Input(fmt.Sprintf("New value for %s", key), "/path/")
		if err != nil {
			return fmt.Errorf("read value: %w", err)
		}
	}

	changes, err := editor.Set(*f.Document(), editor.Target{Key: key, Line: setLine, All: setAll}, value)
	if err != nil {
		return err
	}
	if err := saveEdits(f, settings, audit.OpSet, changes); err != nil {
		return err
	}

	errOut := stderr(cmd)
	for _, c := range changes {
		fmt.Fprintf(errOut, "%s %s %s\n", tui.Success("✓"), tui.Label(fmt.Sprintf("line %d", c.Line)), tui.Key(c.Key)+": "+c.New)
	}
	return nil
}

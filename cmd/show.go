package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a robots.txt file with line numbers and highlighting",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var showFile string

func init() {
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "Path to robots.txt (default from settings)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	f, _, err := loadRobots(showFile, true)
	if err != nil {
		return err
	}

	out := stdout(cmd)
	fmt.Fprintln(out, tui.Header(f.Path()))
	for _, line := range *f.Document() {
		fmt.Fprintln(out, tui.RenderLine(line))
	}
	return nil
}

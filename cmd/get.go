package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/editor"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the values of a directive",
	Long: `Print the value of every directive whose key matches KEY, one per line.
Keys match case-insensitively. Use --format json to include line numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

var (
	getFile   string
	getFormat string
)

func init() {
	getCmd.Flags().StringVarP(&getFile, "file", "f", "", "Path to robots.txt (default from settings)")
	getCmd.Flags().StringVar(&getFormat, "format", "text", "Output format: text or json")
	rootCmd.AddCommand(getCmd)
}

type getResult struct {
	Line  int    `json:"line"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

func runGet(cmd *cobra.Command, args []string) error {
	f, _, err := loadRobots(getFile, true)
	if err != nil {
		return err
	}

	lines, err := editor.Select(*f.Document(), editor.Target{Key: args[0], All: true})
	if err != nil {
		return err
	}

	out := stdout(cmd)
	switch getFormat {
	case "json":
		results := make([]getResult, 0, len(lines))
		for _, l := range lines {
			results = append(results, getResult{Line: l.LineNumber(), Key: l.Key(), Value: l.Value()})
		}
		return writeJSON(out, results)
	case "text", "":
		for _, l := range lines {
			fmt.Fprintln(out, l.Value())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", getFormat)
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/editor"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Print every line of a robots.txt file with its parsed parts",
	Long: `Parse a robots.txt file and print one record per line: kind, key, value,
comment, the whitespace around the value, and the raw text.
Blank, comment-only and malformed lines are listed too.`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

var (
	parseFile   string
	parseFormat string
)

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to robots.txt (default from settings)")
	parseCmd.Flags().StringVar(&parseFormat, "format", "json", "Output format: json or yaml")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	f, _, err := loadRobots(parseFile, true)
	if err != nil {
		return err
	}
	return writeFormatted(stdout(cmd), parseFormat, editor.Describe(*f.Document()))
}

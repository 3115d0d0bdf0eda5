package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "robotsx",
	Short:         "Lossless robots.txt parser and editor",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `robotsx - read and edit robots.txt files without disturbing anything you did not touch.
Comments, blank lines, malformed lines and the spacing around every value are kept exactly;
only the values you change are rewritten.

EXAMPLES:

  robotsx parse                              # every line as JSON
  robotsx get Disallow                       # values of a directive
  robotsx set Crawl-delay 5                  # change a value in place
  robotsx set Disallow /tmp/ --line 7        # pick one of several lines
  robotsx append Sitemap https://example.com/sitemap.xml
  robotsx check public/robots.txt            # verify a lossless round trip
  robotsx ls                                 # find robots.txt files in the project

Settings live in ` + "`robotsx config path`" + `; ROBOTSX_FILE overrides the default file.`,
}

func init() {
	rootCmd.SetVersionTemplate("robotsx version {{.Version}}\n")
}

// SetVersion sets the version string shown by --version (e.g. from ldflags).
func SetVersion(v string) { rootCmd.Version = v }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/discover"
	"github.com/xmazu/robotsx/internal/tui"
	"github.com/xmazu/robotsx/robotstxt"
)

var lsCmd = &cobra.Command{
	Use:   "ls [DIR]",
	Short: "List robots.txt files under a directory",
	Long: `Find robots.txt files (and variants such as robots.staging.txt) under DIR and print them
as a tree with their directive counts. Without DIR the project root is searched.
Paths ignored by .gitignore or matched by --exclude are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

var lsExclude []string

func init() {
	lsCmd.Flags().StringSliceVarP(&lsExclude, "exclude", "e", nil, "Glob patterns to skip (added to settings exclude)")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	} else if r, err := discover.FindRoot("."); err == nil {
		root = r
	}

	exclude := append(append([]string{}, settings.Exclude...), lsExclude...)
	paths, err := discover.Find(root, exclude)
	if err != nil {
		return fmt.Errorf("search %s: %w", root, err)
	}

	out := stdout(cmd)
	if len(paths) == 0 {
		fmt.Fprintln(out, tui.Muted("No robots.txt files found."))
		return nil
	}

	fmt.Fprintln(out, tui.Header(root))
	discover.PrintTree(out, discover.BuildTree(paths), func(n *discover.TreeNode) string {
		if n.File == "" {
			return n.Name + "/"
		}
		f, err := robotstxt.Load(filepath.Join(root, filepath.FromSlash(n.File)))
		if err != nil {
			return n.Name + " " + tui.Error("unreadable")
		}
		return n.Name + " " + tui.Muted(fmt.Sprintf("(%d directives)", len(f.Document().Directives())))
	})
	return nil
}

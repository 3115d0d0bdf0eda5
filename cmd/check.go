package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/tui"
	"github.com/xmazu/robotsx/robotstxt"
)

var checkCmd = &cobra.Command{
	Use:   "check [FILE...]",
	Short: "Verify that files survive a parse and serialize unchanged",
	Long: `Parse each file and serialize it again with its own line ending.
Files that would change (mixed line endings or a missing final newline) are reported
and the command exits non-zero. Without FILE the configured file is checked.`,
	RunE: runCheck,
}

var errCheckFailed = errors.New("some files are not in canonical form")

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	path  string
	ok    bool
	lines int
}

// checkFile reports whether content is already what Serialize would write.
func checkFile(path string) (checkResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return checkResult{path: path}, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)
	doc := robotstxt.Parse(content)
	out := robotstxt.Serialize(doc, robotstxt.WithLineEnding(robotstxt.DetectLineEnding(content)))
	return checkResult{path: path, ok: bytes.Equal([]byte(out), data), lines: len(doc)}, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		paths = []string{settings.File}
	}

	results := make([]checkResult, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		g.Go(func() error {
			r, err := checkFile(p)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	errOut := stderr(cmd)
	failed := 0
	for _, r := range results {
		if r.ok {
			fmt.Fprintf(errOut, "%s %s %s\n", tui.Success("✓"), r.path, tui.Muted(fmt.Sprintf("(%d lines)", r.lines)))
			continue
		}
		failed++
		fmt.Fprintf(errOut, "%s %s %s\n", tui.Error("✗"), r.path, tui.Muted("run robotsx fmt -w to normalize"))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(results), errCheckFailed)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/tui"
	"github.com/xmazu/robotsx/internal/watch"
	"github.com/xmazu/robotsx/robotstxt"
)

var watchCmd = &cobra.Command{
	Use:   "watch [FILE...]",
	Short: "Report robots.txt changes as they happen",
	Long: `Watch robots.txt files and print a summary each time one changes:
the number of lines and directives, and whether it still round-trips unchanged.
Without FILE the configured file is watched. Stop with Ctrl+C.`,
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Wait this long after the last event before reporting")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		paths = []string{settings.File}
	}

	w, err := watch.New(watchDebounce)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errOut := stderr(cmd)
	fmt.Fprintf(errOut, "%s %d file(s)\n", tui.Label("watching"), len(w.Files()))
	return watchLoop(ctx, w.Start(), stdout(cmd))
}

func watchLoop(ctx context.Context, changes <-chan string, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			fmt.Fprintln(out, summarize(path))
		}
	}
}

func summarize(path string) string {
	stamp := tui.Muted(time.Now().Format("15:04:05"))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Sprintf("%s %s %s", stamp, path, tui.Warning("removed"))
		}
		return fmt.Sprintf("%s %s %s", stamp, path, tui.Error(err.Error()))
	}

	content := string(data)
	doc := robotstxt.Parse(content)
	status := tui.Success("ok")
	if robotstxt.Serialize(doc, robotstxt.WithLineEnding(robotstxt.DetectLineEnding(content))) != content {
		status = tui.Warning("not canonical")
	}
	return fmt.Sprintf("%s %s %d lines, %d directives, %s", stamp, path, len(doc), len(doc.Directives()), status)
}

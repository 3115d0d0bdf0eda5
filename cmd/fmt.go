package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/internal/tui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Normalize line endings and the final newline",
	Long: `Rewrite a robots.txt file with one line ending throughout and a terminated last line.
Line contents are never changed. Without --write the result goes to stdout.`,
	Args: cobra.NoArgs,
	RunE: runFmt,
}

var (
	fmtFile  string
	fmtEOL   string
	fmtWrite bool
)

func init() {
	fmtCmd.Flags().StringVarP(&fmtFile, "file", "f", "", "Path to robots.txt (default from settings)")
	fmtCmd.Flags().StringVar(&fmtEOL, "eol", "", "Line ending: lf, crlf or preserve (default from settings)")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back to the file")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	f, settings, err := loadRobots(fmtFile, true)
	if err != nil {
		return err
	}
	if fmtEOL != "" {
		eol, err := config.ParseLineEnding(fmtEOL)
		if err != nil {
			return err
		}
		f.SetLineEnding(eol)
	}

	if !fmtWrite {
		_, err := stdout(cmd).Write(f.Bytes())
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", f.Path(), err)
	}
	if settings.Audit {
		abs, err := filepath.Abs(f.Path())
		if err != nil {
			abs = f.Path()
		}
		if err := audit.Log(editor.JournalRoot(filepath.Dir(abs)), audit.OpFormat, audit.WithFile(abs)); err != nil {
			return fmt.Errorf("write audit log: %w", err)
		}
	}

	printFormatted(stderr(cmd), f.Path())
	return nil
}

func printFormatted(w io.Writer, path string) {
	fmt.Fprintf(w, "%s %s\n", tui.Success("✓"), tui.Label("formatted")+" "+path)
}

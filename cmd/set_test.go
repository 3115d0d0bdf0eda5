package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/internal/tui"
)

func resetSetFlags(path string) {
	setFile = path
	setLine = 0
	setAll = false
}

func TestRunSet(t *testing.T) {
	t.Run("changes only the value", func(t *testing.T) {
		path := setupProject(t, testRobots)
		resetSetFlags(path)

		c, _, errOut := newTestCmd()
		if err := runSet(c, []string{"disallow", "/secret/"}); err != nil {
			t.Fatalf("runSet() error = %v", err)
		}

		want := strings.Replace(testRobots, "Disallow: /private/ # keep out", "Disallow: /secret/ # keep out", 1)
		if got := readFile(t, path); got != want {
			t.Errorf("file =\n%s\nwant\n%s", got, want)
		}
		if !strings.Contains(errOut.String(), "line 2") {
			t.Errorf("status = %q", errOut.String())
		}
	})

	t.Run("journals the change", func(t *testing.T) {
		path := setupProject(t, testRobots)
		resetSetFlags(path)

		c, _, _ := newTestCmd()
		if err := runSet(c, []string{"Crawl-delay", "5"}); err != nil {
			t.Fatalf("runSet() error = %v", err)
		}

		entries, err := audit.Show(filepath.Dir(path), 0)
		if err != nil {
			t.Fatalf("audit.Show() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("entries = %d, want 1", len(entries))
		}
		e := entries[0]
		if e.Op != string(audit.OpSet) || e.Key != "Crawl-delay" || e.Old != "10" || e.New != "5" || e.Line != 6 {
			t.Errorf("entry = %+v", e)
		}
	})

	t.Run("ambiguous key needs --line or --all", func(t *testing.T) {
		content := "Disallow: /a/\nDisallow: /b/\n"
		path := setupProject(t, content)
		resetSetFlags(path)

		c, _, _ := newTestCmd()
		err := runSet(c, []string{"Disallow", "/x/"})
		if !errors.Is(err, editor.ErrAmbiguous) {
			t.Fatalf("error = %v, want ErrAmbiguous", err)
		}
		if got := readFile(t, path); got != content {
			t.Errorf("file changed on error: %q", got)
		}

		setLine = 2
		if err := runSet(c, []string{"Disallow", "/x/"}); err != nil {
			t.Fatalf("runSet(--line 2) error = %v", err)
		}
		if got := readFile(t, path); got != "Disallow: /a/\nDisallow: /x/\n" {
			t.Errorf("file = %q", got)
		}

		setLine = 0
		setAll = true
		if err := runSet(c, []string{"Disallow", "/"}); err != nil {
			t.Fatalf("runSet(--all) error = %v", err)
		}
		if got := readFile(t, path); got != "Disallow: /\nDisallow: /\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("prompts when value omitted", func(t *testing.T) {
		path := setupProject(t, "Crawl-delay: 10\n")
		resetSetFlags(path)

		tui.SetMock(&tui.MockPrompts{
			InputFunc: func(title, placeholder string) (string, error) {
				if !strings.Contains(title, "Crawl-delay") {
					t.Errorf("prompt title = %q", title)
				}
				return "3", nil
			},
		})
		defer tui.ClearMock()

		c, _, _ := newTestCmd()
		if err := runSet(c, []string{"Crawl-delay"}); err != nil {
			t.Fatalf("runSet() error = %v", err)
		}
		if got := readFile(t, path); got != "Crawl-delay: 3\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("rejects comment marker in value", func(t *testing.T) {
		path := setupProject(t, "Allow: /\n")
		resetSetFlags(path)

		c, _, _ := newTestCmd()
		if err := runSet(c, []string{"Allow", "/a # b"}); !errors.Is(err, editor.ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("keeps CRLF", func(t *testing.T) {
		path := setupProject(t, "User-agent: *\r\nDisallow: /\r\n")
		resetSetFlags(path)

		c, _, _ := newTestCmd()
		if err := runSet(c, []string{"Disallow", "/tmp/"}); err != nil {
			t.Fatalf("runSet() error = %v", err)
		}
		if got := readFile(t, path); got != "User-agent: *\r\nDisallow: /tmp/\r\n" {
			t.Errorf("file = %q", got)
		}
	})
}

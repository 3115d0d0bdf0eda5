package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testDebounce = 100 * time.Millisecond

func TestWatcher(t *testing.T) {
	t.Run("detects file changes", func(t *testing.T) {
		tmpDir := t.TempDir()
		robots := filepath.Join(tmpDir, "robots.txt")

		if err := os.WriteFile(robots, []byte("User-agent: *\n"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}

		w, err := New(testDebounce)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer w.Close()

		if err := w.Add(robots); err != nil {
			t.Fatalf("Add: %v", err)
		}

		changes := w.Start()

		time.Sleep(50 * time.Millisecond)

		if err := os.WriteFile(robots, []byte("User-agent: *\nDisallow: /\n"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}

		select {
		case got := <-changes:
			want, _ := filepath.Abs(robots)
			if got != want {
				t.Errorf("changed path = %q, want %q", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Error("expected change notification")
		}
	})

	t.Run("debounces rapid changes", func(t *testing.T) {
		tmpDir := t.TempDir()
		robots := filepath.Join(tmpDir, "robots.txt")

		if err := os.WriteFile(robots, []byte("User-agent: *\n"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}

		w, err := New(testDebounce)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer w.Close()

		if err := w.Add(robots); err != nil {
			t.Fatalf("Add: %v", err)
		}

		changes := w.Start()

		time.Sleep(50 * time.Millisecond)

		for i := 0; i < 5; i++ {
			if err := os.WriteFile(robots, []byte("Disallow: /"+string(rune('a'+i))+"\n"), 0644); err != nil {
				t.Fatalf("write file: %v", err)
			}
			time.Sleep(10 * time.Millisecond)
		}

		select {
		case <-changes:
		case <-time.After(2 * time.Second):
			t.Fatal("expected change notification")
		}

		select {
		case <-changes:
			t.Error("expected rapid writes to collapse into one notification")
		case <-time.After(3 * testDebounce):
		}
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		robots := filepath.Join(tmpDir, "robots.txt")

		w, err := New(testDebounce)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer w.Close()

		if err := w.Add(robots); err != nil {
			t.Fatalf("Add: %v", err)
		}
		changes := w.Start()
		time.Sleep(50 * time.Millisecond)

		if err := os.WriteFile(filepath.Join(tmpDir, "humans.txt"), []byte("hi\n"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}

		select {
		case got := <-changes:
			t.Errorf("unexpected notification for %q", got)
		case <-time.After(3 * testDebounce):
		}
	})

	t.Run("watches non-existent file directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		robots := filepath.Join(tmpDir, "robots.txt")

		w, err := New(testDebounce)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer w.Close()

		if err := w.Add(robots); err != nil {
			t.Fatalf("Add: %v", err)
		}

		changes := w.Start()

		time.Sleep(50 * time.Millisecond)

		if err := os.WriteFile(robots, []byte("User-agent: *\n"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}

		select {
		case <-changes:
		case <-time.After(2 * time.Second):
			t.Error("expected change notification for created file")
		}
	})

	t.Run("Files returns watched files", func(t *testing.T) {
		tmpDir := t.TempDir()

		w, err := New(0)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer w.Close()

		for _, name := range []string{"robots.txt", "robots.txt", "robots.staging.txt"} {
			if err := w.Add(filepath.Join(tmpDir, name)); err != nil {
				t.Fatalf("Add: %v", err)
			}
		}

		if files := w.Files(); len(files) != 2 {
			t.Errorf("Files() = %d files, want 2", len(files))
		}
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		w, err := New(testDebounce)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("second Close: %v", err)
		}
	})
}

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xmazu/robotsx/internal/audit"
)

func TestRunAudit(t *testing.T) {
	t.Run("no log", func(t *testing.T) {
		auditWorkdir, auditLastN = t.TempDir(), 10
		defer func() { auditWorkdir = "" }()

		c, out, _ := newTestCmd()
		if err := runAuditShow(c, nil); err != nil {
			t.Fatalf("runAuditShow() error = %v", err)
		}
		if !strings.Contains(out.String(), "No audit log found") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("show and verify", func(t *testing.T) {
		dir := t.TempDir()
		auditWorkdir, auditLastN = dir, 1
		defer func() { auditWorkdir, auditLastN = "", 10 }()

		for _, key := range []string{"Disallow", "Sitemap"} {
			if err := audit.Log(dir, audit.OpAppend, audit.WithKey(key)); err != nil {
				t.Fatalf("audit.Log() error = %v", err)
			}
		}

		c, out, _ := newTestCmd()
		if err := runAuditShow(c, nil); err != nil {
			t.Fatalf("runAuditShow() error = %v", err)
		}
		if !strings.Contains(out.String(), `"key": "Sitemap"`) || strings.Contains(out.String(), "Disallow") {
			t.Errorf("show output = %q", out.String())
		}

		out.Reset()
		if err := runAuditVerify(c, nil); err != nil {
			t.Fatalf("runAuditVerify() error = %v", err)
		}
		if !strings.Contains(out.String(), "2 entries") || !strings.Contains(out.String(), "OK") {
			t.Errorf("verify output = %q", out.String())
		}
	})

	t.Run("verify reports breaks", func(t *testing.T) {
		dir := t.TempDir()
		auditWorkdir = dir
		defer func() { auditWorkdir = "" }()

		if err := audit.Log(dir, audit.OpSet); err != nil {
			t.Fatalf("audit.Log() error = %v", err)
		}
		logPath := filepath.Join(dir, ".robotsx", "audit.logl")
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			t.Fatal(err)
		}
		f.WriteString(`{"op":"set","prev_hash":"bogus"}` + "\n")
		f.Close()

		c, out, _ := newTestCmd()
		if err := runAuditVerify(c, nil); err != nil {
			t.Fatalf("runAuditVerify() error = %v", err)
		}
		if !strings.Contains(out.String(), "Chain breaks detected at lines: [2]") {
			t.Errorf("verify output = %q", out.String())
		}
	})
}

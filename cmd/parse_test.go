package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/xmazu/robotsx/internal/editor"
)

func TestRunParse(t *testing.T) {
	path := setupProject(t, testRobots)
	parseFile = path
	parseFormat = "json"

	c, out, _ := newTestCmd()
	if err := runParse(c, nil); err != nil {
		t.Fatalf("runParse() error = %v", err)
	}

	var lines []editor.LineInfo
	if err := json.Unmarshal(out.Bytes(), &lines); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}
	if lines[1].Key != "Disallow" || lines[1].Value != "/private/" || lines[1].Comment != "# keep out" {
		t.Errorf("line 2 = %+v", lines[1])
	}
	if lines[3].Kind != "passthrough" || lines[4].Kind != "comment" {
		t.Errorf("kinds = %q, %q", lines[3].Kind, lines[4].Kind)
	}
}

func TestRunParse_YAML(t *testing.T) {
	path := setupProject(t, "User-agent: *\n")
	parseFile = path
	parseFormat = "yaml"
	defer func() { parseFormat = "json" }()

	c, out, _ := newTestCmd()
	if err := runParse(c, nil); err != nil {
		t.Fatalf("runParse() error = %v", err)
	}
	if !strings.Contains(out.String(), "key: User-agent") {
		t.Errorf("yaml output = %q", out.String())
	}
}

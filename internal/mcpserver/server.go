package mcpserver

import (
	"context"
	"errors"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/editor"
	"github.com/xmazu/robotsx/robotstxt"
)

type Options struct {
	Version string
	// Audit journals every edit next to the edited file.
	Audit bool
}

type fileArgs struct {
	Path    string `json:"path" jsonschema:"path to a robots.txt file (default: nearest robots.txt)"`
	Workdir string `json:"workdir" jsonschema:"directory to search for robots.txt (default: current)"`
}

type directiveArgs struct {
	Path    string `json:"path" jsonschema:"path to a robots.txt file (default: nearest robots.txt)"`
	Workdir string `json:"workdir" jsonschema:"directory to search for robots.txt (default: current)"`
	Key     string `json:"key" jsonschema:"directive key, matched case-insensitively (e.g. Disallow)"`
	Line    int    `json:"line" jsonschema:"one-based line number to target a single line"`
	All     bool   `json:"all" jsonschema:"apply to every line with the key"`
}

type setArgs struct {
	Path    string `json:"path" jsonschema:"path to a robots.txt file (default: nearest robots.txt)"`
	Workdir string `json:"workdir" jsonschema:"directory to search for robots.txt (default: current)"`
	Key     string `json:"key" jsonschema:"directive key, matched case-insensitively (e.g. Disallow)"`
	Line    int    `json:"line" jsonschema:"one-based line number to target a single line"`
	All     bool   `json:"all" jsonschema:"apply to every line with the key"`
	Value   string `json:"value" jsonschema:"new value"`
}

type appendArgs struct {
	Path    string `json:"path" jsonschema:"path to a robots.txt file (default: nearest robots.txt)"`
	Workdir string `json:"workdir" jsonschema:"directory to search for robots.txt (default: current)"`
	Key     string `json:"key" jsonschema:"directive key (e.g. Sitemap)"`
	Value   string `json:"value" jsonschema:"directive value"`
}

type auditArgs struct {
	Count   int    `json:"count" jsonschema:"number of entries to return (default: 20)"`
	Workdir string `json:"workdir" jsonschema:"directory holding the audit log (default: current)"`
}

func NewServer(opts Options) *mcpsdk.Server {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "robotsx",
		Version: version,
	}, nil)

	h := &handlers{audit: opts.Audit}

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "parse_robots",
		Description: "Parse a robots.txt file and return every line with its number, kind (directive, comment, passthrough), key, value, comment and raw text. Read-only.",
	}, h.parse)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_directive",
		Description: "Return the values of a directive key (e.g. Disallow) with their line numbers. Keys are matched case-insensitively. Read-only.",
	}, h.get)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "set_directive",
		Description: "Change the value of a directive in place. Padding and trailing comments on the line are kept, all other lines are untouched. When a key appears more than once, pass line or all.",
	}, h.set)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "append_directive",
		Description: "Append a new 'Key: value' line at the end of the robots.txt file.",
	}, h.append)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "remove_directive",
		Description: "Remove directive lines selected by key and/or line number. When a key appears more than once, pass line or all.",
	}, h.remove)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "audit_show",
		Description: "Show recent entries of the robotsx edit journal.",
	}, h.auditShow)

	return server
}

func Run(ctx context.Context, opts Options) error {
	return NewServer(opts).Run(ctx, &mcpsdk.StdioTransport{})
}

type handlers struct {
	audit bool
}

func (h *handlers) load(path, workdir string) (*robotstxt.File, error) {
	resolved, err := resolvePath(path, workdir)
	if err != nil {
		return nil, err
	}
	return robotstxt.Load(resolved)
}

func (h *handlers) journal(f *robotstxt.File, op audit.Op, tool string, changes []editor.Change) {
	if !h.audit {
		return
	}
	_ = editor.Journal(editor.JournalRoot(filepath.Dir(f.Path())), op, f.Path(), changes, audit.WithTool(tool))
}

func (h *handlers) parse(ctx context.Context, req *mcpsdk.CallToolRequest, args fileArgs) (*mcpsdk.CallToolResult, any, error) {
	f, err := h.load(args.Path, args.Workdir)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return successResult(map[string]any{
		"path":  f.Path(),
		"lines": editor.Describe(*f.Document()),
	}), nil, nil
}

func (h *handlers) get(ctx context.Context, req *mcpsdk.CallToolRequest, args directiveArgs) (*mcpsdk.CallToolResult, any, error) {
	f, err := h.load(args.Path, args.Workdir)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	lines, err := editor.Select(*f.Document(), editor.Target{Key: args.Key, Line: args.Line, All: true})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	matches := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		matches = append(matches, map[string]any{"line": l.LineNumber(), "value": l.Value()})
	}
	return successResult(map[string]any{"path": f.Path(), "key": args.Key, "matches": matches}), nil, nil
}

func (h *handlers) set(ctx context.Context, req *mcpsdk.CallToolRequest, args setArgs) (*mcpsdk.CallToolResult, any, error) {
	f, err := h.load(args.Path, args.Workdir)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	changes, err := editor.Set(*f.Document(), editor.Target{Key: args.Key, Line: args.Line, All: args.All}, args.Value)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	if err := f.Save(); err != nil {
		return errorResult(err.Error()), nil, nil
	}
	h.journal(f, audit.OpSet, "set_directive", changes)
	return successResult(map[string]any{"ok": true, "path": f.Path(), "changes": changes}), nil, nil
}

func (h *handlers) append(ctx context.Context, req *mcpsdk.CallToolRequest, args appendArgs) (*mcpsdk.CallToolResult, any, error) {
	f, err := h.load(args.Path, args.Workdir)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	change, err := editor.Append(f.Document(), args.Key, args.Value)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	if err := f.Save(); err != nil {
		return errorResult(err.Error()), nil, nil
	}
	h.journal(f, audit.OpAppend, "append_directive", []editor.Change{change})
	return successResult(map[string]any{"ok": true, "path": f.Path(), "change": change}), nil, nil
}

func (h *handlers) remove(ctx context.Context, req *mcpsdk.CallToolRequest, args directiveArgs) (*mcpsdk.CallToolResult, any, error) {
	f, err := h.load(args.Path, args.Workdir)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	changes, err := editor.Remove(f.Document(), editor.Target{Key: args.Key, Line: args.Line, All: args.All})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	if err := f.Save(); err != nil {
		return errorResult(err.Error()), nil, nil
	}
	h.journal(f, audit.OpRemove, "remove_directive", changes)
	return successResult(map[string]any{"ok": true, "path": f.Path(), "changes": changes}), nil, nil
}

func (h *handlers) auditShow(ctx context.Context, req *mcpsdk.CallToolRequest, args auditArgs) (*mcpsdk.CallToolResult, any, error) {
	count := args.Count
	if count <= 0 {
		count = 20
	}
	entries, err := audit.Show(editor.JournalRoot(args.Workdir), count)
	if err != nil {
		if errors.Is(err, audit.ErrNoAuditLog) {
			return successResult(map[string]any{"entries": []any{}, "message": "No audit log found"}), nil, nil
		}
		return errorResult(err.Error()), nil, nil
	}
	return successResult(map[string]any{"entries": entries}), nil, nil
}

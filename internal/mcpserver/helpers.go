package mcpserver

import (
	"encoding/json"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xmazu/robotsx/internal/discover"
)

func successResult(data interface{}) *mcpsdk.CallToolResult {
	b, _ := json.Marshal(data)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(b)}},
	}
}

func errorResult(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "error: " + msg}},
		IsError: true,
	}
}

// resolvePath returns path when given, otherwise the nearest robots.txt
// in workdir or its parents.
func resolvePath(path, workdir string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) && workdir != "" {
			path = filepath.Join(workdir, path)
		}
		return filepath.Abs(path)
	}
	return discover.FindInParents(workdir, discover.MaxSearchDepth)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xmazu/robotsx/internal/config"
	"github.com/xmazu/robotsx/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio) for AI/IDE integration",
	Long: `Run the Model Context Protocol server on stdio. Exposes parse_robots, get_directive,
set_directive, append_directive, remove_directive and audit_show. Edits keep every
untouched line byte for byte and are journaled when auditing is enabled.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}
	return mcpserver.Run(ctx, mcpserver.Options{Version: rootCmd.Version, Audit: settings.Audit})
}

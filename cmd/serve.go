// serve.go implements the "minigrep serve" command for MCP server operation.
//
// Separated from root.go because serve has a different lifecycle: unlike the
// search, which runs and exits, serve blocks indefinitely handling MCP
// requests over stdio.

package cmd

import (
	"github.com/ethanfaust/minigrep/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Exposes a minigrep_search tool so MCP clients can run regex searches against
files or inline content.`,
		RunE: func(c *cobra.Command, _ []string) error {
			c.SilenceUsage = true
			return mcp.Serve()
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}

// Package mcp implements the Model Context Protocol server, exposing the
// search pipeline to LLMs. This lets AI assistants run regex searches over
// files or inline content through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"minigrep",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	slog.Info("minigrep MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("minigrep_search",
			mcp.WithDescription("Search a file or inline content for lines matching a regular expression. Returns matching lines (or capture groups) as JSON."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Go (RE2) regular expression")),
			mcp.WithString("file", mcp.Description("Path of the file to search")),
			mcp.WithString("content", mcp.Description("Inline text to search instead of a file")),
			mcp.WithBoolean("invert", mcp.Description("Select non-matching lines")),
			mcp.WithBoolean("groups", mcp.Description("Return capture groups instead of full lines")),
			mcp.WithBoolean("ignore_case", mcp.Description("Ignore case distinctions")),
		),
		searchTool,
	)
}

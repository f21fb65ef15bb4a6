// tools_search.go implements the minigrep_search MCP tool.
//
// Design: Results are returned as pretty-printed JSON for easy LLM parsing.
// Parameter extraction is permissive - an LLM omitting an optional parameter
// gets a sensible default rather than a cryptic type error.

package mcp

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/ethanfaust/minigrep/internal/config"
	"github.com/ethanfaust/minigrep/internal/log"
	"github.com/ethanfaust/minigrep/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
)

// searchTool handles minigrep_search tool calls.
func searchTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	file := getString(req, "file", "")
	content := getString(req, "content", "")
	if file == "" && content == "" {
		return mcp.NewToolResultError("either file or content is required"), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := search.Options{
		InvertMatch:   getBool(req, "invert", false),
		DumpGroups:    getBool(req, "groups", false),
		IgnoreCase:    getBool(req, "ignore_case", false),
		MaxLineLength: cfg.MaxLineLength(),
	}

	var r io.Reader
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			log.Event("mcp:minigrep_search", "search").Pattern(pattern).File(file).Write(err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		defer f.Close()
		r = f
	} else {
		r = strings.NewReader(content)
	}

	result, err := search.Run(ctx, io.Discard, r, pattern, opts)

	log.Event("mcp:minigrep_search", "search").
		Pattern(pattern).
		File(file).
		Detail("scanned", result.Scanned).
		Detail("matched", result.Matched).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matches := result.Matches
	if matches == nil {
		matches = []search.Match{}
	}
	return jsonResult(map[string]any{
		"scanned": result.Scanned,
		"matched": result.Matched,
		"matches": matches,
	})
}

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the MCP request arguments.
//
// JSON booleans decode as Go bool values, so a type assertion suffices.
// Returns the default if the parameter is missing or not a boolean.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// jsonResult serialises v as pretty-printed JSON and wraps it in an MCP text
// result. LLMs parse structured output more reliably when it is formatted
// for readability.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Package log provides centralised audit logging for minigrep runs.
// Entries are stored in ~/.minigrep/log/minigrep-log.db and record the
// pattern, target file, and outcome of every search, across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:run", "search").
//		Pattern(pattern).
//		File(filename).
//		Detail("matched", result.Matched).
//		Write(err)
//
// The source parameter follows the format "{surface}:{command}": "search:run"
// for the CLI, "mcp:{tool}" for MCP tools.
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g. "search:run", "mcp:minigrep_search"
	Action  string // verb: search, serve, etc.
	Pattern string // input: the query pattern
	File    string // input: the file searched

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the run succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Pattern sets the query pattern for this run.
func (b *Builder) Pattern(pattern string) *Builder {
	b.entry.Pattern = pattern
	return b
}

// File sets the file this run searched. Leave unset for inline content.
func (b *Builder) File(file string) *Builder {
	b.entry.File = file
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for run-specific data that doesn't fit standard fields: match counts,
// flag combinations, line totals. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Package search implements the line-matching pipeline: pattern compilation,
// the per-line match predicate, and the emit decision with its two output
// modes (full line, capture-group dump).
//
// The pipeline is a single synchronous pass: lines are consumed in input
// order, matched against one compiled pattern shared across the whole run,
// and written (or not) immediately. Output order always equals input order.
package search

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/ethanfaust/minigrep/internal/input"
)

// Options configures a search run. Built once per invocation and read-only
// thereafter.
type Options struct {
	// InvertMatch flips the match verdict before the emit decision, so
	// non-matching lines are the ones printed (-v flag).
	InvertMatch bool

	// DumpGroups selects the capture-group output format instead of the
	// full line (-g flag). See format.go for the join contract.
	DumpGroups bool

	// IgnoreCase compiles the pattern case-insensitively (-i flag).
	IgnoreCase bool

	// CountOnly suppresses per-line output and prints only the number of
	// lines that would have been emitted (-c flag).
	CountOnly bool

	// Terminator selects how the input is split into lines.
	Terminator input.Terminator

	// MaxLineLength is the maximum line length for scanning (0 = default 10MB).
	MaxLineLength int
}

// Match is a single emitted line.
type Match struct {
	// Text is what was (or would be) printed: the line itself, or the
	// comma-joined capture slots in group mode.
	Text string `json:"text"`

	// Groups holds the joined capture slots in group mode, nil otherwise.
	Groups []string `json:"groups,omitempty"`
}

// Result describes a completed run.
type Result struct {
	Scanned int     // lines read from the input
	Matched int     // lines emitted (after inversion and capture filtering)
	Matches []Match // emitted lines, in input order
}

// Compile builds the run's pattern. Called exactly once per invocation,
// before any line is processed.
func Compile(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	p := pattern
	if ignoreCase {
		p = "(?i)" + p
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("parsing pattern %q: %w", pattern, err)
	}
	return re, nil
}

// IsMatch reports whether re matches anywhere in line. Substring semantics:
// the line matches if the pattern finds at least one match, unless the
// pattern itself anchors with ^ or $.
func IsMatch(re *regexp.Regexp, line string) bool {
	return re.MatchString(line)
}

// Run searches r line by line for pattern and writes output to w.
//
// The context is checked between lines so a caller (the MCP server) can
// cancel a long scan; the CLI passes context.Background(). Errors from the
// line source (invalid text, oversized line) abort the run.
func Run(ctx context.Context, w io.Writer, r io.Reader, pattern string, opts Options) (Result, error) {
	var result Result

	re, err := Compile(pattern, opts.IgnoreCase)
	if err != nil {
		return result, err
	}

	src := input.New(r, input.Options{
		Terminator:    opts.Terminator,
		MaxLineLength: opts.MaxLineLength,
	})

	for src.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		line := src.Text()
		result.Scanned++

		// In group mode the capture extraction doubles as the match
		// verdict, so a matching line is only scanned once.
		var caps []string
		var matched bool
		if opts.DumpGroups {
			caps = re.FindStringSubmatch(line)
			matched = caps != nil
		} else {
			matched = IsMatch(re, line)
		}

		shouldWrite := matched
		if opts.InvertMatch {
			shouldWrite = !matched
		}
		if !shouldWrite {
			continue
		}

		m := Match{Text: line}
		if opts.DumpGroups {
			// Under inversion the emitted lines are the non-matching
			// ones, which have no captures to dump.
			if caps == nil {
				continue
			}
			slots := groupSlots(caps)
			m = Match{Text: joinGroups(slots), Groups: slots}
		}

		result.Matched++
		result.Matches = append(result.Matches, m)
		if !opts.CountOnly {
			fmt.Fprintln(w, m.Text)
		}
	}
	if err := src.Err(); err != nil {
		return result, fmt.Errorf("reading input: %w", err)
	}

	if opts.CountOnly {
		fmt.Fprintln(w, result.Matched)
	}
	return result, nil
}

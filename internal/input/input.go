// Package input provides the line source for a search run.
//
// The platform's implicit line-terminator and encoding behaviour is made an
// explicit configuration parameter here rather than hidden in the scanner:
// callers choose how lines are delimited and every line is validated as
// UTF-8 text before the matcher sees it.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultMaxLineLength caps scanned lines when the caller does not set a
// limit.
const DefaultMaxLineLength = 10 * 1024 * 1024 // 10MB

// ErrNotText is returned when the input cannot be decoded as UTF-8 text.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// Terminator selects how the byte stream is split into lines.
type Terminator int

const (
	// TermAuto splits on LF and strips an optional preceding CR, so both
	// Unix and Windows files read the same.
	TermAuto Terminator = iota

	// TermLF splits on LF only; a CR before the LF stays part of the line.
	TermLF
)

// Options configures a Source.
type Options struct {
	Terminator    Terminator
	MaxLineLength int // 0 = DefaultMaxLineLength
}

// Source produces lines from a reader, one Scan at a time. A line carries
// no terminator. Once Scan returns false, Err reports whether the stream
// ended cleanly.
type Source struct {
	scanner *bufio.Scanner
	line    string
	err     error
}

// New wraps r in a line source.
func New(r io.Reader, opts Options) *Source {
	max := opts.MaxLineLength
	if max <= 0 {
		max = DefaultMaxLineLength
	}
	s := bufio.NewScanner(r)
	// The scanner's cap is the larger of max and the initial buffer, so the
	// initial buffer must not exceed a small configured limit.
	initial := 64 * 1024
	if max < initial {
		initial = max
	}
	s.Buffer(make([]byte, initial), max)
	if opts.Terminator == TermLF {
		s.Split(scanLinesLF)
	}
	return &Source{scanner: s}
}

// Scan advances to the next line. Returns false at end of input or on the
// first error; the two cases are distinguished by Err.
func (s *Source) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return false
	}
	line := s.scanner.Text()
	if !utf8.ValidString(line) {
		s.err = fmt.Errorf("%w: invalid byte sequence", ErrNotText)
		return false
	}
	s.line = line
	return true
}

// Text returns the current line.
func (s *Source) Text() string {
	return s.line
}

// Err returns the first error encountered, or nil after a clean end of input.
func (s *Source) Err() error {
	return s.err
}

// scanLinesLF is bufio.ScanLines without the CR stripping.
func scanLinesLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Package source implements the Character Source: a byte stream with
// one-character lookahead, line/column tracking, and auto-close at EOF.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// EOF is the sentinel Next returns past the end of input.
const EOF = -1

// Source streams bytes, offering one character of pushback and the
// line/column of the last character returned by Next.
type Source struct {
	r    *bufio.Reader
	f    *os.File // nil for an in-memory source; nothing to close
	open bool

	pending    byte
	hasPending bool

	line, col    int
	afterNewline bool // true once '\n' has been returned; next real read starts a new line
}

// Open opens path and returns a ready Source. The caller does not need to
// Close it: the Source closes itself on the first EOF, matching the
// Character Source contract (spec section 4.1).
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Source{r: bufio.NewReader(f), f: f, open: true, line: 1, col: 0}, nil
}

// FromString wraps an in-memory program as a Source, for tests that
// scan a literal program instead of a file.
func FromString(contents string) *Source {
	return &Source{r: bufio.NewReader(strings.NewReader(contents)), open: true, line: 1, col: 0}
}

// Next returns the next character, or EOF. Line/column advance only on a
// fresh read from the stream, never on a read of the pushback slot.
func (s *Source) Next() int {
	if s.hasPending {
		s.hasPending = false
		return int(s.pending)
	}

	if !s.open {
		return EOF
	}

	ch, err := s.r.ReadByte()
	if err != nil {
		s.close()
		return EOF
	}

	if s.afterNewline {
		s.line++
		s.col = 0
		s.afterNewline = false
	}
	s.col++
	if ch == '\n' {
		s.afterNewline = true
	}
	return int(ch)
}

// PutBack returns ch to the one-slot pushback buffer. A second PutBack
// before the first is consumed violates the Character Source contract and
// panics rather than silently dropping a character.
func (s *Source) PutBack(ch int) {
	if s.hasPending {
		panic("source: PutBack called with a pending character already buffered")
	}
	s.pending = byte(ch)
	s.hasPending = true
}

// Line returns the line of the character last returned by Next (1-based).
func (s *Source) Line() int { return s.line }

// Column returns the column of the character last returned by Next (1-based).
func (s *Source) Column() int { return s.col }

// IsOpen reports whether the underlying stream is still open.
func (s *Source) IsOpen() bool { return s.open }

func (s *Source) close() {
	if s.f != nil && s.open {
		s.f.Close()
	}
	s.open = false
}

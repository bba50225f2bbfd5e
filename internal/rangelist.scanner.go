package internal

import (
	"fmt"
	"strings"
)

// Position represents a location in the input
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Scanner walks the input byte by byte with position tracking.
// Matching is exact: no implicit whitespace skipping.
type Scanner struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
}

// NewScanner creates a scanner over the given input
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// currentPosition returns the current position
func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// isAtEnd returns true if we've reached the end of the input
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// peek returns the current character without advancing
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// advance consumes and returns the current character
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// advanceN advances by n characters
func (s *Scanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}

// matchStr returns true if the remaining input starts with str
func (s *Scanner) matchStr(str string) bool {
	return strings.HasPrefix(s.source[s.pos:], str)
}

// mark captures scanner state so ordered-choice alternatives can backtrack
func (s *Scanner) mark() scannerMark {
	return scannerMark{pos: s.pos, line: s.line, column: s.column}
}

// reset restores the scanner to a previously captured mark
func (s *Scanner) reset(m scannerMark) {
	s.pos = m.pos
	s.line = m.line
	s.column = m.column
}

// scannerMark is a saved scanner state
type scannerMark struct {
	pos    int
	line   int
	column int
}

// Package source streams the characters of a Triangle source file while
// tracking line/column position, the way the original implementation's
// SourceFile iterator does.
package source

import "github.com/willvillegas/triangle-go/token"

// NUL is the sentinel rune returned once a Reader is exhausted.
const NUL = rune(0)

// Reader streams runes from an in-memory source buffer one at a time,
// tracking the (line, column) of the character last handed out. It is
// pull-based and single-threaded: no method suspends, and nothing reads
// ahead beyond the one character of lookahead the Scanner asks for.
type Reader struct {
	runes  []rune
	offset int

	line   int32
	column int
}

// New creates a Reader over the given source text. Lines are 1-indexed;
// columns are 1-indexed and reset to 1 after each '\n'.
func New(text string) *Reader {
	return &Reader{
		runes:  []rune(text),
		offset: 0,
		line:   1,
		column: 0,
	}
}

// Next consumes and returns the next rune in the source, along with the
// Position it was read at. Once the source is exhausted it returns NUL at
// the position just past the final character, repeatedly.
func (r *Reader) Next() (rune, token.Position) {
	if r.offset >= len(r.runes) {
		return NUL, token.Position{Line: r.line, Column: r.column + 1}
	}

	c := r.runes[r.offset]
	r.offset++

	if c == '\n' {
		r.column++
		pos := token.Position{Line: r.line, Column: r.column}
		r.line++
		r.column = 0
		return c, pos
	}

	r.column++
	return c, token.Position{Line: r.line, Column: r.column}
}

// AtEnd reports whether every character of the source has been consumed.
func (r *Reader) AtEnd() bool {
	return r.offset >= len(r.runes)
}

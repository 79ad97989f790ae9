package token

import (
	"strings"

	"arraylint/internal/source"
)

// Pos is a stable index into a Stream.
type Pos int

// NoPos marks an absent position.
const NoPos Pos = -1

// IsValid reports whether p points at a token.
func (p Pos) IsValid() bool { return p >= 0 }

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Line and Col are 1-based; Col is measured in rendered columns, so a tab
	// advances to the next tab stop when the stream was built with a tab width.
	Line uint32
	Col  uint32
	// Length is the rendered width of Text on its line, newline excluded.
	Length uint32
	// Partner is the matching token for paired kinds, see package doc.
	Partner Pos
}

// EndsLine reports whether the token ends with a newline.
func (t Token) EndsLine() bool {
	return strings.HasSuffix(t.Text, "\n")
}

// IsBlankLine reports whether the token is a whitespace token covering a
// whole line on its own.
func (t Token) IsBlankLine() bool {
	return t.Kind == Whitespace && t.Col == 1 && t.EndsLine()
}

package arraydecl

import "arraylint/internal/token"

// Literal locates one array literal in a stream.
type Literal struct {
	// Start is the token the visit began on: `[` or the `array` keyword.
	Start token.Pos
	Open  token.Pos
	Close token.Pos
}

// Long reports whether the literal uses the `array(...)` form.
func (l Literal) Long() bool { return l.Start != l.Open }

// IsEmpty reports whether only whitespace sits between opener and closer.
func (l Literal) IsEmpty(s *token.Stream) bool {
	return !s.NextNonWhitespace(l.Open+1, l.Close).IsValid()
}

// LiteralAt resolves the literal starting at p. ok is false when p does not
// start a literal or its pairing is missing.
func LiteralAt(s *token.Stream, p token.Pos) (lit Literal, ok bool) {
	switch s.Kind(p) {
	case token.OpenShortArray:
		closer := s.Partner(p)
		if !closer.IsValid() || closer <= p {
			return Literal{}, false
		}
		return Literal{Start: p, Open: p, Close: closer}, true
	case token.KwArray:
		open := s.Partner(p)
		if !open.IsValid() {
			return Literal{}, false
		}
		closer := s.Partner(open)
		if !closer.IsValid() || closer <= open {
			return Literal{}, false
		}
		return Literal{Start: p, Open: open, Close: closer}, true
	}
	return Literal{}, false
}

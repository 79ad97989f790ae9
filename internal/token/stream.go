package token

import "strings"

// Stream is a read-only, randomly indexable token sequence. Positions are
// stable for the lifetime of the stream.
type Stream struct {
	toks []Token
	eol  string
}

// NewStream wraps toks. The slice is owned by the stream afterwards.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks, eol: "\n"}
}

// Len returns the number of tokens, EOF included.
func (s *Stream) Len() int { return len(s.toks) }

// EOL returns the line terminator used by the stream.
func (s *Stream) EOL() string { return s.eol }

// Valid reports whether p indexes a token of the stream.
func (s *Stream) Valid(p Pos) bool {
	return p >= 0 && int(p) < len(s.toks)
}

// At returns the token at p. It panics on invalid positions.
func (s *Stream) At(p Pos) *Token {
	return &s.toks[p]
}

// Kind returns the kind at p, or Invalid when p is out of range.
func (s *Stream) Kind(p Pos) Kind {
	if !s.Valid(p) {
		return Invalid
	}
	return s.toks[p].Kind
}

// Partner returns the partner of p, or NoPos.
func (s *Stream) Partner(p Pos) Pos {
	if !s.Valid(p) {
		return NoPos
	}
	partner := s.toks[p].Partner
	if !s.Valid(partner) {
		return NoPos
	}
	return partner
}

func (s *Stream) clampEnd(end Pos) Pos {
	if end < 0 || int(end) > len(s.toks) {
		return Pos(len(s.toks))
	}
	return end
}

// NextNonWhitespace returns the first position in [from, end) that is not
// whitespace. end < 0 means the end of the stream.
func (s *Stream) NextNonWhitespace(from, end Pos) Pos {
	end = s.clampEnd(end)
	for p := max(from, 0); p < end; p++ {
		if s.toks[p].Kind != Whitespace {
			return p
		}
	}
	return NoPos
}

// NextNonEmpty is NextNonWhitespace that also skips comments.
func (s *Stream) NextNonEmpty(from, end Pos) Pos {
	end = s.clampEnd(end)
	for p := max(from, 0); p < end; p++ {
		if !s.toks[p].Kind.IsEmpty() {
			return p
		}
	}
	return NoPos
}

// PrevNonWhitespace returns the last position in [stop, from] that is not
// whitespace. stop < 0 means the start of the stream.
func (s *Stream) PrevNonWhitespace(from, stop Pos) Pos {
	if int(from) >= len(s.toks) {
		from = Pos(len(s.toks) - 1)
	}
	for p := from; p >= max(stop, 0); p-- {
		if s.toks[p].Kind != Whitespace {
			return p
		}
	}
	return NoPos
}

// PrevNonEmpty is PrevNonWhitespace that also skips comments.
func (s *Stream) PrevNonEmpty(from, stop Pos) Pos {
	if int(from) >= len(s.toks) {
		from = Pos(len(s.toks) - 1)
	}
	for p := from; p >= max(stop, 0); p-- {
		if !s.toks[p].Kind.IsEmpty() {
			return p
		}
	}
	return NoPos
}

// PrevOf returns the last position before from whose kind is in kinds.
func (s *Stream) PrevOf(kinds KindSet, from Pos) Pos {
	if int(from) >= len(s.toks) {
		from = Pos(len(s.toks) - 1)
	}
	for p := from; p >= 0; p-- {
		if kinds.Has(s.toks[p].Kind) {
			return p
		}
	}
	return NoPos
}

// FirstOnLine returns the earliest token on the line of p, at or before p,
// whose kind is in kinds.
func (s *Stream) FirstOnLine(kinds KindSet, p Pos) Pos {
	if !s.Valid(p) {
		return NoPos
	}
	line := s.toks[p].Line
	found := NoPos
	for i := p; i >= 0 && s.toks[i].Line == line; i-- {
		if kinds.Has(s.toks[i].Kind) {
			found = i
		}
	}
	return found
}

// FirstNonWhitespaceOnLine returns the earliest non-whitespace token on the
// line of p, at or before p.
func (s *Stream) FirstNonWhitespaceOnLine(p Pos) Pos {
	if !s.Valid(p) {
		return NoPos
	}
	line := s.toks[p].Line
	found := NoPos
	for i := p; i >= 0 && s.toks[i].Line == line; i-- {
		if s.toks[i].Kind != Whitespace {
			found = i
		}
	}
	return found
}

var statementBoundaries = NewKindSet(
	Comma, DoubleArrow, Semicolon, OpenTag, CloseTag,
	OpenParen, OpenBracket, OpenShortArray, OpenBrace, CloseBrace,
)

// StartOfStatement walks back from p to the first token of the expression
// that ends at p. Bracketed groups are stepped over as a whole.
func (s *Stream) StartOfStatement(p Pos) Pos {
	if !s.Valid(p) {
		return NoPos
	}
	last := p
	for i := p; i >= 0; i-- {
		t := &s.toks[i]
		if t.Kind.IsEmpty() {
			continue
		}
		if t.Kind.IsCloser() && t.Kind != CloseBrace {
			if opener := s.Partner(i); opener.IsValid() && opener < i {
				i = opener
				last = opener
				continue
			}
		}
		if statementBoundaries.Has(t.Kind) {
			break
		}
		last = i
	}
	return last
}

// TextBetween concatenates the text of tokens in [from, to].
func (s *Stream) TextBetween(from, to Pos) string {
	var b strings.Builder
	for p := max(from, 0); p <= to && int(p) < len(s.toks); p++ {
		b.WriteString(s.toks[p].Text)
	}
	return b.String()
}

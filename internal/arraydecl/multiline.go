package arraydecl

import (
	"strings"

	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/token"
)

// alignment holds the columns a multi-line literal is laid out on. Indents
// are 0-based counts of leading columns; cols are 1-based.
type alignment struct {
	closerIndent int
	indent       int
	keyCol       int
	arrowCol     int
	valueCol     int
}

func (sn *Sniff) align(s *token.Stream, anchor token.Pos, entries []Entry) alignment {
	anchorCol := int(s.At(anchor).Col)
	a := alignment{
		closerIndent: anchorCol - 1,
		indent:       anchorCol - 1 + sn.tabWidth,
	}
	a.keyCol = a.indent + 1
	maxKey := 0
	for _, e := range entries {
		if e.Kind == EntryKeyValue {
			maxKey = max(maxKey, e.KeyLen())
		}
	}
	a.arrowCol = a.keyCol + maxKey + 1
	a.valueCol = a.arrowCol + len("=>") + 1
	return a
}

// checkMultiLine validates a literal spanning several lines.
func (sn *Sniff) checkMultiLine(s *token.Stream, v *violations, lit Literal, layout Layout) {
	checkOpenerPlacement(s, v, lit)
	checkCloserPlacement(s, v, lit)

	a := sn.align(s, layout.Anchor, nil)
	sn.checkCloserAlignment(s, v, lit, a)
	checkBlankLines(s, v, lit)

	entries, serr := Extract(s, lit)
	if serr != nil {
		if serr.Reportable() {
			v.error(serr.At, serr.Code)
		}
		return
	}
	if len(entries) == 0 {
		return
	}
	a = sn.align(s, layout.Anchor, entries)
	if keyed(entries) {
		sn.checkKeyed(s, v, lit, entries, a)
		return
	}
	sn.checkBare(s, v, lit, entries, a)
}

// checkOpenerPlacement wants `foo([` rather than `foo(` newline `[`.
func checkOpenerPlacement(s *token.Stream, v *violations, lit Literal) {
	if lit.Long() {
		return
	}
	prev := s.PrevNonWhitespace(lit.Start-1, -1)
	if s.Kind(prev) != token.OpenParen || s.At(prev).Line == s.At(lit.Start).Line {
		return
	}
	v.fixable(lit.Start, diag.ArrShortArrayOpenWrongLine, func(cs *fix.Changeset) {
		for p := prev + 1; p < lit.Start; p++ {
			cs.Delete(p)
		}
	})
}

// checkCloserPlacement wants `])` rather than `]` newline `)`.
func checkCloserPlacement(s *token.Stream, v *violations, lit Literal) {
	next := s.NextNonWhitespace(lit.Close+1, -1)
	if s.Kind(next) != token.CloseParen || next == lit.Close+1 {
		return
	}
	v.fixable(next, diag.ArrCloseBracketAfterArrayBracket, func(cs *fix.Changeset) {
		for p := lit.Close + 1; p < next; p++ {
			cs.Delete(p)
		}
	})
}

func (sn *Sniff) checkCloserAlignment(s *token.Stream, v *violations, lit Literal, a alignment) {
	last := s.PrevNonWhitespace(lit.Close-1, lit.Open)
	if last.IsValid() && s.At(last).Line == s.At(lit.Close).Line {
		v.fixable(lit.Close, diag.ArrCloseArrayBraceNewLine, func(cs *fix.Changeset) {
			if ws := lit.Close - 1; s.Kind(ws) == token.Whitespace {
				cs.Delete(ws)
			}
			cs.NewlineBefore(lit.Close)
		})
		return
	}

	found := int(s.At(lit.Close).Col) - 1
	if found == a.closerIndent {
		return
	}
	v.fixable(lit.Close, diag.ArrCloseArrayBraceNotAligned, func(cs *fix.Changeset) {
		reindent(s, cs, lit.Close, a.closerIndent)
	}, sn.indentUnits(a.closerIndent), sn.indentUnitName(a.closerIndent), sn.indentUnits(found))
}

// checkBare validates a literal of bare values.
func (sn *Sniff) checkBare(s *token.Stream, v *violations, lit Literal, entries []Entry, a alignment) {
	last := entries[len(entries)-1]
	if !last.Comma.IsValid() {
		if end := s.PrevNonEmpty(lit.Close-1, last.Value); end.IsValid() {
			v.fixable(end, diag.ArrNoCommaAfterLast, func(cs *fix.Changeset) {
				cs.InsertAfter(end, ",")
			})
		}
	}

	openLine := s.At(lit.Open).Line
	for _, e := range entries {
		val := e.Value
		if s.FirstNonWhitespaceOnLine(val) != val {
			code := diag.ArrValueNoNewline
			if s.At(val).Line == openLine {
				code = diag.ArrFirstValueNoNewline
			}
			if code != diag.ArrFirstValueNoNewline || len(entries) > 1 {
				v.fixable(val, code, func(cs *fix.Changeset) {
					breakBefore(s, cs, val)
				})
			}
		} else if found := int(s.At(val).Col) - 1; found != a.indent {
			v.fixable(val, diag.ArrValueNotAligned, func(cs *fix.Changeset) {
				reindent(s, cs, val, a.indent)
			}, sn.indentUnits(a.indent), sn.indentUnitName(a.indent), sn.indentUnits(found))
		}

		if e.Comma.IsValid() {
			checkSpaceBeforeComma(s, v, e.Comma)
		}
	}
}

// checkKeyed validates a literal of key/value pairs. Each entry stops at
// its first placement violation; the value and comma checks run together.
func (sn *Sniff) checkKeyed(s *token.Stream, v *violations, lit Literal, entries []Entry, a alignment) {
	openLine := s.At(lit.Open).Line
	for _, e := range entries {
		key := e.KeyStart
		if s.FirstNonWhitespaceOnLine(key) != key {
			code := diag.ArrIndexNoNewline
			if s.At(key).Line == openLine {
				code = diag.ArrFirstIndexNoNewline
			}
			v.fixable(key, code, func(cs *fix.Changeset) {
				breakBefore(s, cs, key)
			})
			continue
		}

		keyTok := s.At(key)
		if found := int(keyTok.Col) - 1; found != a.indent {
			v.fixable(key, diag.ArrKeyNotAligned, func(cs *fix.Changeset) {
				reindent(s, cs, key, a.indent)
			}, sn.indentUnits(a.indent), sn.indentUnitName(a.indent), sn.indentUnits(found))
			continue
		}

		if keyTok.Line == s.At(e.KeyEnd).Line && sn.checkArrowAlignment(s, v, e, a) {
			continue
		}
		if e.Value.IsValid() {
			checkValueAfterArrow(s, v, e, a)
		}
		sn.checkEntryComma(s, v, lit, e)
	}
}

// checkArrowAlignment puts every `=>` of the literal on one column. It
// reports whether a violation was raised.
func (sn *Sniff) checkArrowAlignment(s *token.Stream, v *violations, e Entry, a alignment) bool {
	keyEnd := int(s.At(e.KeyStart).Col) + e.KeyLen()
	expected := a.arrowCol - keyEnd
	arrow := s.At(e.Arrow)

	if arrow.Line != s.At(e.KeyEnd).Line {
		v.fixable(e.Arrow, diag.ArrDoubleArrowNotAligned, func(cs *fix.Changeset) {
			if collapse(s, cs, e.KeyEnd, e.Arrow) {
				cs.InsertBefore(e.Arrow, spaces(expected))
			}
		}, expected, pluralize(unitSpace, float64(expected)), "newline")
		return true
	}

	found := int(arrow.Col) - keyEnd
	if found == expected {
		return false
	}
	v.fixable(e.Arrow, diag.ArrDoubleArrowNotAligned, func(cs *fix.Changeset) {
		if ws := e.Arrow - 1; s.Kind(ws) == token.Whitespace {
			cs.Replace(ws, spaces(expected))
			return
		}
		cs.InsertBefore(e.Arrow, spaces(expected))
	}, expected, pluralize(unitSpace, float64(expected)), found)
	return true
}

// checkValueAfterArrow wants exactly the value column after `=>`.
func checkValueAfterArrow(s *token.Stream, v *violations, e Entry, a alignment) {
	arrow := s.At(e.Arrow)
	expected := a.valueCol - int(arrow.Col+arrow.Length)
	if expected < 1 {
		expected = 1
	}
	val := s.At(e.Value)

	if val.Line != arrow.Line {
		v.fixable(e.Value, diag.ArrValueNotAligned, func(cs *fix.Changeset) {
			if collapse(s, cs, e.Arrow, e.Value) {
				cs.InsertBefore(e.Value, spaces(expected))
			}
		}, expected, pluralize(unitSpace, float64(expected)), "newline")
		return
	}
	if s.NextNonWhitespace(e.Arrow+1, -1) != e.Value {
		// a comment sits between; leave the line alone
		return
	}

	found := int(val.Col) - int(arrow.Col+arrow.Length)
	if found == expected {
		return
	}
	v.fixable(e.Value, diag.ArrValueNotAligned, func(cs *fix.Changeset) {
		if ws := e.Value - 1; s.Kind(ws) == token.Whitespace {
			cs.Replace(ws, spaces(expected))
			return
		}
		cs.InsertBefore(e.Value, spaces(expected))
	}, expected, pluralize(unitSpace, float64(expected)), found)
}

// checkEntryComma wants every entry to end in a comma on the line its
// value ends on.
func (sn *Sniff) checkEntryComma(s *token.Stream, v *violations, lit Literal, e Entry) {
	if !e.Value.IsValid() {
		return
	}
	end := lit.Close
	if e.Comma.IsValid() {
		end = e.Comma
	}
	last := s.PrevNonEmpty(end-1, e.Value)
	if !last.IsValid() {
		return
	}

	if !e.Comma.IsValid() {
		v.fixable(e.Value, diag.ArrNoComma, func(cs *fix.Changeset) {
			cs.InsertAfter(last, ",")
		})
		return
	}
	if s.At(e.Comma).Line != s.At(last).Line {
		v.fixable(e.Value, diag.ArrNoComma, func(cs *fix.Changeset) {
			if !collapse(s, cs, last, e.Comma) {
				moveComma(s, cs, last, e.Comma)
			}
		})
		return
	}
	checkSpaceBeforeComma(s, v, e.Comma)
}

// checkSpaceBeforeComma wants the comma glued to what precedes it. A comma
// pushed to the next line by a line comment is moved in front of the
// comment.
func checkSpaceBeforeComma(s *token.Stream, v *violations, comma token.Pos) {
	if s.Kind(comma-1) != token.Whitespace {
		return
	}
	prev := s.PrevNonWhitespace(comma-1, -1)
	if !prev.IsValid() {
		return
	}
	var found any = s.At(comma - 1).Length
	if crossesLine(s, prev, comma) {
		found = "newline"
	}
	v.fixable(comma, diag.ArrSpaceBeforeComma, func(cs *fix.Changeset) {
		if endsInLineComment(s, prev) {
			if end := s.PrevNonEmpty(prev-1, -1); end.IsValid() {
				moveComma(s, cs, end, comma)
			}
			return
		}
		for p := prev + 1; p < comma; p++ {
			cs.Delete(p)
		}
	}, s.At(prev).Text, found)
}

// crossesLine reports whether a line ends between from and to.
func crossesLine(s *token.Stream, from, to token.Pos) bool {
	for p := from; p < to; p++ {
		if s.At(p).EndsLine() {
			return true
		}
	}
	return false
}

// moveComma puts the comma right after end and drops its old position
// together with the indentation before it. A line left holding only the
// comma goes away entirely.
func moveComma(s *token.Stream, cs *fix.Changeset, end, comma token.Pos) {
	cs.InsertAfter(end, ",")
	first := comma
	for p := comma - 1; p > end && s.Kind(p) == token.Whitespace && !s.At(p).EndsLine(); p-- {
		first = p
	}
	for p := first; p < comma; p++ {
		cs.Delete(p)
	}
	cs.Delete(comma)
	if s.FirstNonWhitespaceOnLine(comma) == comma {
		if next := comma + 1; s.Kind(next) == token.Whitespace && s.At(next).EndsLine() {
			cs.Delete(next)
		}
	}
}

// reindent gives the token at p, first on its line, exactly indent leading
// columns.
func reindent(s *token.Stream, cs *fix.Changeset, p token.Pos, indent int) {
	ws := p - 1
	if s.Kind(ws) == token.Whitespace && !s.At(ws).EndsLine() {
		cs.Replace(ws, spaces(indent))
		return
	}
	cs.InsertBefore(p, spaces(indent))
}

// breakBefore moves the token at p to a line of its own.
func breakBefore(s *token.Stream, cs *fix.Changeset, p token.Pos) {
	if ws := p - 1; s.Kind(ws) == token.Whitespace && !s.At(ws).EndsLine() {
		cs.Delete(ws)
	}
	cs.NewlineBefore(p)
}

// collapse deletes the whitespace between from and to so that they end up
// on one line. It records nothing and reports false when anything other
// than whitespace sits between them.
func collapse(s *token.Stream, cs *fix.Changeset, from, to token.Pos) bool {
	for p := from + 1; p < to; p++ {
		if s.Kind(p) != token.Whitespace {
			return false
		}
	}
	if endsInLineComment(s, from) {
		return false
	}
	for p := from + 1; p < to; p++ {
		cs.Delete(p)
	}
	return true
}

func endsInLineComment(s *token.Stream, p token.Pos) bool {
	if s.Kind(p) != token.Comment {
		return false
	}
	text := s.At(p).Text
	return strings.HasPrefix(text, "//") || strings.HasPrefix(text, "#")
}

package arraydecl

import (
	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/token"
)

// checkSingleLine validates a literal whose opener and closer share a line.
func (sn *Sniff) checkSingleLine(s *token.Stream, v *violations, lit Literal) {
	var commas []token.Pos
	ok := eachTopLevel(s, lit.Open+1, lit.Close, func(p token.Pos) {
		if s.Kind(p) != token.Comma {
			return
		}
		if !s.NextNonWhitespace(p+1, lit.Close).IsValid() {
			v.fixable(p, diag.ArrCommaAfterLast, func(cs *fix.Changeset) {
				cs.Delete(p)
			})
			return
		}
		commas = append(commas, p)
	})
	if !ok {
		return
	}

	if len(commas) > 0 && !insideCall(s, lit) {
		open, closer := s.At(lit.Open), s.At(lit.Close)
		body := open.Span
		body.Start, body.End = open.Span.End, closer.Span.Start
		v.fixableWith(lit.Start, diag.ArrSingleLineNotAllowed,
			fix.WrapWith(diag.ArrSingleLineNotAllowed.Name(), body, s.EOL(), s.EOL(),
				fix.WithApplicability(diag.FixApplicabilityAlwaysSafe),
				fix.WithKind(diag.FixKindQuickFix),
			),
		)
		return
	}

	entries, serr := Extract(s, lit)
	if serr != nil {
		if serr.Reportable() {
			v.error(serr.At, serr.Code)
		}
		return
	}
	for _, e := range entries {
		if e.Kind == EntryKeyValue {
			checkArrowSpacing(s, v, e.Arrow)
		}
	}
	for _, c := range commas {
		checkCommaSpacing(s, v, c)
	}
}

// insideCall reports whether the literal sits inside parentheses opened
// earlier on the same line. Balanced groups before the literal are stepped
// over so that `foo(bar(), [1, 2])` finds the call's own parenthesis.
func insideCall(s *token.Stream, lit Literal) bool {
	for p := lit.Start - 1; p >= 0; p-- {
		switch k := s.Kind(p); {
		case k == token.Semicolon || k == token.OpenBrace:
			return false
		case k == token.OpenParen:
			return s.At(p).Line == s.At(lit.Start).Line
		case k.IsCloser():
			opener := s.Partner(p)
			if !opener.IsValid() || opener >= p {
				return false
			}
			p = opener
		}
	}
	return false
}

func checkArrowSpacing(s *token.Stream, v *violations, arrow token.Pos) {
	before := arrow - 1
	if s.Kind(before) != token.Whitespace {
		v.fixable(arrow, diag.ArrNoSpaceBeforeDoubleArrow, func(cs *fix.Changeset) {
			cs.InsertBefore(arrow, " ")
		}, s.At(before).Text)
	} else if n := s.At(before).Length; n != 1 {
		v.fixable(arrow, diag.ArrSpaceBeforeDoubleArrow, func(cs *fix.Changeset) {
			cs.Replace(before, " ")
		}, s.At(before-1).Text, n)
	}

	after := arrow + 1
	if s.Kind(after) != token.Whitespace {
		v.fixable(arrow, diag.ArrNoSpaceAfterDoubleArrow, func(cs *fix.Changeset) {
			cs.InsertAfter(arrow, " ")
		}, s.At(after).Text)
	} else if n := s.At(after).Length; n != 1 {
		v.fixable(arrow, diag.ArrSpaceAfterDoubleArrow, func(cs *fix.Changeset) {
			cs.Replace(after, " ")
		}, s.At(after+1).Text, n)
	}
}

func checkCommaSpacing(s *token.Stream, v *violations, comma token.Pos) {
	after := comma + 1
	if s.Kind(after) != token.Whitespace {
		v.fixable(comma, diag.ArrNoSpaceAfterComma, func(cs *fix.Changeset) {
			cs.InsertAfter(comma, " ")
		}, s.At(after).Text)
	} else if n := s.At(after).Length; n != 1 {
		v.fixable(comma, diag.ArrSpaceAfterComma, func(cs *fix.Changeset) {
			cs.Replace(after, " ")
		}, s.At(after+1).Text, n)
	}

	before := comma - 1
	if s.Kind(before) == token.Whitespace {
		v.fixable(comma, diag.ArrSpaceBeforeComma, func(cs *fix.Changeset) {
			cs.Delete(before)
		}, s.At(before-1).Text, s.At(before).Length)
	}
}

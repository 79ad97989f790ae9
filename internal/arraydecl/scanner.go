package arraydecl

import "arraylint/internal/token"

// isNestedOpener reports whether k starts a construct whose interior belongs
// to someone else: calls, index accesses, nested literals, blocks, closures.
func isNestedOpener(k token.Kind) bool {
	switch k {
	case token.OpenParen, token.OpenBracket, token.OpenShortArray, token.OpenBrace,
		token.KwArray, token.Closure, token.KwFn:
		return true
	}
	return false
}

// SkipNested returns the last token of the construct opened at start. For
// tokens that open nothing it returns start. ok is false when the stream
// carries no pairing for the construct; the literal must then be left alone.
func SkipNested(s *token.Stream, start token.Pos) (end token.Pos, ok bool) {
	switch s.Kind(start) {
	case token.OpenParen, token.OpenBracket, token.OpenShortArray, token.OpenBrace,
		token.Closure, token.KwFn:
		end = s.Partner(start)
	case token.KwArray:
		open := s.Partner(start)
		if !open.IsValid() {
			return token.NoPos, false
		}
		end = s.Partner(open)
	default:
		return start, true
	}
	if !end.IsValid() || end <= start {
		return token.NoPos, false
	}
	return end, true
}

// eachTopLevel calls fn for every token in [from, to) that does not sit
// inside a nested construct. Openers are passed to fn, then their body is
// skipped. It reports false when a construct has no known end.
func eachTopLevel(s *token.Stream, from, to token.Pos, fn func(p token.Pos)) bool {
	for p := from; p < to; p++ {
		fn(p)
		if !isNestedOpener(s.Kind(p)) {
			continue
		}
		end, ok := SkipNested(s, p)
		if !ok || end >= to {
			return false
		}
		p = end
	}
	return true
}

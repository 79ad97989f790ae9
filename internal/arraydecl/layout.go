package arraydecl

import "arraylint/internal/token"

// LayoutKind is the shape of a literal.
type LayoutKind uint8

const (
	LayoutEmpty LayoutKind = iota
	LayoutSingleLine
	LayoutMultiLine
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutEmpty:
		return "empty"
	case LayoutSingleLine:
		return "single-line"
	case LayoutMultiLine:
		return "multi-line"
	}
	return "unknown"
}

// AnchorContext names what precedes a multi-line literal. The context picks
// the token whose column every line of the literal is aligned against.
type AnchorContext uint8

const (
	// ContextUnknown anchors the literal on its own opening token.
	ContextUnknown AnchorContext = iota
	// ContextAssignment follows `=`, a compound assignment, `(` or return.
	ContextAssignment
	// ContextSeparator is the value side of `key =>`.
	ContextSeparator
	// ContextNested follows a comment or another literal's opener.
	ContextNested
	// ContextComma follows a comma.
	ContextComma
)

func (c AnchorContext) String() string {
	switch c {
	case ContextAssignment:
		return "assignment"
	case ContextSeparator:
		return "separator"
	case ContextNested:
		return "nested"
	case ContextComma:
		return "comma"
	}
	return "unknown"
}

// Layout is the classification of one literal.
type Layout struct {
	Kind    LayoutKind
	Context AnchorContext
	// Anchor is set for multi-line literals only.
	Anchor token.Pos
}

var statementStarters = token.NewKindSet(
	token.Variable, token.KwVar, token.KwPublic, token.KwPrivate, token.KwProtected,
	token.ArrayCast, token.UnsetCast, token.ObjectCast, token.KwStatic, token.KwConst,
	token.KwReturn, token.ObjectOperator,
)

var commaStarters = token.NewKindSet(
	token.Variable, token.KwVar, token.KwPublic, token.KwPrivate, token.KwProtected,
	token.ArrayCast, token.UnsetCast, token.ObjectCast, token.KwStatic, token.KwConst,
	token.KwReturn, token.ObjectOperator,
	token.CloseShortArray, token.ConstString,
)

// Classify decides the layout of lit and, for multi-line literals, its
// anchor.
func Classify(s *token.Stream, lit Literal) Layout {
	if lit.IsEmpty(s) {
		return Layout{Kind: LayoutEmpty, Anchor: token.NoPos}
	}
	if s.At(lit.Open).Line == s.At(lit.Close).Line {
		return Layout{Kind: LayoutSingleLine, Anchor: token.NoPos}
	}
	ctx, anchor := ResolveAnchor(s, lit)
	return Layout{Kind: LayoutMultiLine, Context: ctx, Anchor: anchor}
}

// ResolveAnchor finds the token a multi-line literal is indented from.
func ResolveAnchor(s *token.Stream, lit Literal) (AnchorContext, token.Pos) {
	prev := s.PrevNonWhitespace(lit.Start-1, -1)
	if !prev.IsValid() {
		return ContextUnknown, lit.Start
	}
	switch s.Kind(prev) {
	case token.Equal, token.AssignOp, token.OpenParen, token.KwReturn:
		return ContextAssignment, firstOr(s, statementStarters, prev)
	case token.DoubleArrow:
		if key := s.PrevNonWhitespace(prev-1, -1); key.IsValid() {
			return ContextSeparator, key
		}
		return ContextSeparator, lit.Start
	case token.Comment, token.DocComment, token.OpenShortArray:
		return ContextNested, lit.Start
	case token.Comma:
		return ContextComma, firstOr(s, commaStarters, prev)
	}
	return ContextUnknown, lit.Start
}

func firstOr(s *token.Stream, kinds token.KindSet, p token.Pos) token.Pos {
	if first := s.FirstOnLine(kinds, p); first.IsValid() {
		return first
	}
	return p
}

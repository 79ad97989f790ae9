package lexer

import (
	"arraylint/internal/diag"
	"arraylint/internal/token"
)

var casts = map[string]token.Kind{
	"array":   token.ArrayCast,
	"object":  token.ObjectCast,
	"unset":   token.UnsetCast,
	"int":     token.Cast,
	"integer": token.Cast,
	"bool":    token.Cast,
	"boolean": token.Cast,
	"float":   token.Cast,
	"double":  token.Cast,
	"real":    token.Cast,
	"string":  token.Cast,
	"binary":  token.Cast,
}

// scanParenOrCast emits a cast token for "(int)"-like groups and an
// OpenParen otherwise.
func (lx *Lexer) scanParenOrCast() {
	start := lx.cursor.Mark()
	rest := lx.cursor.Rest()
	i := 1
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	wordStart := i
	for i < len(rest) && ((rest[i] >= 'a' && rest[i] <= 'z') || (rest[i] >= 'A' && rest[i] <= 'Z')) {
		i++
	}
	word := lowerASCII(string(rest[wordStart:i]))
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	if kind, ok := casts[word]; ok && i < len(rest) && rest[i] == ')' {
		lx.cursor.BumpN(toU32(i + 1))
		lx.emit(kind, start)
		return
	}
	lx.cursor.Bump()
	lx.openBracket(lx.emit(token.OpenParen, start))
}

// scanOperatorOrPunct is greedy: 3-byte operators first, then 2, then 1.
func (lx *Lexer) scanOperatorOrPunct() {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('?', '?', '='), lx.try3('*', '*', '='),
		lx.try3('<', '<', '='), lx.try3('>', '>', '='):
		lx.emit(token.AssignOp, start)
		return
	case lx.try3('?', '-', '>'):
		lx.emit(token.ObjectOperator, start)
		return
	case lx.try3('=', '=', '='), lx.try3('!', '=', '='),
		lx.try3('<', '=', '>'), lx.try3('.', '.', '.'):
		lx.emit(token.Operator, start)
		return
	case lx.try2('=', '>'):
		lx.emit(token.DoubleArrow, start)
		return
	case lx.try2('-', '>'):
		lx.emit(token.ObjectOperator, start)
		return
	case lx.try2(':', ':'):
		lx.emit(token.DoubleColon, start)
		return
	case lx.try2('+', '='), lx.try2('-', '='), lx.try2('*', '='),
		lx.try2('/', '='), lx.try2('.', '='), lx.try2('%', '='),
		lx.try2('&', '='), lx.try2('|', '='), lx.try2('^', '='):
		lx.emit(token.AssignOp, start)
		return
	case lx.try2('=', '='), lx.try2('!', '='), lx.try2('<', '>'),
		lx.try2('<', '='), lx.try2('>', '='), lx.try2('&', '&'),
		lx.try2('|', '|'), lx.try2('?', '?'), lx.try2('+', '+'),
		lx.try2('-', '-'), lx.try2('*', '*'), lx.try2('<', '<'),
		lx.try2('>', '>'):
		lx.emit(token.Operator, start)
		return
	}

	ch := lx.cursor.Bump()
	switch ch {
	case ',':
		lx.emit(token.Comma, start)
	case ';':
		lx.emit(token.Semicolon, start)
	case '=':
		lx.emit(token.Equal, start)
	case '[':
		kind := token.OpenShortArray
		if lx.startsIndexAccess() {
			kind = token.OpenBracket
		}
		lx.openBracket(lx.emit(kind, start))
	case '{':
		lx.openBracket(lx.emit(token.OpenBrace, start))
	case ']', ')', '}':
		lx.closeBracket(ch, start)
	default:
		if ch < 0x20 || ch == 0x7f {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, string(rune(ch)))
			lx.emit(token.Invalid, start)
			return
		}
		lx.emit(token.Operator, start)
	}
}

// startsIndexAccess decides whether a '[' indexes the preceding expression
// rather than opening an array literal.
func (lx *Lexer) startsIndexAccess() bool {
	p := lx.prevSignificant()
	if !p.IsValid() {
		return false
	}
	switch lx.toks[p].Kind {
	case token.Variable, token.CloseBracket, token.CloseShortArray, token.CloseParen,
		token.Ident, token.ConstString, token.DoubleQuotedString:
		return true
	case token.CloseBrace:
		// ${'name'}[0] and $obj->{'name'}[0] index; a block end does not.
		opener := lx.toks[p].Partner
		if !opener.IsValid() {
			return false
		}
		before := lx.prevSignificantBefore(opener)
		if !before.IsValid() {
			return false
		}
		k := lx.toks[before].Kind
		return k == token.ObjectOperator || (k == token.Operator && lx.toks[before].Text == "$")
	}
	return false
}

func (lx *Lexer) prevSignificantBefore(p token.Pos) token.Pos {
	for i := p - 1; i >= 0; i-- {
		if !lx.toks[i].Kind.IsEmpty() {
			return i
		}
	}
	return token.NoPos
}

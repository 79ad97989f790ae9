package lexer

import (
	"arraylint/internal/diag"
	"arraylint/internal/token"
)

func (lx *Lexer) openBracket(p token.Pos) {
	lx.open = append(lx.open, p)
}

// closeBracket emits the closer matching ch and links it with its opener.
// Openers left unmatched in between are reported and dropped.
func (lx *Lexer) closeBracket(ch byte, start Mark) {
	match := -1
	for i := len(lx.open) - 1; i >= 0; i-- {
		if closerFor(lx.toks[lx.open[i]].Kind) == ch {
			match = i
			break
		}
	}

	kind := token.CloseParen
	switch ch {
	case ']':
		kind = token.CloseBracket
		if match >= 0 && lx.toks[lx.open[match]].Kind == token.OpenShortArray {
			kind = token.CloseShortArray
		}
	case '}':
		kind = token.CloseBrace
	}
	p := lx.emit(kind, start)

	if match < 0 {
		lx.warnLex(diag.LexUnbalancedBracket, lx.toks[p].Span, lx.toks[p].Text)
		return
	}
	for _, q := range lx.open[match+1:] {
		lx.warnLex(diag.LexUnbalancedBracket, lx.toks[q].Span, lx.toks[q].Text)
	}
	opener := lx.open[match]
	lx.open = lx.open[:match]
	lx.toks[opener].Partner = p
	lx.toks[p].Partner = opener
}

func closerFor(k token.Kind) byte {
	switch k {
	case token.OpenParen:
		return ')'
	case token.OpenBracket, token.OpenShortArray:
		return ']'
	case token.OpenBrace:
		return '}'
	}
	return 0
}

func (lx *Lexer) reportUnclosed() {
	for _, p := range lx.open {
		lx.warnLex(diag.LexUnbalancedBracket, lx.toks[p].Span, lx.toks[p].Text)
	}
	lx.open = nil
}

// resolveKeywords refines 'array', 'function' and 'fn' once every bracket is
// paired:
//
//	array(...)      KwArray, Partner = its '('
//	function (...)  Closure, Partner = the body's '}'
//	fn (...) => e   KwFn, Partner = the last token of e
func (lx *Lexer) resolveKeywords() {
	for i := range lx.toks {
		tok := &lx.toks[i]
		if tok.Kind != token.Ident && tok.Kind != token.Keyword {
			continue
		}
		word := lowerASCII(tok.Text)
		if word != "array" && word != "function" && word != "fn" {
			continue
		}
		if prev := lx.prevSignificantBefore(token.Pos(i)); prev.IsValid() {
			switch lx.toks[prev].Kind {
			case token.ObjectOperator, token.DoubleColon:
				continue
			case token.Keyword:
				if lowerASCII(lx.toks[prev].Text) == "function" {
					continue
				}
			}
		}
		next := lx.nextSignificant(token.Pos(i) + 1)
		if word == "function" && lx.kindAt(next) == token.Operator && lx.toks[next].Text == "&" {
			next = lx.nextSignificant(next + 1)
		}
		if lx.kindAt(next) != token.OpenParen {
			continue
		}
		switch word {
		case "array":
			tok.Kind = token.KwArray
			tok.Partner = next
		case "function":
			tok.Kind = token.Closure
			tok.Partner = lx.closureEnd(next)
		case "fn":
			tok.Kind = token.KwFn
			tok.Partner = lx.arrowFnEnd(next)
		}
	}
}

func (lx *Lexer) kindAt(p token.Pos) token.Kind {
	if p < 0 || int(p) >= len(lx.toks) {
		return token.Invalid
	}
	return lx.toks[p].Kind
}

func (lx *Lexer) nextSignificant(from token.Pos) token.Pos {
	for i := from; int(i) < len(lx.toks); i++ {
		if !lx.toks[i].Kind.IsEmpty() {
			return i
		}
	}
	return token.NoPos
}

// closureEnd finds the '}' closing a closure body, given the '(' of its
// parameter list.
func (lx *Lexer) closureEnd(paren token.Pos) token.Pos {
	closeParen := lx.toks[paren].Partner
	if !closeParen.IsValid() {
		return token.NoPos
	}
	p := lx.nextSignificant(closeParen + 1)
	if lx.kindAt(p) == token.Keyword && lowerASCII(lx.toks[p].Text) == "use" {
		useParen := lx.nextSignificant(p + 1)
		if lx.kindAt(useParen) != token.OpenParen || !lx.toks[useParen].Partner.IsValid() {
			return token.NoPos
		}
		p = lx.toks[useParen].Partner + 1
	}
	for ; p.IsValid() && int(p) < len(lx.toks); p++ {
		switch lx.toks[p].Kind {
		case token.OpenBrace:
			return lx.toks[p].Partner
		case token.Semicolon, token.Comma, token.EOF, token.CloseParen,
			token.CloseBracket, token.CloseShortArray, token.CloseBrace:
			return token.NoPos
		}
	}
	return token.NoPos
}

// arrowFnEnd finds the last significant token of an arrow function body,
// given the '(' of its parameter list.
func (lx *Lexer) arrowFnEnd(paren token.Pos) token.Pos {
	closeParen := lx.toks[paren].Partner
	if !closeParen.IsValid() {
		return token.NoPos
	}
	arrow := token.NoPos
	for p := closeParen + 1; int(p) < len(lx.toks); p++ {
		k := lx.toks[p].Kind
		if k == token.DoubleArrow {
			arrow = p
			break
		}
		if k == token.Semicolon || k == token.Comma || k == token.EOF || k.IsOpener() || k.IsCloser() {
			return token.NoPos
		}
	}
	if !arrow.IsValid() {
		return token.NoPos
	}

	p := arrow + 1
	for ; int(p) < len(lx.toks); p++ {
		k := lx.toks[p].Kind
		if k.IsOpener() {
			partner := lx.toks[p].Partner
			if !partner.IsValid() {
				break
			}
			p = partner
			continue
		}
		if k == token.Comma || k == token.Semicolon || k == token.CloseTag || k == token.EOF || k.IsCloser() {
			break
		}
	}
	return lx.prevSignificantBefore(p)
}

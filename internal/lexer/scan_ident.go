package lexer

import (
	"arraylint/internal/token"
)

var keywords = map[string]token.Kind{
	"return":    token.KwReturn,
	"var":       token.KwVar,
	"public":    token.KwPublic,
	"private":   token.KwPrivate,
	"protected": token.KwProtected,
	"static":    token.KwStatic,
	"const":     token.KwConst,
}

// Reserved words that never start an index access. array, function and fn
// are refined later by resolveKeywords.
var reserved = map[string]struct{}{
	"abstract": {}, "and": {}, "as": {}, "break": {}, "case": {}, "catch": {},
	"class": {}, "clone": {}, "continue": {}, "declare": {}, "default": {},
	"do": {}, "echo": {}, "else": {}, "elseif": {}, "enum": {}, "extends": {},
	"final": {}, "finally": {}, "for": {}, "foreach": {}, "function": {},
	"global": {}, "goto": {}, "if": {}, "implements": {}, "include": {},
	"include_once": {}, "instanceof": {}, "insteadof": {}, "interface": {},
	"match": {}, "namespace": {}, "new": {}, "or": {}, "print": {},
	"readonly": {}, "require": {}, "require_once": {}, "switch": {},
	"throw": {}, "trait": {}, "try": {}, "use": {}, "while": {}, "xor": {},
	"yield": {},
}

func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b != '\\' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	word := lowerASCII(string(lx.file.Content[sp.Start:sp.End]))

	kind := token.Ident
	if k, ok := keywords[word]; ok {
		kind = k
	} else if _, ok := reserved[word]; ok {
		kind = token.Keyword
	}
	if kind != token.Ident && lx.afterMemberAccess() {
		// $obj->return, Foo::class
		kind = token.Ident
	}
	lx.emit(kind, start)
}

func (lx *Lexer) scanVariable() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // $
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.emit(token.Variable, start)
}

func (lx *Lexer) afterMemberAccess() bool {
	p := lx.prevSignificant()
	if !p.IsValid() {
		return false
	}
	k := lx.toks[p].Kind
	return k == token.ObjectOperator || k == token.DoubleColon
}

package lexer

import (
	"bytes"

	"arraylint/internal/diag"
	"arraylint/internal/token"
)

// scanWhitespace consumes blanks up to and including the first newline.
func (lx *Lexer) scanWhitespace() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isSpaceByte(b) {
			break
		}
		lx.cursor.Bump()
		if b == '\n' {
			break
		}
	}
	lx.emit(token.Whitespace, start)
}

// scanLineComment consumes '//' or '#' comments. The newline and a closing
// tag are left for the next token.
func (lx *Lexer) scanLineComment() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b0, b1, _ := lx.cursor.Peek2()
		if b0 == '\n' || (b0 == '\r' && b1 == '\n') || (b0 == '?' && b1 == '>') {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(token.Comment, start)
}

func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	kind := token.Comment
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '/' && b1 == '*' && b2 == '*' && isSpaceByte(lx.cursor.PeekAt(3)) {
		kind = token.DocComment
	}
	lx.cursor.BumpN(2)

	end := bytes.Index(lx.cursor.Rest(), []byte("*/"))
	if end < 0 {
		lx.cursor.BumpN(toU32(len(lx.cursor.Rest())))
		lx.errLex(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start))
	} else {
		lx.cursor.BumpN(toU32(end + 2))
	}
	lx.emit(kind, start)
}

package lexer

import "arraylint/internal/token"

// scanNumber accepts decimal, hex, octal and binary integers with '_'
// separators, and decimal floats with an optional exponent.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			lx.cursor.BumpN(2)
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.emit(token.Number, start)
			return
		case 'b', 'B', 'o', 'O':
			lx.cursor.BumpN(2)
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.emit(token.Number, start)
			return
		}
	}

	lx.scanDigits()
	if lx.isNumberAfterDot() {
		lx.cursor.Bump()
		lx.scanDigits()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			lx.scanDigits()
		} else {
			lx.cursor.Reset(m)
		}
	}
	lx.emit(token.Number, start)
}

func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) || (lx.cursor.Peek() == '_' && isDec(lx.cursor.PeekAt(1))) {
		lx.cursor.Bump()
	}
}

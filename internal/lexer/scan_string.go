package lexer

import (
	"bytes"

	"arraylint/internal/diag"
	"arraylint/internal/token"
)

func (lx *Lexer) scanSingleQuoted() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '
	for {
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start))
			break
		}
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '\'' {
			break
		}
	}
	lx.emit(token.ConstString, start)
}

// scanDoubleQuoted handles "..." and `...`. Strings that interpolate
// variables become DoubleQuotedString, the others ConstString.
func (lx *Lexer) scanDoubleQuoted(quote byte) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	interpolated := false
	for {
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start))
			break
		}
		b := lx.cursor.Bump()
		if b == quote {
			break
		}
		switch {
		case b == '\\':
			lx.cursor.Bump()
		case b == '$' && (isIdentStartByte(lx.cursor.Peek()) || lx.cursor.Peek() == '{'):
			interpolated = true
		case b == '{' && lx.cursor.Peek() == '$':
			interpolated = true
		}
	}
	kind := token.ConstString
	if interpolated || quote == '`' {
		kind = token.DoubleQuotedString
	}
	lx.emit(kind, start)
}

// atHeredoc reports whether the cursor is at "<<<" followed by a label.
func (lx *Lexer) atHeredoc() bool {
	_, _, ok := lx.heredocLabel()
	return ok
}

// heredocLabel parses the opener at the cursor without consuming it and
// returns the label and the opener length (up to, excluding, the newline).
func (lx *Lexer) heredocLabel() (label string, n int, ok bool) {
	rest := lx.cursor.Rest()
	if !bytes.HasPrefix(rest, []byte("<<<")) {
		return "", 0, false
	}
	i := 3
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	var quote byte
	if i < len(rest) && (rest[i] == '\'' || rest[i] == '"') {
		quote = rest[i]
		i++
	}
	if i >= len(rest) || !isIdentStartByte(rest[i]) {
		return "", 0, false
	}
	labelStart := i
	for i < len(rest) && isIdentContinueByte(rest[i]) {
		i++
	}
	label = string(rest[labelStart:i])
	if quote != 0 {
		if i >= len(rest) || rest[i] != quote {
			return "", 0, false
		}
		i++
	}
	if i < len(rest) && rest[i] == '\r' {
		i++
	}
	if i >= len(rest) || rest[i] != '\n' {
		return "", 0, false
	}
	return label, i, true
}

// scanHeredoc consumes a heredoc or nowdoc up to and including its closing
// label. The body may be indented.
func (lx *Lexer) scanHeredoc() {
	start := lx.cursor.Mark()
	label, n, _ := lx.heredocLabel()
	lx.cursor.BumpN(toU32(n + 1))

	for !lx.cursor.EOF() {
		rest := lx.cursor.Rest()
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i+1]
		}
		trimmed := bytes.TrimLeft(line, " \t")
		indent := len(line) - len(trimmed)
		if bytes.HasPrefix(trimmed, []byte(label)) &&
			(len(trimmed) == len(label) || !isIdentContinueByte(trimmed[len(label)])) {
			lx.cursor.BumpN(toU32(indent + len(label)))
			lx.emit(token.Heredoc, start)
			return
		}
		lx.cursor.BumpN(toU32(len(line)))
	}
	lx.errLex(diag.LexUnterminatedHeredoc, lx.cursor.SpanFrom(start), label)
	lx.emit(token.Heredoc, start)
}

package lexer

import (
	"bytes"
	"strings"

	"arraylint/internal/source"
	"arraylint/internal/token"
)

// Lexer turns a PHP source file into a flat token list. Whitespace and
// comments are real tokens; multi-line tokens are split per line.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	toks   []token.Token
	line   uint32
	col    uint32
	open   []token.Pos // unmatched openers
	inCode bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		toks:   make([]token.Token, 0, len(file.Content)/3+1),
		line:   1,
		col:    1,
		inCode: !hasOpenTag(file.Content),
	}
}

// Scan tokenizes file and wraps the result in a Stream.
func Scan(file *source.File, opts Options) *token.Stream {
	return token.NewStream(New(file, opts).Tokenize())
}

// Tokenize scans the whole file. The result always ends with an EOF token.
func (lx *Lexer) Tokenize() []token.Token {
	for !lx.cursor.EOF() {
		if lx.inCode {
			lx.scanToken()
		} else {
			lx.scanInlineHTML()
		}
	}
	lx.toks = append(lx.toks, token.Token{
		Kind:    token.EOF,
		Span:    lx.emptySpan(),
		Line:    lx.line,
		Col:     lx.col,
		Partner: token.NoPos,
	})
	lx.reportUnclosed()
	lx.resolveKeywords()
	return lx.toks
}

func (lx *Lexer) scanToken() {
	ch := lx.cursor.Peek()
	b1 := lx.cursor.PeekAt(1)

	switch {
	case isSpaceByte(ch):
		lx.scanWhitespace()
	case ch == '#' && b1 == '[':
		start := lx.cursor.Mark()
		lx.cursor.BumpN(2)
		lx.openBracket(lx.emit(token.OpenBracket, start))
	case ch == '#' || (ch == '/' && b1 == '/'):
		lx.scanLineComment()
	case ch == '/' && b1 == '*':
		lx.scanBlockComment()
	case ch == '$' && isIdentStartByte(b1):
		lx.scanVariable()
	case isIdentStartByte(ch) || (ch == '\\' && isIdentStartByte(b1)):
		lx.scanIdentOrKeyword()
	case isDec(ch) || lx.isNumberAfterDot():
		lx.scanNumber()
	case ch == '\'':
		lx.scanSingleQuoted()
	case ch == '"' || ch == '`':
		lx.scanDoubleQuoted(ch)
	case ch == '<' && lx.atHeredoc():
		lx.scanHeredoc()
	case ch == '?' && b1 == '>':
		start := lx.cursor.Mark()
		lx.cursor.BumpN(2)
		lx.emit(token.CloseTag, start)
		lx.inCode = false
	case ch == '(':
		lx.scanParenOrCast()
	default:
		lx.scanOperatorOrPunct()
	}
}

// scanInlineHTML consumes text up to the next open tag, then the tag itself.
func (lx *Lexer) scanInlineHTML() {
	start := lx.cursor.Mark()
	rest := lx.cursor.Rest()
	idx := indexOpenTag(rest)
	if idx < 0 {
		lx.cursor.BumpN(toU32(len(rest)))
		lx.emit(token.InlineHTML, start)
		return
	}
	if idx > 0 {
		lx.cursor.BumpN(toU32(idx))
		lx.emit(token.InlineHTML, start)
		start = lx.cursor.Mark()
	}
	lx.cursor.BumpN(toU32(openTagLen(lx.cursor.Rest())))
	lx.emit(token.OpenTag, start)
	lx.inCode = true
}

func hasOpenTag(content []byte) bool {
	return indexOpenTag(content) >= 0
}

// indexOpenTag finds "<?php" (any case) or "<?=".
func indexOpenTag(b []byte) int {
	off := 0
	for {
		i := bytes.Index(b[off:], []byte("<?"))
		if i < 0 {
			return -1
		}
		if openTagLen(b[off+i:]) > 0 {
			return off + i
		}
		off += i + 2
	}
}

func openTagLen(b []byte) int {
	switch {
	case bytes.HasPrefix(b, []byte("<?=")):
		return 3
	case len(b) >= 5 && strings.EqualFold(string(b[:5]), "<?php"):
		if len(b) == 5 || isSpaceByte(b[5]) {
			return 5
		}
	}
	return 0
}

// emit creates tokens for the bytes consumed since start, one per line, and
// returns the position of the first one.
func (lx *Lexer) emit(kind token.Kind, start Mark) token.Pos {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	first := token.Pos(len(lx.toks))
	off := sp.Start
	for text != "" {
		piece := text
		if i := strings.IndexByte(text, '\n'); i >= 0 && i < len(text)-1 {
			piece = text[:i+1]
		}
		text = text[len(piece):]
		n := toU32(len(piece))
		lx.push(kind, source.Span{File: sp.File, Start: off, End: off + n}, piece)
		off += n
	}
	return first
}

func (lx *Lexer) push(kind token.Kind, sp source.Span, text string) {
	tok := token.Token{
		Kind:    kind,
		Span:    sp,
		Text:    text,
		Line:    lx.line,
		Col:     lx.col,
		Partner: token.NoPos,
	}
	startCol := lx.col
	ended := false
	for _, r := range text {
		switch r {
		case '\n':
			tok.Length = lx.col - startCol
			lx.line++
			lx.col = 1
			ended = true
		case '\t':
			lx.col = lx.tabStop(lx.col)
		case '\r':
		default:
			lx.col++
		}
	}
	if !ended {
		tok.Length = lx.col - startCol
	}
	lx.toks = append(lx.toks, tok)
}

func (lx *Lexer) tabStop(col uint32) uint32 {
	if lx.opts.TabWidth <= 0 {
		return col + 1
	}
	tw := toU32(lx.opts.TabWidth)
	return ((col-1)/tw+1)*tw + 1
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// prevSignificant returns the last emitted token that is not whitespace or a
// comment, or NoPos.
func (lx *Lexer) prevSignificant() token.Pos {
	for i := len(lx.toks) - 1; i >= 0; i-- {
		if !lx.toks[i].Kind.IsEmpty() {
			return token.Pos(i)
		}
	}
	return token.NoPos
}

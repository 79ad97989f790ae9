package lexer

import (
	"arraylint/internal/diag"
	"arraylint/internal/source"
)

type Options struct {
	// Reporter may be nil; errors are then dropped but lexing continues.
	Reporter diag.Reporter
	// TabWidth is the tab stop used for column computation. Zero counts a tab
	// as a single column.
	TabWidth int
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, args ...any) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, code.Format(args...)).Emit()
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, args ...any) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(lx.opts.Reporter, code, sp, code.Format(args...)).Emit()
}

package arraydecl

import (
	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/token"
)

// violations adapts diag.Reporter to token positions and per-code templates.
type violations struct {
	stream *token.Stream
	out    diag.Reporter
}

func newViolations(s *token.Stream, out diag.Reporter) *violations {
	return &violations{stream: s, out: out}
}

// error reports a violation that carries no fix.
func (v *violations) error(p token.Pos, code diag.Code, args ...any) {
	diag.ReportError(v.out, code, v.stream.At(p).Span, code.Format(args...)).Emit()
}

// fixable reports a violation whose fix is built by edit. Every operation
// recorded on the changeset lands in one atomic fix.
func (v *violations) fixable(p token.Pos, code diag.Code, edit func(cs *fix.Changeset), args ...any) {
	cs := fix.NewChangeset(v.stream, code.Name())
	if edit != nil {
		edit(cs)
	}
	diag.ReportError(v.out, code, v.stream.At(p).Span, code.Format(args...)).
		WithFix(cs.Fix()).
		Emit()
}

// fixableWith reports a violation with a prebuilt fix.
func (v *violations) fixableWith(p token.Pos, code diag.Code, f *diag.Fix, args ...any) {
	diag.ReportError(v.out, code, v.stream.At(p).Span, code.Format(args...)).
		WithFix(f).
		Emit()
}

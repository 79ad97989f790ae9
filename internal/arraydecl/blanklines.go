package arraydecl

import (
	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/token"
)

// checkBlankLines reports whitespace-only lines between the opener and the
// closer. Lines inside nested constructs belong to those constructs.
func checkBlankLines(s *token.Stream, v *violations, lit Literal) {
	eachTopLevel(s, lit.Open+1, lit.Close, func(p token.Pos) {
		tok := s.At(p)
		if !tok.IsBlankLine() {
			return
		}
		v.fixableWith(p, diag.ArrEmptyLine,
			fix.DeleteSpan(diag.ArrEmptyLine.Name(), tok.Span, tok.Text))
	})
}

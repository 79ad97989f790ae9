package arraydecl

import (
	"sync"

	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/token"
)

// Name identifies the rule in reports and configuration.
const Name = "Arrays.ArrayDeclaration"

// Settings configures a Sniff.
type Settings struct {
	// TabWidth is the number of columns per indent level. Zero means tabs
	// are not expanded; alignment then assumes four columns and messages are
	// phrased in spaces.
	TabWidth int
}

// Sniff validates array literals.
type Sniff struct {
	settings Settings

	once       sync.Once
	tabWidth   int
	indentUnit string
}

// New constructs a Sniff.
func New(settings Settings) *Sniff {
	return &Sniff{settings: settings}
}

// Name returns the rule name.
func (sn *Sniff) Name() string { return Name }

// Register lists the token kinds Visit wants to see.
func (sn *Sniff) Register() []token.Kind {
	return []token.Kind{token.OpenShortArray, token.KwArray}
}

func (sn *Sniff) resolveTabWidth() {
	sn.once.Do(func() {
		if sn.settings.TabWidth > 0 {
			sn.tabWidth = sn.settings.TabWidth
			sn.indentUnit = unitTab
			return
		}
		sn.tabWidth = 4
		sn.indentUnit = unitSpace
	})
}

// TabWidth returns the indent width alignment is computed with.
func (sn *Sniff) TabWidth() int {
	sn.resolveTabWidth()
	return sn.tabWidth
}

// Visit checks the literal starting at p and reports violations to r.
func (sn *Sniff) Visit(s *token.Stream, p token.Pos, r diag.Reporter) {
	sn.resolveTabWidth()
	v := newViolations(s, r)

	if s.Kind(p) == token.KwArray {
		reportLongArray(s, v, p)
	}
	lit, ok := LiteralAt(s, p)
	if !ok {
		return
	}

	layout := Classify(s, lit)
	switch layout.Kind {
	case LayoutEmpty:
		checkEmpty(s, v, lit)
	case LayoutSingleLine:
		sn.checkSingleLine(s, v, lit)
	case LayoutMultiLine:
		sn.checkMultiLine(s, v, lit, layout)
	}
}

// reportLongArray flags `array(...)` and rewrites it to `[...]` in one fix.
func reportLongArray(s *token.Stream, v *violations, kw token.Pos) {
	v.fixable(kw, diag.ArrFoundLongArray, func(cs *fix.Changeset) {
		open := s.Partner(kw)
		if !open.IsValid() {
			cs.Replace(kw, "[]")
			return
		}
		closer := s.Partner(open)
		if !closer.IsValid() {
			// half a rewrite would leave the file unparsable
			return
		}
		cs.Delete(kw)
		cs.Replace(open, "[")
		cs.Replace(closer, "]")
	})
}

// checkEmpty requires `[]` with nothing in between.
func checkEmpty(s *token.Stream, v *violations, lit Literal) {
	if lit.Close-lit.Open == 1 {
		return
	}
	v.fixable(lit.Start, diag.ArrSpaceInEmptyArray, func(cs *fix.Changeset) {
		for p := lit.Open + 1; p < lit.Close; p++ {
			cs.Delete(p)
		}
	})
}

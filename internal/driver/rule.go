package driver

import (
	"arraylint/internal/arraydecl"
	"arraylint/internal/diag"
	"arraylint/internal/token"
)

// Rule is a token-driven check. Visit is called once for every token whose
// kind is listed by Register, in source order.
type Rule interface {
	Name() string
	Register() []token.Kind
	Visit(s *token.Stream, p token.Pos, r diag.Reporter)
}

// DefaultRules returns the rule set used when Options.Rules is empty.
func DefaultRules(tabWidth int) []Rule {
	return []Rule{
		arraydecl.New(arraydecl.Settings{TabWidth: tabWidth}),
	}
}

// dispatcher maps token kinds to the rules listening on them.
type dispatcher struct {
	byKind map[token.Kind][]Rule
}

func newDispatcher(rules []Rule) *dispatcher {
	d := &dispatcher{byKind: make(map[token.Kind][]Rule)}
	for _, r := range rules {
		for _, k := range r.Register() {
			d.byKind[k] = append(d.byKind[k], r)
		}
	}
	return d
}

func (d *dispatcher) run(s *token.Stream, rep diag.Reporter) {
	for i := 0; i < s.Len(); i++ {
		p := token.Pos(i)
		for _, r := range d.byKind[s.Kind(p)] {
			r.Visit(s, p, rep)
		}
	}
}

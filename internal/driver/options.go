package driver

// DefaultMaxPasses bounds the fixed-point loop of FixContent.
const DefaultMaxPasses = 50

// Options configures a single-file run.
type Options struct {
	// TabWidth is forwarded to the tokenizer and the rules; 0 keeps tabs at
	// one column.
	TabWidth int
	// MaxPasses bounds fix passes; 0 means DefaultMaxPasses.
	MaxPasses int
	// MaxDiagnostics caps the lint bag; 0 means unlimited. Fix passes always
	// collect everything.
	MaxDiagnostics int
	// Rules overrides DefaultRules. Rules are shared by every file of a run.
	Rules []Rule
	// EnableTimings records per-phase durations in LintResult.Timing.
	EnableTimings bool
}

func (o Options) withDefaults() Options {
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	if len(o.Rules) == 0 {
		o.Rules = DefaultRules(o.TabWidth)
	}
	return o
}

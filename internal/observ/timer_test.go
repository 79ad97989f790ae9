package observ

import (
	"strings"
	"testing"
)

func TestNilTimerIsInert(t *testing.T) {
	var timer *Timer
	idx := timer.Begin("tokenize")
	if idx != -1 {
		t.Fatalf("Begin on nil timer = %d, want -1", idx)
	}
	timer.End(idx, "")
	if got := timer.Report(); len(got.Phases) != 0 {
		t.Fatalf("nil timer report has phases: %+v", got)
	}
}

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()
	a := timer.Begin("tokenize")
	timer.End(a, "tokens=3")
	b := timer.Begin("rules")
	timer.End(b, "")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("want 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "tokenize" || report.Phases[0].Note != "tokens=3" {
		t.Fatalf("unexpected first phase: %+v", report.Phases[0])
	}
	summary := timer.Summary()
	for _, want := range []string{"tokenize", "rules", "total", "// tokens=3"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestReportMerge(t *testing.T) {
	r := Report{TotalMS: 1, Phases: []PhaseReport{{Name: "tokenize", DurationMS: 1}}}
	r.Merge(Report{TotalMS: 3, Phases: []PhaseReport{
		{Name: "tokenize", DurationMS: 1},
		{Name: "rules", DurationMS: 2},
	}})
	if r.TotalMS != 4 {
		t.Fatalf("TotalMS = %v, want 4", r.TotalMS)
	}
	if len(r.Phases) != 2 || r.Phases[0].DurationMS != 2 || r.Phases[1].Name != "rules" {
		t.Fatalf("unexpected merge result: %+v", r.Phases)
	}
}

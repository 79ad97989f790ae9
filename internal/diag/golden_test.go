package diag

import (
	"testing"

	"arraylint/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/src/sample.php", []byte("a\nb\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevWarning,
			Code:     ArrEmptyLine,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     ArrSpaceInEmptyArray,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error ARR2002 src/sample.php:1:1 first line second\n" +
		"note ARR2002 src/sample.php:2:1 note line\n" +
		"warning ARR2027 src/sample.php:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsMarksFixable(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	file := fs.Add("/workspace/a.php", []byte("[ ]\n"), 0)

	diags := []*Diagnostic{{
		Severity: SevError,
		Code:     ArrSpaceInEmptyArray,
		Message:  ArrSpaceInEmptyArray.Format(),
		Primary:  source.Span{File: file, Start: 0, End: 1},
		Fixes: []*Fix{{
			Title: "remove space",
			Edits: []TextEdit{{Span: source.Span{File: file, Start: 1, End: 2}, OldText: " "}},
		}},
	}}

	want := "error ARR2002 a.php:1:1 Empty array declaration must have no space between the parentheses (SpaceInEmptyArray) [fixable]"
	if got := FormatShortDiagnostics(diags, fs, false); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

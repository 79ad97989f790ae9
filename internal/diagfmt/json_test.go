package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"arraylint/internal/diag"
	"arraylint/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	bag := emptyArrayBag(t, fs, "a.php")

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeFixes: true, IncludePreviews: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "ARR2002" || d.Name != "SpaceInEmptyArray" || !d.Fixable {
		t.Errorf("unexpected header: %+v", d)
	}
	if d.Location.File != "a.php" || d.Location.StartLine != 2 || d.Location.StartCol != 6 || d.Location.EndCol != 9 {
		t.Errorf("unexpected location: %+v", d.Location)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("expected one fix with one edit, got %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.OldText != " " || edit.NewText != "" {
		t.Errorf("unexpected edit: %+v", edit)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "$a = [];" {
		t.Errorf("unexpected preview: %+v", edit.AfterLines)
	}
}

func TestJSONWithoutPositionsOrFixes(t *testing.T) {
	fs := source.NewFileSet()
	bag := emptyArrayBag(t, fs, "a.php")

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename})
	d := output.Diagnostics[0]
	if d.Location.StartLine != 0 || d.Location.StartByte != 11 || d.Location.EndByte != 14 {
		t.Errorf("unexpected location: %+v", d.Location)
	}
	if d.Fixes != nil {
		t.Errorf("fixes not requested, got %+v", d.Fixes)
	}
}

func TestJSONAllMergesFiles(t *testing.T) {
	var inputs []Input
	for _, name := range []string{"a.php", "b.php", "c.php"} {
		fs := source.NewFileSet()
		inputs = append(inputs, Input{Bag: emptyArrayBag(t, fs, name), FileSet: fs})
	}
	inputs = append(inputs, Input{})

	var buf bytes.Buffer
	if err := JSONAll(&buf, inputs, JSONOpts{PathMode: PathModeBasename, Max: 2}); err != nil {
		t.Fatalf("JSONAll: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if output.Count != 2 {
		t.Fatalf("Count = %d, want 2", output.Count)
	}
	if output.Diagnostics[0].Location.File != "a.php" || output.Diagnostics[1].Location.File != "b.php" {
		t.Fatalf("unexpected order: %+v", output.Diagnostics)
	}
}

func TestJSONAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONAll(&buf, nil, JSONOpts{}); err != nil {
		t.Fatalf("JSONAll: %v", err)
	}
	want := "{\n  \"diagnostics\": [],\n  \"count\": 0\n}\n"
	if buf.String() != want {
		t.Fatalf("JSONAll() = %q, want %q", buf.String(), want)
	}
}

func TestSarif(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/proj")
	bag := emptyArrayBag(t, fs, "/proj/src/a.php")
	extra := diag.NewError(diag.ArrKeySpecified, source.Span{File: 0, Start: 6, End: 8}, diag.ArrKeySpecified.Title())
	bag.Add(extra)

	var buf bytes.Buffer
	err := Sarif(&buf, []Input{{Bag: bag, FileSet: fs}}, SarifRunMeta{ToolName: "arraylint", ToolVersion: "1.0.0", InvocationArgs: []string{"lint", "src"}})
	if err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected log: %+v", log)
	}
	run := log.Runs[0]
	if len(run.Tool.Driver.Rules) != 2 || run.Tool.Driver.Rules[0].ID != "ARR2002" || run.Tool.Driver.Rules[1].ID != "ARR2017" {
		t.Fatalf("unexpected rules: %+v", run.Tool.Driver.Rules)
	}
	if len(run.Results) != 2 {
		t.Fatalf("want 2 results, got %d", len(run.Results))
	}
	loc := run.Results[0].Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "src/a.php" || loc.Region.StartLine != 2 || loc.Region.StartColumn != 6 {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if run.Results[0].Level != "error" {
		t.Fatalf("Level = %q", run.Results[0].Level)
	}
	if len(run.Invocations) != 1 || !run.Invocations[0].ExecutionSuccessful {
		t.Fatalf("unexpected invocations: %+v", run.Invocations)
	}
}

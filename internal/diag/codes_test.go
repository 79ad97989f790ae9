package diag

import "testing"

func TestCodeRendering(t *testing.T) {
	tests := []struct {
		code Code
		id   string
		name string
	}{
		{LexUnterminatedString, "LEX1002", "UnterminatedString"},
		{ArrSpaceInEmptyArray, "ARR2002", "SpaceInEmptyArray"},
		{ArrEmptyLine, "ARR2027", "EmptyLine"},
		{IOLoadFileError, "IO4001", "LoadFileError"},
		{FixNoConvergence, "FIX5001", "NoConvergence"},
		{Code(9999), "E0000", "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d: ID() = %q, want %q", tt.code, got, tt.id)
		}
		if got := tt.code.Name(); got != tt.name {
			t.Errorf("%d: Name() = %q, want %q", tt.code, got, tt.name)
		}
	}
}

func TestCodeFormat(t *testing.T) {
	got := ArrKeyNotAligned.Format(1, "space", 0)
	want := "Array key not aligned correctly; expected 1 space but found 0"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	if got := ArrEmptyLine.Format(); got != "Blank lines are not allowed in an array declaration" {
		t.Fatalf("Format() without args = %q", got)
	}
}

func TestEveryArrayCodeHasName(t *testing.T) {
	for c := ArrFoundLongArray; c <= ArrEmptyLine; c++ {
		if c.Name() == "Unknown" {
			t.Errorf("code %s has no name", c.ID())
		}
	}
}

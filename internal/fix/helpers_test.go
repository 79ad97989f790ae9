package fix_test

import (
	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/source"
)

func applyOne(fs *source.FileSet, id source.FileID, f *diag.Fix) (*fix.ApplyResult, []byte, error) {
	d := &diag.Diagnostic{
		Code:    diag.ArrInfo,
		Primary: source.Span{File: id},
		Fixes:   []*diag.Fix{f},
	}
	return fix.ApplyBuffer(fs, id, []*diag.Diagnostic{d}, fix.ApplyOptions{Mode: fix.ApplyModeAll})
}

package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/token"
)

const (
	cleanSrc = "<?php\n$a = [\n    'a' => 1,\n];\n"
	dirtySrc = "<?php\n$a = [ ];\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func codeNames(diags []*diag.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code.Name())
	}
	return out
}

// growRule appends to every variable name, so its fixes never converge.
type growRule struct{}

func (growRule) Name() string { return "Test.Grow" }

func (growRule) Register() []token.Kind { return []token.Kind{token.Variable} }

func (growRule) Visit(s *token.Stream, p token.Pos, r diag.Reporter) {
	tok := s.At(p)
	f := fix.NewChangeset(s, "grow").Replace(p, tok.Text+"x").Fix()
	diag.ReportError(r, diag.ArrInfo, tok.Span, "grow").WithFix(f).Emit()
}

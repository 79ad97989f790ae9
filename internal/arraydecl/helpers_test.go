package arraydecl_test

import (
	"context"
	"testing"

	"arraylint/internal/arraydecl"
	"arraylint/internal/diag"
	"arraylint/internal/driver"
	"arraylint/internal/lexer"
	"arraylint/internal/source"
	"arraylint/internal/token"
)

func scan(t *testing.T, src string) *token.Stream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	return lexer.Scan(fs.Get(id), lexer.Options{})
}

// nth returns the position of the n-th (0-based) token with the given text.
func nth(t *testing.T, s *token.Stream, text string, n int) token.Pos {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		p := token.Pos(i)
		if s.At(p).Text != text {
			continue
		}
		if n == 0 {
			return p
		}
		n--
	}
	t.Fatalf("token %q not found", text)
	return token.NoPos
}

func literalAt(t *testing.T, s *token.Stream, p token.Pos) arraydecl.Literal {
	t.Helper()
	lit, ok := arraydecl.LiteralAt(s, p)
	if !ok {
		t.Fatalf("no literal at %d (%s)", p, s.Kind(p))
	}
	return lit
}

func options(tabWidth int) driver.Options {
	return driver.Options{
		TabWidth: tabWidth,
		Rules:    []driver.Rule{arraydecl.New(arraydecl.Settings{TabWidth: tabWidth})},
	}
}

func lint(t *testing.T, src string, tabWidth int) []*diag.Diagnostic {
	t.Helper()
	res, err := driver.LintContent(context.Background(), "test.php", []byte(src), options(tabWidth))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	return res.Bag.Items()
}

func names(diags []*diag.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code.Name())
	}
	return out
}

func fixAll(t *testing.T, src string, tabWidth int) *driver.FixResult {
	t.Helper()
	res, err := driver.FixContent(context.Background(), "test.php", []byte(src), options(tabWidth))
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	return res
}

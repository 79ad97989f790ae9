package arraydecl_test

import (
	"testing"

	"arraylint/internal/arraydecl"
	"arraylint/internal/token"
)

func TestSkipNested(t *testing.T) {
	s := scan(t, "<?php\nfoo(array(1, (2)), function () use ($a) { return [1]; }, fn($x) => $x + $y[0], {$z});\n")

	tests := []struct {
		name  string
		start token.Pos
		end   token.Pos
	}{
		{"call", nth(t, s, "(", 0), nth(t, s, ")", 5)},
		{"long array", nth(t, s, "array", 0), nth(t, s, ")", 1)},
		{"paren", nth(t, s, "(", 2), nth(t, s, ")", 0)},
		{"closure", nth(t, s, "function", 0), nth(t, s, "}", 0)},
		{"short array", nth(t, s, "[", 0), nth(t, s, "]", 0)},
		{"arrow fn", nth(t, s, "fn", 0), nth(t, s, "]", 1)},
		{"index", nth(t, s, "[", 1), nth(t, s, "]", 1)},
		{"brace", nth(t, s, "{", 1), nth(t, s, "}", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := arraydecl.SkipNested(s, tt.start)
			if !ok {
				t.Fatalf("SkipNested(%s) reported unknown", s.Kind(tt.start))
			}
			if end != tt.end {
				t.Fatalf("SkipNested(%s) = %d (%q), want %d", s.Kind(tt.start), end, s.At(end).Text, tt.end)
			}
		})
	}
}

func TestSkipNestedNonOpener(t *testing.T) {
	s := scan(t, "<?php\n$a = 1;\n")
	p := nth(t, s, "$a", 0)
	end, ok := arraydecl.SkipNested(s, p)
	if !ok || end != p {
		t.Fatalf("SkipNested on a variable = (%d, %v), want (%d, true)", end, ok, p)
	}
}

func TestSkipNestedUnpaired(t *testing.T) {
	s := scan(t, "<?php\nfoo(1, 2;\n")
	if _, ok := arraydecl.SkipNested(s, nth(t, s, "(", 0)); ok {
		t.Fatal("expected unknown for an unclosed parenthesis")
	}
}

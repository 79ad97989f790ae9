package arraydecl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFixConverges(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "long array is split",
			src:  "<?php\n$a = array(1, 2);\n",
			want: "<?php\n$a = [\n    1,\n    2,\n];\n",
		},
		{
			name: "keyed array is split and aligned",
			src:  "<?php\n$a = ['a' => 1, 'bbb' => 2];\n",
			want: "<?php\n$a = [\n    'a'   => 1,\n    'bbb' => 2,\n];\n",
		},
		{
			name: "empty array",
			src:  "<?php\n$a = [ ];\n",
			want: "<?php\n$a = [];\n",
		},
		{
			name: "comma spacing in call",
			src:  "<?php\nfoo([1,2 ,3]);\n",
			want: "<?php\nfoo([1, 2, 3]);\n",
		},
		{
			name: "trailing comma in call",
			src:  "<?php\nfoo([1, 2,]);\n",
			want: "<?php\nfoo([1, 2]);\n",
		},
		{
			name: "call argument after a nested call stays inline",
			src:  "<?php\nfoo(bar(), [1,2]);\n",
			want: "<?php\nfoo(bar(), [1, 2]);\n",
		},
		{
			name: "comma moves in front of a line comment",
			src:  "<?php\n$a = [\n    1 // c\n    ,\n    2,\n];\n",
			want: "<?php\n$a = [\n    1, // c\n    2,\n];\n",
		},
		{
			name: "keyed comma moves in front of a line comment",
			src:  "<?php\n$a = [\n    'a' => 1 // c\n    ,\n];\n",
			want: "<?php\n$a = [\n    'a' => 1, // c\n];\n",
		},
		{
			name: "comma on its own line joins the value",
			src:  "<?php\n$a = [\n    1\n    ,\n    2,\n];\n",
			want: "<?php\n$a = [\n    1,\n    2,\n];\n",
		},
		{
			name: "arrow spacing in call",
			src:  "<?php\nfoo(['a'=>1]);\n",
			want: "<?php\nfoo(['a' => 1]);\n",
		},
		{
			name: "brackets hug call parens",
			src:  "<?php\n$x->call(\n    [\n        1,\n    ]\n);\n",
			want: "<?php\n$x->call([\n    1,\n]);\n",
		},
		{
			name: "value joins its arrow",
			src:  "<?php\n$x = [\n    'a' =>\n        1,\n];\n",
			want: "<?php\n$x = [\n    'a' => 1,\n];\n",
		},
		{
			name: "blank line removed",
			src:  "<?php\n$x = [\n    1,\n\n    2,\n];\n",
			want: "<?php\n$x = [\n    1,\n    2,\n];\n",
		},
		{
			name: "closer outdented",
			src:  "<?php\n$x = [\n    1,\n    ];\n",
			want: "<?php\n$x = [\n    1,\n];\n",
		},
		{
			name: "closer moved to its own line",
			src:  "<?php\n$x = [\n    1,\n    2,];\n",
			want: "<?php\n$x = [\n    1,\n    2,\n];\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fixAll(t, tt.src, 0)
			if diff := cmp.Diff(tt.want, string(res.Content)); diff != "" {
				t.Fatalf("fixed content mismatch (-want +got):\n%s", diff)
			}
			if !res.Changed() {
				t.Fatalf("expected a change")
			}
			if n := res.Remaining.Bag.Len(); n != 0 {
				t.Fatalf("fixed content still has %d violations: %v", n, names(res.Remaining.Bag.Items()))
			}
		})
	}
}

func TestFixLeavesCleanFileAlone(t *testing.T) {
	src := "<?php\n$a = [\n    'a' => [\n        1,\n    ],\n];\n"
	res := fixAll(t, src, 0)
	if res.Changed() {
		t.Fatalf("clean file changed:\n%s", res.Content)
	}
	if res.Passes != 1 {
		t.Fatalf("Passes = %d, want 1", res.Passes)
	}
}

func TestFixKeepsStructuralViolations(t *testing.T) {
	src := "<?php\n$a = [\n    1,\n    'a' => 2,\n];\n"
	res := fixAll(t, src, 0)
	if res.Changed() {
		t.Fatalf("content changed:\n%s", res.Content)
	}
	got := names(res.Remaining.Bag.Items())
	if diff := cmp.Diff([]string{"KeySpecified"}, got); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
}

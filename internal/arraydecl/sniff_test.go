package arraydecl_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"arraylint/internal/arraydecl"
	"arraylint/internal/diag"
	"arraylint/internal/token"
)

func TestRegister(t *testing.T) {
	got := arraydecl.New(arraydecl.Settings{}).Register()
	want := []token.Kind{token.OpenShortArray, token.KwArray}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Register mismatch (-want +got):\n%s", diff)
	}
}

func TestTabWidthResolvedOnce(t *testing.T) {
	sn := arraydecl.New(arraydecl.Settings{})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := sn.TabWidth(); got != 4 {
				t.Errorf("TabWidth() = %d, want 4", got)
			}
		}()
	}
	wg.Wait()
	if got := arraydecl.New(arraydecl.Settings{TabWidth: 2}).TabWidth(); got != 2 {
		t.Fatalf("TabWidth() = %d, want 2", got)
	}
}

func TestFirstPassViolations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "clean keyed",
			src:  "<?php\n$a = [\n    'a'   => 1,\n    'bbb' => 2,\n];\n",
		},
		{
			name: "clean nested",
			src:  "<?php\n$a = [\n    'x' => [\n        1,\n    ],\n    'y' => [],\n];\n",
		},
		{
			name: "clean call argument",
			src:  "<?php\nfoo([1, 2], ['a' => 1]);\n",
		},
		{
			name: "single entry",
			src:  "<?php\n$a = ['a' => 1];\n",
		},
		{
			name: "space in empty",
			src:  "<?php\n$a = [ ];\n",
			want: []string{"SpaceInEmptyArray"},
		},
		{
			name: "long empty",
			src:  "<?php\n$a = array();\n",
			want: []string{"FoundLongArray"},
		},
		{
			name: "split required",
			src:  "<?php\n$a = [1, 2];\n",
			want: []string{"SingleLineNotAllowed"},
		},
		{
			name: "trailing comma single line",
			src:  "<?php\n$a = [1,];\n",
			want: []string{"CommaAfterLast"},
		},
		{
			name: "comma spacing in call",
			src:  "<?php\nfoo([1,2 ,3]);\n",
			want: []string{"NoSpaceAfterComma", "NoSpaceAfterComma", "SpaceBeforeComma"},
		},
		{
			name: "arrow spacing",
			src:  "<?php\n$a = ['a'=>1];\n",
			want: []string{"NoSpaceBeforeDoubleArrow", "NoSpaceAfterDoubleArrow"},
		},
		{
			name: "arrow spacing counts",
			src:  "<?php\n$a = ['a'  =>   1];\n",
			want: []string{"SpaceBeforeDoubleArrow", "SpaceAfterDoubleArrow"},
		},
		{
			name: "missing comma after last bare value",
			src:  "<?php\n$a = [\n    1,\n    2\n];\n",
			want: []string{"NoCommaAfterLast"},
		},
		{
			name: "missing comma after last keyed value",
			src:  "<?php\n$a = [\n    'a' => 1,\n    'b' => 2\n];\n",
			want: []string{"NoComma"},
		},
		{
			name: "key specified",
			src:  "<?php\n$a = [\n    1,\n    'a' => 2,\n];\n",
			want: []string{"KeySpecified"},
		},
		{
			name: "no key specified",
			src:  "<?php\n$a = [\n    'a' => 1,\n    2,\n];\n",
			want: []string{"NoKeySpecified"},
		},
		{
			name: "closer not aligned",
			src:  "<?php\n$a = [\n    1,\n    ];\n",
			want: []string{"CloseArrayBraceNotAligned"},
		},
		{
			name: "closer on content line",
			src:  "<?php\n$a = [\n    1,\n    2,];\n",
			want: []string{"CloseArrayBraceNewLine"},
		},
		{
			name: "blank line",
			src:  "<?php\n$a = [\n    1,\n\n    2,\n];\n",
			want: []string{"EmptyLine"},
		},
		{
			name: "opener and closer away from call parens",
			src:  "<?php\n$x->call(\n    [\n        1,\n    ]\n);\n",
			want: []string{"ShortArrayOpenWrongLine", "ValueNotAligned", "CloseArrayBraceNotAligned", "CloseBracketAfterArrayBracket"},
		},
		{
			name: "value on the arrow's next line",
			src:  "<?php\n$a = [\n    'a' =>\n        1,\n];\n",
			want: []string{"ValueNotAligned"},
		},
		{
			name: "two keys on one line",
			src:  "<?php\n$a = [\n    'a' => 1, 'b' => 2,\n];\n",
			want: []string{"IndexNoNewline"},
		},
		{
			name: "first key on the opener line",
			src:  "<?php\n$a = ['a' => 1,\n    'b' => 2,\n];\n",
			want: []string{"FirstIndexNoNewline"},
		},
		{
			name: "first value on the opener line",
			src:  "<?php\n$a = [1,\n    2,\n];\n",
			want: []string{"FirstValueNoNewline"},
		},
		{
			name: "single value on the opener line",
			src:  "<?php\n$a = [1,\n];\n",
		},
		{
			name: "call argument after a nested call",
			src:  "<?php\nfoo(bar(), [1, 2]);\n",
		},
		{
			name: "argument inside a condition",
			src:  "<?php\nif ($x && in_array($y, [1, 2])) {\n}\n",
		},
		{
			name: "call opened on an earlier line",
			src:  "<?php\nfoo(\n    $a, [1, 2]\n);\n",
			want: []string{"SingleLineNotAllowed"},
		},
		{
			name: "closed group before the literal",
			src:  "<?php\n$a = bar() + [1, 2];\n",
			want: []string{"SingleLineNotAllowed"},
		},
		{
			name: "comma below a line comment",
			src:  "<?php\n$a = [\n    1 // c\n    ,\n    2,\n];\n",
			want: []string{"SpaceBeforeComma"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(lint(t, tt.src, 0))
			if diff := cmp.Diff(tt.want, got, cmpEmpty); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return cmp.Equal(a, b)
})

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		tabWidth int
		code     diag.Code
		want     string
	}{
		{
			name: "value alignment in spaces",
			src:  "<?php\n$a = [\n  1,\n];\n",
			code: diag.ArrValueNotAligned,
			want: "Array value not aligned correctly; expected 4 spaces but found 2",
		},
		{
			name:     "value alignment in tabs",
			src:      "<?php\n$a = [\n  1,\n];\n",
			tabWidth: 4,
			code:     diag.ArrValueNotAligned,
			want:     "Array value not aligned correctly; expected 1 tab but found 0.5",
		},
		{
			name: "closer alignment",
			src:  "<?php\n$a = [\n    1,\n  ];\n",
			code: diag.ArrCloseArrayBraceNotAligned,
			want: "Closing parenthesis not aligned correctly; expected 0 spaces but found 2",
		},
		{
			name: "arrow alignment",
			src:  "<?php\n$a = [\n    'a' => 1,\n    'bbb' => 2,\n];\n",
			code: diag.ArrDoubleArrowNotAligned,
			want: "Array double arrow not aligned correctly; expected 3 spaces but found 1",
		},
		{
			name: "value after arrow on next line",
			src:  "<?php\n$a = [\n    'a' =>\n        1,\n];\n",
			code: diag.ArrValueNotAligned,
			want: "Array value not aligned correctly; expected 1 space but found newline",
		},
		{
			name: "space before comma",
			src:  "<?php\nfoo([1 , 2]);\n",
			code: diag.ArrSpaceBeforeComma,
			want: `Expected 0 spaces between "1" and comma; 1 found`,
		},
		{
			name: "space after arrow",
			src:  "<?php\n$a = ['a' =>   1];\n",
			code: diag.ArrSpaceAfterDoubleArrow,
			want: `Expected 1 space between double arrow and "1"; 3 found`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msgs []string
			for _, d := range lint(t, tt.src, tt.tabWidth) {
				if d.Code == tt.code {
					msgs = append(msgs, d.Message)
				}
			}
			if len(msgs) == 0 {
				t.Fatalf("no %s reported", tt.code.Name())
			}
			if msgs[0] != tt.want {
				t.Fatalf("message = %q, want %q", msgs[0], tt.want)
			}
		})
	}
}

func TestEveryViolationOfFixableCodesCarriesAFix(t *testing.T) {
	src := "<?php\n$a = array( 1,2 );\n$b = [\n  'a'=>1, 'bbb' => 2\n  ];\n"
	for _, d := range lint(t, src, 0) {
		switch d.Code {
		case diag.ArrKeySpecified, diag.ArrNoKeySpecified:
			if d.Fixable() {
				t.Errorf("%s must not carry a fix", d.Code.Name())
			}
		default:
			if !d.Fixable() {
				t.Errorf("%s at %v has no fix", d.Code.Name(), d.Primary)
			}
		}
	}
}

func TestStructuralErrorsSuppressEntryChecks(t *testing.T) {
	src := "<?php\n$a = [\n1,\n      'a'=>2\n];\n"
	got := names(lint(t, src, 0))
	want := []string{"KeySpecified"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestBlankLinesInsideNestedConstructsAreIgnored(t *testing.T) {
	src := "<?php\n$a = [\n    function () {\n        $x = 1;\n\n        return $x;\n    },\n    \"multi\n\nline\",\n];\n"
	for _, d := range lint(t, src, 0) {
		if d.Code == diag.ArrEmptyLine {
			t.Fatalf("unexpected EmptyLine at %v", d.Primary)
		}
	}
}

func TestLongArrayFixIsAtomic(t *testing.T) {
	diags := lint(t, "<?php\n$a = array(1);\n", 0)
	var long *diag.Diagnostic
	for _, d := range diags {
		if d.Code == diag.ArrFoundLongArray {
			long = d
		}
	}
	if long == nil || len(long.Fixes) != 1 {
		t.Fatalf("want one FoundLongArray fix, got %+v", diags)
	}
	var edits []string
	for _, e := range long.Fixes[0].Edits {
		edits = append(edits, e.OldText+"->"+e.NewText)
	}
	if diff := cmp.Diff([]string{"array->", "(->[", ")->]"}, edits); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestMessagesAreFormatted(t *testing.T) {
	for _, d := range lint(t, "<?php\n$a = [\n1,\n  2\n];\n", 0) {
		if strings.Contains(d.Message, "%!") {
			t.Fatalf("badly formatted message: %q", d.Message)
		}
	}
}

package lexer_test

import (
	"fmt"
	"slices"
	"testing"

	"arraylint/internal/diag"
	"arraylint/internal/lexer"
	"arraylint/internal/source"
	"arraylint/internal/token"
)

// testReporter collects everything the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []*diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func lex(t *testing.T, input string, tabWidth int) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.php", []byte(input))
	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter, TabWidth: tabWidth})
	return lx.Tokenize(), reporter
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if !tok.Kind.IsEmpty() {
			out = append(out, tok)
		}
	}
	return out
}

func find(t *testing.T, toks []token.Token, kind token.Kind, nth int) token.Pos {
	t.Helper()
	for i, tok := range toks {
		if tok.Kind == kind {
			if nth == 0 {
				return token.Pos(i)
			}
			nth--
		}
	}
	t.Fatalf("token %s not found", kind)
	return token.NoPos
}

func TestBasicAssignment(t *testing.T) {
	toks, rep := lex(t, "<?php\n$x = [1, 'a' => \"b$c\"];\n", 0)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.codes())
	}
	want := []token.Kind{
		token.OpenTag, token.Whitespace,
		token.Variable, token.Whitespace, token.Equal, token.Whitespace,
		token.OpenShortArray, token.Number, token.Comma, token.Whitespace,
		token.ConstString, token.Whitespace, token.DoubleArrow, token.Whitespace,
		token.DoubleQuotedString, token.CloseShortArray, token.Semicolon,
		token.Whitespace, token.EOF,
	}
	if got := kinds(toks); !slices.Equal(got, want) {
		t.Fatalf("kinds mismatch:\ngot  %v\nwant %v", got, want)
	}

	open := find(t, toks, token.OpenShortArray, 0)
	closing := find(t, toks, token.CloseShortArray, 0)
	if toks[open].Partner != closing || toks[closing].Partner != open {
		t.Fatalf("bracket partners not linked: %d <-> %d", toks[open].Partner, toks[closing].Partner)
	}
	if toks[open].Line != 2 || toks[open].Col != 6 {
		t.Fatalf("'[' at %d:%d, want 2:6", toks[open].Line, toks[open].Col)
	}
}

func TestTextWithoutOpenTagIsCode(t *testing.T) {
	toks, _ := lex(t, "$x = [];", 0)
	if toks[0].Kind != token.Variable {
		t.Fatalf("first token = %s, want Variable", toks[0].Kind)
	}
}

func TestInlineHTMLBeforeTag(t *testing.T) {
	toks, _ := lex(t, "<p>\n<?php echo [1];", 0)
	want := []token.Kind{token.InlineHTML, token.OpenTag}
	if got := kinds(toks[:2]); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if toks[find(t, toks, token.Keyword, 0)].Text != "echo" {
		t.Fatal("echo must be a keyword")
	}
	find(t, toks, token.OpenShortArray, 0)
}

func TestBracketClassification(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"$a[0];", token.OpenBracket},
		{"foo()[0];", token.OpenBracket},
		{"FOO[0];", token.OpenBracket},
		{"$a = [0];", token.OpenShortArray},
		{"return [0];", token.OpenShortArray},
		{"RETURN [0];", token.OpenShortArray},
		{"foo([0]);", token.OpenShortArray},
		{"if ($x) {\n}\n[$a, $b] = $c;", token.OpenShortArray},
		{"$o->{'p'}[0];", token.OpenBracket},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, _ := lex(t, tt.input, 0)
			for _, tok := range toks {
				if tok.Kind == token.OpenBracket || tok.Kind == token.OpenShortArray {
					if tok.Kind != tt.want {
						t.Fatalf("got %s, want %s", tok.Kind, tt.want)
					}
					if !tok.Partner.IsValid() {
						t.Fatal("bracket has no partner")
					}
					closing := toks[tok.Partner].Kind
					if (tt.want == token.OpenShortArray) != (closing == token.CloseShortArray) {
						t.Fatalf("closer kind %s does not match opener %s", closing, tok.Kind)
					}
					return
				}
			}
			t.Fatal("no bracket found")
		})
	}
}

func TestCasts(t *testing.T) {
	toks, _ := lex(t, "$a = (array) $b; $c = ( int )$d; $e = (object)$f; (unset)$g; ($h);", 0)
	sig := significant(toks)
	got := make([]token.Kind, 0)
	for _, tok := range sig {
		switch tok.Kind {
		case token.ArrayCast, token.Cast, token.ObjectCast, token.UnsetCast, token.OpenParen:
			got = append(got, tok.Kind)
		}
	}
	want := []token.Kind{token.ArrayCast, token.Cast, token.ObjectCast, token.UnsetCast, token.OpenParen}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLongArrayKeyword(t *testing.T) {
	toks, _ := lex(t, "$a = array(1, array (2));\nfunction f(array $x): array {}\n$o->array(1);", 0)
	kw := find(t, toks, token.KwArray, 0)
	paren := find(t, toks, token.OpenParen, 0)
	if toks[kw].Partner != paren {
		t.Fatalf("KwArray partner = %d, want %d", toks[kw].Partner, paren)
	}
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.KwArray {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 long arrays, got %d", count)
	}
}

func TestClosurePartner(t *testing.T) {
	toks, _ := lex(t, "$f = function ($a) use ($b) { return [$a]; };", 0)
	cl := find(t, toks, token.Closure, 0)
	brace := find(t, toks, token.CloseBrace, 0)
	if toks[cl].Partner != brace {
		t.Fatalf("closure partner = %d, want %d", toks[cl].Partner, brace)
	}

	toks, _ = lex(t, "function named($a) {}", 0)
	for _, tok := range toks {
		if tok.Kind == token.Closure {
			t.Fatal("named function must not be a closure")
		}
	}
}

func TestArrowFunctionPartner(t *testing.T) {
	toks, _ := lex(t, "$f = [fn($x) => $x + foo(1, 2), 3];", 0)
	fn := find(t, toks, token.KwFn, 0)
	end := find(t, toks, token.CloseParen, 1)
	if toks[fn].Partner != end {
		t.Fatalf("fn partner = %d (%q), want %d", toks[fn].Partner, toks[toks[fn].Partner].Text, end)
	}
}

func TestMultiLineTokensAreSplit(t *testing.T) {
	toks, _ := lex(t, "$s = 'a\nb';\n/* x\n y */", 0)
	var strs, comments []token.Token
	for _, tok := range toks {
		switch tok.Kind {
		case token.ConstString:
			strs = append(strs, tok)
		case token.Comment:
			comments = append(comments, tok)
		}
	}
	if len(strs) != 2 || strs[0].Text != "'a\n" || strs[1].Text != "b'" {
		t.Fatalf("string pieces = %+v", strs)
	}
	if strs[1].Line != 2 || strs[1].Col != 1 {
		t.Fatalf("second piece at %d:%d", strs[1].Line, strs[1].Col)
	}
	if len(comments) != 2 || comments[1].Text != " y */" {
		t.Fatalf("comment pieces = %+v", comments)
	}
}

func TestWhitespaceEndsAtNewline(t *testing.T) {
	toks, _ := lex(t, "[\n\n  1]", 0)
	want := []string{"[", "\n", "\n", "  ", "1", "]", ""}
	got := make([]string, 0, len(toks))
	for _, tok := range toks {
		got = append(got, tok.Text)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if toks[1].IsBlankLine() {
		t.Fatal("newline after '[' is not a blank line")
	}
	if !toks[2].IsBlankLine() {
		t.Fatal("empty line must be a blank line")
	}
	if toks[3].Length != 2 || toks[4].Col != 3 || toks[4].Line != 3 {
		t.Fatalf("unexpected layout: len=%d col=%d line=%d", toks[3].Length, toks[4].Col, toks[4].Line)
	}
}

func TestTabColumns(t *testing.T) {
	tests := []struct {
		tabWidth int
		col      uint32
	}{
		{0, 2},
		{4, 5},
		{2, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.tabWidth), func(t *testing.T) {
			toks, _ := lex(t, "\t$x", tt.tabWidth)
			if toks[1].Col != tt.col {
				t.Fatalf("col = %d, want %d", toks[1].Col, tt.col)
			}
			if toks[0].Length != tt.col-1 {
				t.Fatalf("tab length = %d, want %d", toks[0].Length, tt.col-1)
			}
		})
	}
}

func TestHeredoc(t *testing.T) {
	toks, rep := lex(t, "$x = <<<EOT\nfoo\n  EOT;\n$y = <<<'RAW'\nbar\nRAW;\n", 0)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.codes())
	}
	var pieces []string
	for _, tok := range toks {
		if tok.Kind == token.Heredoc {
			pieces = append(pieces, tok.Text)
		}
	}
	want := []string{"<<<EOT\n", "foo\n", "  EOT", "<<<'RAW'\n", "bar\n", "RAW"}
	if !slices.Equal(pieces, want) {
		t.Fatalf("got %q, want %q", pieces, want)
	}
}

func TestOperators(t *testing.T) {
	toks, _ := lex(t, "$a .= $b?->c ?? $d::E <=> 1; $x ??= 2;", 0)
	var got []token.Kind
	for _, tok := range significant(toks) {
		switch tok.Kind {
		case token.AssignOp, token.ObjectOperator, token.DoubleColon, token.Operator, token.Equal:
			got = append(got, tok.Kind)
		}
	}
	want := []token.Kind{
		token.AssignOp, token.ObjectOperator, token.Operator, token.DoubleColon,
		token.Operator, token.AssignOp,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCommentsAndAttributes(t *testing.T) {
	toks, _ := lex(t, "#[Attr]\n# hash\n// line\n/** doc */", 0)
	want := []token.Kind{
		token.OpenBracket, token.Ident, token.CloseBracket, token.Whitespace,
		token.Comment, token.Whitespace,
		token.Comment, token.Whitespace,
		token.DocComment, token.EOF,
	}
	if got := kinds(toks); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		want  []diag.Code
	}{
		{"$a = 'abc", []diag.Code{diag.LexUnterminatedString}},
		{"$a = \"abc", []diag.Code{diag.LexUnterminatedString}},
		{"/* abc", []diag.Code{diag.LexUnterminatedComment}},
		{"$a = <<<EOT\nabc\n", []diag.Code{diag.LexUnterminatedHeredoc}},
		{"$a = [1;", []diag.Code{diag.LexUnbalancedBracket}},
		{"$a = 1];", []diag.Code{diag.LexUnbalancedBracket}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, rep := lex(t, tt.input, 0)
			if got := rep.codes(); !slices.Equal(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if toks[len(toks)-1].Kind != token.EOF {
				t.Fatal("stream must end with EOF")
			}
		})
	}
}

func TestUnmatchedHasNoPartner(t *testing.T) {
	toks, _ := lex(t, "$a = [1;", 0)
	open := find(t, toks, token.OpenShortArray, 0)
	if toks[open].Partner != token.NoPos {
		t.Fatalf("partner = %d, want NoPos", toks[open].Partner)
	}
}

func TestSpansCoverSource(t *testing.T) {
	input := "<?php\n$x = [\n    'a' => \"b\n c\",\n];\n"
	toks, _ := lex(t, input, 4)
	var rebuilt string
	for i, tok := range toks {
		if input[tok.Span.Start:tok.Span.End] != tok.Text {
			t.Fatalf("token %d text %q does not match span", i, tok.Text)
		}
		rebuilt += tok.Text
	}
	if rebuilt != input {
		t.Fatalf("rebuilt %q, want %q", rebuilt, input)
	}
}

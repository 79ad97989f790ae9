package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arraylint/internal/diag"
	"arraylint/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	removed, added  *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:     mk(color.FgRed, color.Bold),
		warn:    mk(color.FgYellow, color.Bold),
		info:    mk(color.FgCyan, color.Bold),
		code:    mk(color.FgMagenta),
		path:    mk(color.Bold),
		gutter:  mk(color.FgBlue),
		caret:   mk(color.FgGreen, color.Bold),
		removed: mk(color.FgRed),
		added:   mk(color.FgGreen),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty renders diagnostics for a terminal. The bag is expected to be
// sorted. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <ID> <Name>: <message>
//
// followed by the source line with a caret under the primary span, then
// notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	start, end := fs.Resolve(d.Primary)
	path := f.FormatPath(opts.PathMode.formatName(), fs.BaseDir())
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		pal.path.Sprint(path), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity),
		pal.code.Sprintf("%s %s", d.Code.ID(), d.Code.Name()),
		d.Message,
	)
	writeSnippet(w, f, start, end, int(opts.Context), pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %d:%d: %s\n", pal.info.Sprint("note:"), ns.Line, ns.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s (%s)\n", pal.info.Sprint("fix:"), fx.Title, fx.Applicability)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range fx.Edits {
				before, after, ok := editPreview(fs, edit)
				if !ok {
					continue
				}
				for _, line := range before {
					fmt.Fprintf(w, "    %s\n", pal.removed.Sprint("- "+line))
				}
				for _, line := range after {
					fmt.Fprintf(w, "    %s\n", pal.added.Sprint("+ "+line))
				}
			}
		}
	}
}

func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, context int, pal palette) {
	if context < 0 {
		return
	}
	lines := len(f.LineIdx) + 1
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] == '\n' {
		// the final newline does not open another line
		lines--
	}
	first := max(int(start.Line)-context, 1)
	last := min(int(start.Line)+context, max(lines, int(start.Line)))
	width := len(fmt.Sprint(last))
	for ln := first; ln <= last; ln++ {
		text := f.GetLine(uint32(ln)) //nolint:gosec // 1 <= ln <= line count
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), text)
		if ln != int(start.Line) {
			continue
		}
		pad, mark := caretLine(text, start, end)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", width, ""), pad, pal.caret.Sprint(mark))
	}
}

// caretLine builds the padding and the ^~~~ marker under the span. Tabs in
// the prefix are kept so the marker lines up in any terminal; wide runes
// take their display width.
func caretLine(line string, start, end source.LineCol) (string, string) {
	startByte := min(int(start.Col)-1, len(line))
	endByte := len(line)
	if end.Line == start.Line {
		endByte = min(int(end.Col)-1, len(line))
	}
	endByte = max(endByte, startByte)

	var pad strings.Builder
	for _, r := range line[:startByte] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	n := runewidth.StringWidth(strings.ReplaceAll(line[startByte:endByte], "\t", " "))
	if n <= 1 {
		return pad.String(), "^"
	}
	return pad.String(), "^" + strings.Repeat("~", n-1)
}

// editPreview returns the whole lines touched by edit, before and after it
// is applied.
func editPreview(fs *source.FileSet, edit diag.TextEdit) (before, after []string, ok bool) {
	if fs == nil {
		return nil, nil, false
	}
	f := fs.Get(edit.Span.File)
	if f == nil {
		return nil, nil, false
	}
	content := f.Content
	start, end := int(edit.Span.Start), int(edit.Span.End)
	if start > end || end > len(content) {
		return nil, nil, false
	}
	lo := bytes.LastIndexByte(content[:start], '\n') + 1
	hi := len(content)
	if i := bytes.IndexByte(content[end:], '\n'); i >= 0 {
		hi = end + i + 1
	}

	var b strings.Builder
	b.Write(content[lo:start])
	b.WriteString(edit.NewText)
	b.Write(content[end:hi])
	return blockLines(string(content[lo:hi])), blockLines(b.String()), true
}

// blockLines splits a block of whole lines; the final newline ends the last
// line rather than opening another.
func blockLines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(block, "\n"), "\n")
}

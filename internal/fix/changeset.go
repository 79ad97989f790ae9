package fix

import (
	"sort"
	"strings"

	"arraylint/internal/diag"
	"arraylint/internal/token"
)

// Changeset collects token-level operations that must land together. Each
// touched token becomes one TextEdit covering exactly that token, guarded by
// its original text, so edits of one changeset never overlap and two
// changesets touching the same token conflict.
type Changeset struct {
	stream *token.Stream
	title  string
	ops    map[token.Pos]*tokenOp
}

type tokenOp struct {
	replaced bool
	text     string
	before   strings.Builder
	after    strings.Builder
}

// NewChangeset starts an empty changeset over s.
func NewChangeset(s *token.Stream, title string) *Changeset {
	return &Changeset{
		stream: s,
		title:  title,
		ops:    make(map[token.Pos]*tokenOp),
	}
}

func (c *Changeset) op(p token.Pos) *tokenOp {
	if c == nil || !c.stream.Valid(p) {
		return nil
	}
	o, ok := c.ops[p]
	if !ok {
		o = &tokenOp{}
		c.ops[p] = o
	}
	return o
}

// Replace sets the new text of the token at p. The last call wins.
func (c *Changeset) Replace(p token.Pos, text string) *Changeset {
	if o := c.op(p); o != nil {
		o.replaced = true
		o.text = text
	}
	return c
}

// Delete removes the token at p.
func (c *Changeset) Delete(p token.Pos) *Changeset {
	return c.Replace(p, "")
}

// InsertBefore prepends text to the token at p. Calls accumulate.
func (c *Changeset) InsertBefore(p token.Pos, text string) *Changeset {
	if o := c.op(p); o != nil {
		o.before.WriteString(text)
	}
	return c
}

// InsertAfter appends text to the token at p. Calls accumulate.
func (c *Changeset) InsertAfter(p token.Pos, text string) *Changeset {
	if o := c.op(p); o != nil {
		o.after.WriteString(text)
	}
	return c
}

// NewlineBefore inserts the stream's line terminator before p.
func (c *Changeset) NewlineBefore(p token.Pos) *Changeset {
	return c.InsertBefore(p, c.stream.EOL())
}

// NewlineAfter inserts the stream's line terminator after p.
func (c *Changeset) NewlineAfter(p token.Pos) *Changeset {
	return c.InsertAfter(p, c.stream.EOL())
}

func (c *Changeset) Empty() bool {
	return c == nil || len(c.ops) == 0
}

// Edits materialises the changeset, ordered by position.
func (c *Changeset) Edits() []diag.TextEdit {
	if c.Empty() {
		return nil
	}
	positions := make([]token.Pos, 0, len(c.ops))
	for p := range c.ops {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	edits := make([]diag.TextEdit, 0, len(positions))
	for _, p := range positions {
		o := c.ops[p]
		tok := c.stream.At(p)
		body := tok.Text
		if o.replaced {
			body = o.text
		}
		newText := o.before.String() + body + o.after.String()
		if newText == tok.Text {
			continue
		}
		edits = append(edits, diag.TextEdit{
			Span:    tok.Span,
			NewText: newText,
			OldText: tok.Text,
		})
	}
	return edits
}

// Fix wraps the changeset into a single atomic fix. It returns nil when the
// changeset would not change anything.
func (c *Changeset) Fix(opts ...Option) *diag.Fix {
	edits := c.Edits()
	if len(edits) == 0 {
		return nil
	}
	return applyOptions(&diag.Fix{
		Title:         c.title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits:         edits,
	}, opts)
}

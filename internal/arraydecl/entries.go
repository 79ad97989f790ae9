package arraydecl

import (
	"fmt"
	"unicode/utf8"

	"arraylint/internal/diag"
	"arraylint/internal/token"
)

// EntryKind tells bare values from key/value pairs.
type EntryKind uint8

const (
	// EntryValue is a bare value, `[1, 2]`.
	EntryValue EntryKind = iota
	// EntryKeyValue is a `key => value` pair.
	EntryKeyValue
)

// Entry is one top-level element of a literal.
type Entry struct {
	Kind EntryKind
	// KeyStart and KeyEnd bound the key expression; NoPos for bare values.
	KeyStart token.Pos
	KeyEnd   token.Pos
	KeyText  string
	Arrow    token.Pos
	// Value is the first significant token of the value; NoPos when a
	// separator is followed by nothing.
	Value token.Pos
	// Comma ends the entry; NoPos for a last entry without a trailing comma.
	Comma token.Pos
}

// KeyLen is the width of the key text in runes.
func (e Entry) KeyLen() int {
	return utf8.RuneCountInString(e.KeyText)
}

// StructuralError marks a literal whose entries cannot be validated. A zero
// Code means the token stream carries no usable pairing and nothing is
// reported.
type StructuralError struct {
	Code diag.Code
	At   token.Pos
}

func (e *StructuralError) Error() string {
	if e.Code == diag.UnknownCode {
		return fmt.Sprintf("unpaired construct at token %d", e.At)
	}
	return fmt.Sprintf("%s at token %d", e.Code.ID(), e.At)
}

// Reportable reports whether the error maps to a violation.
func (e *StructuralError) Reportable() bool {
	return e != nil && e.Code != diag.UnknownCode
}

// segment is the run of top-level tokens between two commas.
type segment struct {
	from  token.Pos
	to    token.Pos // exclusive
	arrow token.Pos
	comma token.Pos
}

// Extract splits the literal into entries. Nested constructs are opaque:
// their commas and separators never split the outer literal. Mixing bare
// values and keyed entries aborts with a StructuralError.
func Extract(s *token.Stream, lit Literal) ([]Entry, *StructuralError) {
	var segs []segment
	cur := segment{from: lit.Open + 1, arrow: token.NoPos, comma: token.NoPos}
	ok := eachTopLevel(s, lit.Open+1, lit.Close, func(p token.Pos) {
		switch s.Kind(p) {
		case token.DoubleArrow:
			if !cur.arrow.IsValid() {
				cur.arrow = p
			}
		case token.Comma:
			cur.to, cur.comma = p, p
			segs = append(segs, cur)
			cur = segment{from: p + 1, arrow: token.NoPos, comma: token.NoPos}
		}
	})
	if !ok {
		return nil, &StructuralError{At: lit.Open}
	}
	cur.to = lit.Close
	segs = append(segs, cur)

	var (
		entries    []Entry
		keyUsed    bool
		singleUsed bool
	)
	for _, seg := range segs {
		if seg.arrow.IsValid() {
			if singleUsed {
				return nil, &StructuralError{Code: diag.ArrKeySpecified, At: seg.arrow}
			}
			keyUsed = true
			keyEnd := s.PrevNonWhitespace(seg.arrow-1, seg.from)
			if !keyEnd.IsValid() {
				// `=> value` with no key at all
				return nil, &StructuralError{Code: diag.ArrNoKeySpecified, At: seg.arrow}
			}
			keyStart := s.StartOfStatement(keyEnd)
			if keyStart < seg.from {
				keyStart = s.NextNonEmpty(seg.from, keyEnd+1)
			}
			entries = append(entries, Entry{
				Kind:     EntryKeyValue,
				KeyStart: keyStart,
				KeyEnd:   keyEnd,
				KeyText:  s.TextBetween(keyStart, keyEnd),
				Arrow:    seg.arrow,
				Value:    s.NextNonEmpty(seg.arrow+1, seg.to),
				Comma:    seg.comma,
			})
			continue
		}

		value := s.NextNonEmpty(seg.from, seg.to)
		if !value.IsValid() {
			// trailing comma, or an empty slot
			continue
		}
		if keyUsed {
			at := seg.comma
			if !at.IsValid() {
				at = value
			}
			return nil, &StructuralError{Code: diag.ArrNoKeySpecified, At: at}
		}
		singleUsed = true
		entries = append(entries, Entry{
			Kind:     EntryValue,
			KeyStart: token.NoPos,
			KeyEnd:   token.NoPos,
			Arrow:    token.NoPos,
			Value:    value,
			Comma:    seg.comma,
		})
	}
	return entries, nil
}

// keyed reports whether the entries are key/value pairs.
func keyed(entries []Entry) bool {
	return len(entries) > 0 && entries[0].Kind == EntryKeyValue
}

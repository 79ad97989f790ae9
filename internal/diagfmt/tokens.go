package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"arraylint/internal/source"
	"arraylint/internal/token"
)

type TokenOutput struct {
	Index   int         `json:"index"`
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Line    uint32      `json:"line"`
	Col     uint32      `json:"col"`
	Partner int         `json:"partner,omitempty"`
}

// FormatTokensPretty prints one token per line with its position and, for
// paired tokens, the index of the partner.
func FormatTokensPretty(w io.Writer, s *token.Stream) error {
	for i := 0; i < s.Len(); i++ {
		tok := s.At(token.Pos(i))
		if _, err := fmt.Fprintf(w, "%4d: %-18s %q at %d:%d", i, tok.Kind.String(), tok.Text, tok.Line, tok.Col); err != nil {
			return err
		}
		if tok.Partner.IsValid() {
			if _, err := fmt.Fprintf(w, " -> %d", tok.Partner); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the stream as a JSON array.
func FormatTokensJSON(w io.Writer, s *token.Stream) error {
	output := make([]TokenOutput, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		tok := s.At(token.Pos(i))
		out := TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
			Line:  tok.Line,
			Col:   tok.Col,
		}
		if tok.Partner.IsValid() {
			out.Partner = int(tok.Partner)
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

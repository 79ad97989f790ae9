// Package token defines the token model consumed by the array declaration
// engine.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Whitespace is a real token (not trivia); a whitespace token never spans
//     more than one line and, when it contains a newline, ends with it.
//   - Multi-line strings and heredocs are split into one token per line, all of
//     the same Kind, so a run of equal string kinds is one logical string.
//   - Partner links paired tokens in both directions; NoPos means the pairing
//     is unknown (unbalanced or malformed source).
//   - Tokens are immutable once a Stream is built.
package token

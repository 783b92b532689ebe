// Package scanner splits a tprint format string into tokens. It encapsulates
// the two-byte lookahead rules for placeholders and escaped braces so the
// printer only has to act on each token in order.
package scanner

import "strings"

// Kind identifies what a token stands for in the output.
type Kind byte

const (
	Literal      Kind = iota // text copied as-is
	Placeholder              // "{}"
	EscapedOpen              // "{{", renders "{"
	EscapedClose             // "}}", renders "}"
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	case EscapedOpen:
		return "escaped-open"
	case EscapedClose:
		return "escaped-close"
	}
	return "unknown"
}

// Token is one unit of a format string.
type Token struct {
	Kind Kind
	// Text is the output for the token: the literal run, or the single
	// brace of an escape. Empty for placeholders.
	Text string
	// Pos is the byte offset of the token in the format string.
	Pos int
}

// Cursor iterates left-to-right over a format string without backtracking.
// Pairs are consumed greedily and never overlap: "{{}}" yields EscapedOpen
// followed by EscapedClose, and "{{}" yields EscapedOpen then a literal "}".
type Cursor struct {
	src string
	pos int
}

// New creates a Cursor positioned at the start of format.
func New(format string) *Cursor {
	return &Cursor{src: format}
}

// Next returns the next token, or false once the format is exhausted.
func (c *Cursor) Next() (Token, bool) {
	if c.pos >= len(c.src) {
		return Token{}, false
	}
	start := c.pos
	if k, ok := pairAt(c.src, start); ok {
		c.pos += 2
		return Token{Kind: k, Text: pairText(k), Pos: start}, true
	}
	// A literal run always holds at least the current byte, which covers a
	// lone brace that starts no pair.
	end := start + 1
	for end < len(c.src) {
		if _, ok := pairAt(c.src, end); ok {
			break
		}
		end++
	}
	c.pos = end
	return Token{Kind: Literal, Text: c.src[start:end], Pos: start}, true
}

// Pos returns the byte offset of the next unread byte.
func (c *Cursor) Pos() int { return c.pos }

// Rest returns the unread part of the format.
func (c *Cursor) Rest() string { return c.src[c.pos:] }

// Src returns the full format being scanned.
func (c *Cursor) Src() string { return c.src }

// Peek returns the next unread byte without advancing, or (0, false) at end.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// LookingAt checks if the unread part of the format starts with prefix.
func (c *Cursor) LookingAt(prefix string) bool {
	return strings.HasPrefix(c.src[c.pos:], prefix)
}

// CountPlaceholders scans format to the end and reports how many
// placeholders it holds, using the same rules as Next.
func CountPlaceholders(format string) int {
	n := 0
	c := New(format)
	for tok, ok := c.Next(); ok; tok, ok = c.Next() {
		if tok.Kind == Placeholder {
			n++
		}
	}
	return n
}

// pairAt reports whether a recognised two-byte sequence starts at i.
// A brace in the last byte never forms a pair.
func pairAt(s string, i int) (Kind, bool) {
	if i+1 >= len(s) {
		return Literal, false
	}
	switch {
	case s[i] == '{' && s[i+1] == '}':
		return Placeholder, true
	case s[i] == '{' && s[i+1] == '{':
		return EscapedOpen, true
	case s[i] == '}' && s[i+1] == '}':
		return EscapedClose, true
	}
	return Literal, false
}

func pairText(k Kind) string {
	switch k {
	case EscapedOpen:
		return "{"
	case EscapedClose:
		return "}"
	}
	return ""
}

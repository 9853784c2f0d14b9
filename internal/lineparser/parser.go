// Package lineparser splits statement lines into fields.
//
// The parser is deliberately tolerant: it never fails. An unmatched bounding
// character leaves the rest of the line quoted, and field counts are not
// checked against the header.
package lineparser

import "strings"

// DefaultSeparator is the field separator used when none is configured.
const DefaultSeparator = ','

// Parser splits a line on a separator, optionally ignoring separators that
// appear between a pair of bounding characters (quotes).
type Parser struct {
	separator   rune
	bounding    rune
	hasBounding bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithSeparator sets the field separator.
func WithSeparator(sep rune) Option {
	return func(p *Parser) { p.separator = sep }
}

// WithBoundingCharacter enables quoting with the given character.
func WithBoundingCharacter(c rune) Option {
	return func(p *Parser) {
		p.bounding = c
		p.hasBounding = true
	}
}

// New returns a comma-separated parser with no quoting unless options say otherwise.
func New(opts ...Option) *Parser {
	p := &Parser{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Separator returns the configured separator.
func (p *Parser) Separator() rune { return p.separator }

// BoundingCharacter returns the quote character and whether one is set.
func (p *Parser) BoundingCharacter() (rune, bool) { return p.bounding, p.hasBounding }

// Parse splits line into trimmed fields. A line with N unquoted separators
// always yields N+1 fields; an empty line yields a single empty field.
// Bounding characters toggle quoting and are dropped from the output.
func (p *Parser) Parse(line string) []string {
	var fields []string
	var current strings.Builder
	quoted := false

	for _, c := range line {
		switch {
		case c == p.separator && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		case p.hasBounding && c == p.bounding:
			quoted = !quoted
		default:
			current.WriteRune(c)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

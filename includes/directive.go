package includes

import (
	"errors"
	"strings"
)

const directivePrefix = "#include "

var (
	// ErrNotDirective is returned for lines that are not include directives.
	ErrNotDirective = errors.New("not an include directive")
	// ErrMalformedDirective is returned when an opening delimiter has no matching closing delimiter.
	ErrMalformedDirective = errors.New("malformed include directive")
)

// DelimiterKind distinguishes quoted and angle-bracket includes.
// Both forms resolve the same way.
type DelimiterKind int

const (
	DelimiterQuote DelimiterKind = iota
	DelimiterAngle
)

func (k DelimiterKind) closer() byte {
	if k == DelimiterAngle {
		return '>'
	}
	return '"'
}

// Directive is one include directive found in a file.
type Directive struct {
	// Line is the 1-based line number. ParseDirective leaves it zero.
	Line int
	// Text is the include text between the delimiters.
	Text      string
	Delimiter DelimiterKind
	// Open and Close are the byte offsets of the delimiters within the line.
	Open  int
	Close int
}

// ParseDirective recognizes a single line of the form `#include "x"` or `#include <x>`.
// The prefix must start the line and be followed by exactly one space.
func ParseDirective(line string) (Directive, error) {
	if !strings.HasPrefix(line, directivePrefix) {
		return Directive{}, ErrNotDirective
	}

	rest := line[len(directivePrefix):]
	open := strings.IndexAny(rest, `"<`)
	if open < 0 {
		return Directive{}, ErrNotDirective
	}

	kind := DelimiterQuote
	if rest[open] == '<' {
		kind = DelimiterAngle
	}

	length := strings.IndexByte(rest[open+1:], kind.closer())
	if length <= 0 {
		// unterminated, or nothing between the delimiters
		return Directive{}, ErrMalformedDirective
	}

	openOffset := len(directivePrefix) + open
	return Directive{
		Text:      rest[open+1 : open+1+length],
		Delimiter: kind,
		Open:      openOffset,
		Close:     openOffset + 1 + length,
	}, nil
}

// ParseDirectives extracts every include directive from content. Lines holding a
// malformed directive are returned separately; they produce no directive.
func ParseDirectives(content []byte) (directives []Directive, malformedLines []int) {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		directive, err := ParseDirective(line)
		switch {
		case errors.Is(err, ErrMalformedDirective):
			malformedLines = append(malformedLines, i+1)
		case err != nil:
			continue
		default:
			directive.Line = i + 1
			directives = append(directives, directive)
		}
	}

	return directives, malformedLines
}

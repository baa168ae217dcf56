// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ErrorKind discriminates the failure modes of Parse.
type ErrorKind int

const (
	// InvalidLine reports a line that is not blank, not a section header,
	// and not a well-formed key-value pair.
	InvalidLine ErrorKind = iota + 1

	// DuplicateSection and MalformedSection are reserved for callers that
	// switch over ErrorKind. Parse does not currently produce them:
	// repeated section names are legal, and every line that fails to parse
	// is reported as InvalidLine.
	DuplicateSection
	MalformedSection
)

// A ParseError describes input that could not be parsed. Line is 1-based.
// Text holds the raw line before comment stripping and trimming.
type ParseError struct {
	Kind ErrorKind
	Line int
	Text string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case DuplicateSection:
		return fmt.Sprintf("parse ini: line %d: duplicate section %q", e.Line, e.Text)
	case MalformedSection:
		return fmt.Sprintf("parse ini: line %d: malformed section %q", e.Line, e.Text)
	default:
		return fmt.Sprintf("parse ini: line %d: invalid line %q", e.Line, e.Text)
	}
}

// Parse reads INI-formatted text into a Config. Parsing stops at the first
// line that cannot be interpreted and returns a *ParseError for it.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (*Config, error) {
	s := bufio.NewScanner(r)
	c := new(Config)
	var curr section
	open := false
	lineno := 1
	for ; s.Scan(); lineno++ {
		raw := s.Text()
		line := cleanLine(raw)
		switch {
		case line == "":
			// Blank or comment-only. Does not affect the open section.
		case line[0] == '[' && line[len(line)-1] == ']':
			if open {
				c.sections = append(c.sections, curr)
			}
			curr = section{name: strings.TrimSpace(line[1 : len(line)-1])}
			open = true
		default:
			key, value, ok := splitKeyValue(line)
			if !ok {
				return nil, &ParseError{Kind: InvalidLine, Line: lineno, Text: raw}
			}
			if !open {
				curr = section{name: DefaultSection}
				open = true
			}
			curr.values = append(curr.values, KeyValue{Key: key, Value: value})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse ini: line %d: %w", lineno, err)
	}
	if open {
		c.sections = append(c.sections, curr)
	}
	return c, nil
}

// ParseString parses in-memory text.
func ParseString(content string) (*Config, error) {
	return Parse(strings.NewReader(content))
}

// cleanLine strips everything from the first comment marker onward and trims
// surrounding whitespace. '#' is clipped first, then ';' on the remainder,
// so the line truncates at whichever marker appears earliest.
func cleanLine(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// splitKeyValue splits a cleaned line on '='. The line is well formed only if
// it contains exactly one '=' and the trimmed key is non-empty. The trimmed
// value may be empty.
func splitKeyValue(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 || strings.IndexByte(line[i+1:], '=') >= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[i+1:]), true
}

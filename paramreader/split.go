// Package paramreader reads "name=value" parameter text and infers a typed
// value for each parameter.
package paramreader

import (
	"regexp"
	"strings"
)

// lineRe matches a single "name=value" line. Names are restricted to ASCII
// alphanumerics; the value may be anything, including empty.
var lineRe = regexp.MustCompile(`^([0-9A-Za-z]+)=(.*)$`)

// Line is a candidate parameter split from the input text.
type Line struct {
	Number int    // 1-based line number in the input.
	Name   string // Left side of the '='.
	Raw    string // Unparsed right side of the '='.
}

// Split breaks input into name/value pairs in input order. Lines that do
// not look like "name=value" (blank lines included) are dropped.
func Split(input string) []Line {
	var lines []Line
	for i, text := range strings.Split(input, "\n") {
		text = strings.TrimSuffix(text, "\r")

		m := lineRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		lines = append(lines, Line{
			Number: i + 1,
			Name:   m[1],
			Raw:    m[2],
		})
	}
	return lines
}

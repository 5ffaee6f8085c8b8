package sqlgen

import (
	"strings"
	"unicode"
)

// cleanComment collapses whitespace so a multi-line comment fits on one
// SQL comment line, and truncates it to 200 characters.
func cleanComment(text string) string {
	text = strings.Join(strings.Fields(text), " ")

	if len(text) > 200 {
		text = text[:197] + "..."
	}
	return text
}

// ToGoName converts a job name (e.g. "customer_lookup") to an exported Go
// identifier (e.g. "CustomerLookup"). Names starting with a digit are
// prefixed with "Job".
func ToGoName(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	name := b.String()
	if name == "" {
		return "Job"
	}
	if unicode.IsDigit([]rune(name)[0]) {
		return "Job" + name
	}
	return name
}

// splitWords breaks an identifier string into its component words.
// It handles snake_case, kebab-case, dot-separated, and camelCase boundaries.
// Characters that are not valid in Go identifiers act as separators.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if current.Len() > 0 && i > 0 && unicode.IsLower(runes[i-1]) {
				flush()
			} else if current.Len() > 1 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

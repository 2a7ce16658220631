// Package quoting wraps strings in quotes and removes them again.
package quoting

import (
	"strings"
	"unicode/utf8"
)

// DefaultQuote is the quote character used by Quote and by Unquote when none is given.
const DefaultQuote = `"`

// Quote wraps s in double quotes, escaping every embedded double quote with a backslash.
func Quote(s string) string {
	return DefaultQuote + strings.ReplaceAll(s, DefaultQuote, `\`+DefaultQuote) + DefaultQuote
}

// Unquote strips quote from both ends of s when s starts and ends with it, then
// unescapes the first backslash-escaped quote. Only that first occurrence is
// unescaped. Input without surrounding quotes, or a quote that is not a single
// character, leaves s unchanged. Whitespace is not trimmed.
func Unquote(s, quote string) string {
	if utf8.RuneCountInString(quote) != 1 {
		return s
	}
	if !strings.HasPrefix(s, quote) || !strings.HasSuffix(s, quote) {
		return s
	}

	// A lone quote character is both the first and the last character.
	if len(s) == len(quote) {
		return ""
	}

	inner := s[len(quote) : len(s)-len(quote)]
	return strings.Replace(inner, `\`+quote, quote, 1)
}

// Package casing converts between separator-delimited and camelCase identifiers.
package casing

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_strutil/internal/pool"
)

// Separators lists the characters CamelCase treats as word boundaries.
const Separators = ":-_."

// DefaultSeparator is the separator Hyphenate inserts when none is given.
const DefaultSeparator = "-"

// separatorRun matches one or more separators followed by any character except a
// line terminator. Matching is leftmost-first, so a trailing "--" is consumed as a
// separator plus the final '-' as the following character.
var separatorRun = regexp.MustCompile(`[:\-_.]+([^\n\r\x{2028}\x{2029}])`)

// CamelCase replaces every separator run and the character following it with that
// character, upper-cased unless the run starts the string and upperFirst is false.
func CamelCase(s string, upperFirst bool) string {
	matches := separatorRun.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	// Casers keep state between calls and must not be shared across goroutines.
	upper := cases.Upper(language.Und)

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	sb.Grow(len(s))

	last := 0
	for _, m := range matches {
		sb.WriteString(s[last:m[0]])
		letter := s[m[2]:m[3]]
		if m[0] > 0 || upperFirst {
			letter = upper.String(letter)
		}
		sb.WriteString(letter)
		last = m[1]
	}
	sb.WriteString(s[last:])

	return sb.String()
}

// Hyphenate prefixes every ASCII upper-case letter with sep and lower-cases it.
// A single leading sep is removed from the result.
func Hyphenate(s, sep string) string {
	if s == "" {
		return s
	}

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	sb.Grow(len(s) + len(s)/2)

	// Bytes below utf8.RuneSelf never occur inside a multi-byte sequence.
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpper(c) {
			sb.WriteString(sep)
			sb.WriteByte(toLower(c))
			continue
		}
		sb.WriteByte(c)
	}

	return strings.TrimPrefix(sb.String(), sep)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func toLower(c byte) byte {
	return c + ('a' - 'A')
}

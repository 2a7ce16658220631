// strutil.go
// Package strutil provides small, stateless string utilities: camelCase and
// hyphenated case conversion, quoting and unquoting, positional {N} formatting,
// left and right padding with multi-character fills, a 32-bit polynomial hash,
// and a cosine similarity score over character-frequency vectors.
//
// Every function is pure and safe for concurrent use. For a configurable
// similarity metric with thresholds, normalization, logging and streaming input,
// see the pkg/cosine package.
package strutil

import (
	"github.com/baditaflorin/go_strutil/internal/core/casing"
	"github.com/baditaflorin/go_strutil/internal/core/cosine"
	"github.com/baditaflorin/go_strutil/internal/core/domain"
	"github.com/baditaflorin/go_strutil/internal/core/format"
	"github.com/baditaflorin/go_strutil/internal/core/hashing"
	"github.com/baditaflorin/go_strutil/internal/core/padding"
	"github.com/baditaflorin/go_strutil/internal/core/quoting"
)

// ErrInvalidArgument is returned by PadLeft and PadRight when the fill is empty or
// the target length exceeds MaxPadWidth.
var ErrInvalidArgument = domain.ErrInvalidArgument

const (
	// DefaultSeparator is the separator Hyphenate inserts.
	DefaultSeparator = casing.DefaultSeparator
	// DefaultQuote is the quote character Quote adds and Unquote strips.
	DefaultQuote = quoting.DefaultQuote
	// MaxPadWidth is the largest target length PadLeft and PadRight accept.
	MaxPadWidth = padding.MaxWidth
)

// CamelCase turns a string delimited by any run of ':', '-', '_' or '.' into
// camelCase: each run and the character after it become that character upper-cased.
// The first character stays as is unless upperFirst is set. A dangling separator at
// the end of the string is kept.
//
//	CamelCase("foo-bar", false) // "fooBar"
//	CamelCase("foo-bar", true)  // "FooBar"
func CamelCase(s string, upperFirst bool) string {
	return casing.CamelCase(s, upperFirst)
}

// Hyphenate converts a camelCase string to lower case words joined by '-'.
func Hyphenate(s string) string {
	return casing.Hyphenate(s, DefaultSeparator)
}

// HyphenateWith is Hyphenate with a custom separator. Each ASCII upper-case letter
// is lower-cased and prefixed with sep; one leading sep is then removed.
func HyphenateWith(s, sep string) string {
	return casing.Hyphenate(s, sep)
}

// Quote wraps s in double quotes and escapes every double quote inside it.
func Quote(s string) string {
	return quoting.Quote(s)
}

// Unquote removes surrounding double quotes. See UnquoteWith.
func Unquote(s string) string {
	return quoting.Unquote(s, DefaultQuote)
}

// UnquoteWith removes quoteChar from both ends of s if s starts and ends with it,
// then unescapes only the first backslash-escaped quoteChar. s is not trimmed.
func UnquoteWith(s, quoteChar string) string {
	return quoting.Unquote(s, quoteChar)
}

// Hash returns the Java String.hashCode of s: h = 31*h + c over UTF-16 code units
// with 32-bit wraparound. It is not a cryptographic hash.
func Hash(s string) int32 {
	return hashing.Hash(s)
}

// Format replaces {0}, {1}, ... in template with the corresponding argument.
// Placeholders without a matching non-nil argument are left as they are.
//
//	Format("{0} and {1}", "x", "y") // "x and y"
//	Format("{0} {2}", "x", "y")     // "x {2}"
func Format(template string, args ...interface{}) string {
	return format.Format(template, args...)
}

// PadLeft pads val on the left with padWith until it is maxLen characters long.
// If padWith does not fit evenly, its tail is used for the partial piece.
// Values that are already long enough are returned unchanged.
//
//	PadLeft(5, 4, "0")      // "0005"
//	PadLeft("ab", 5, "xy")  // "yxyab"
func PadLeft(val interface{}, maxLen int, padWith string) (string, error) {
	return padding.Left(val, maxLen, padWith)
}

// PadRight pads val on the right with padWith until it is maxLen characters long.
// If padWith does not fit evenly, its head is used for the partial piece.
//
//	PadRight("ab", 5, "xy") // "abxyx"
func PadRight(val interface{}, maxLen int, padWith string) (string, error) {
	return padding.Right(val, maxLen, padWith)
}

// Similarity returns the cosine similarity of the character-frequency vectors of
// a and b, in [0, 1]. Identical strings score 1; an empty string scores 0 against
// any non-empty one. Character order is ignored, so anagrams score 1. A single
// square root is taken over the product of the squared magnitudes, so results can
// differ in the last bit from dividing by the product of two magnitudes.
func Similarity(a, b string) float64 {
	return cosine.Similarity(a, b)
}

// Package stringify renders arbitrary values the way the formatting and padding
// helpers substitute them into text.
package stringify

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Exponent thresholds outside which floats are written in exponential notation.
const (
	maxDecimal = 1e21
	minDecimal = 1e-6
)

// Value returns the textual form of v. The second result is false for a nil
// value, which callers treat as absent.
func Value(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []byte:
		return string(t), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.FormatInt(int64(t), 10), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return Float(float64(t), 32), true
	case float64:
		return Float(t, 64), true
	case fmt.Stringer:
		return t.String(), true
	case error:
		return t.Error(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Float formats f with the shortest representation that round-trips at the given
// bit size. Magnitudes of 1e21 and above, or below 1e-6, use exponential notation
// with an unpadded exponent ("1e+21", "1.5e-7").
func Float(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Covers negative zero.
		return "0"
	}

	abs := math.Abs(f)
	if abs >= maxDecimal || abs < minDecimal {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, bitSize))
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// trimExponent removes the zero padding strconv adds to exponents ("e-07" -> "e-7").
func trimExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 > len(s) {
		return s
	}
	mantissa, sign, digits := s[:idx], s[idx+1], s[idx+2:]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}

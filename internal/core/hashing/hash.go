// Package hashing implements the 32-bit polynomial string hash used by Java's
// String.hashCode.
package hashing

import "unicode/utf16"

// Multiplier is the polynomial base of the hash.
const Multiplier = 31

// Hash computes h = h*31 + c over the UTF-16 code units of s with 32-bit signed
// wraparound after every step. The empty string hashes to 0.
func Hash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return hashUTF16(h, s[i:])
		}
		h = h*Multiplier + int32(c)
	}
	return h
}

// hashUTF16 continues the hash from h over the non-ASCII remainder of a string.
func hashUTF16(h int32, rest string) int32 {
	for _, u := range utf16.Encode([]rune(rest)) {
		h = h*Multiplier + int32(u)
	}
	return h
}

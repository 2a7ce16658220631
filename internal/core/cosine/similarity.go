// Package cosine scores strings by the cosine of their character-frequency vectors.
package cosine

import "unicode/utf8"

// Similarity returns the cosine similarity of the character-frequency vectors of a
// and b. Identical strings score exactly 1, including two empty strings; otherwise
// an empty string scores 0. Anagrams share a vector, so they score 1 as well.
// The score is dot/sqrt(|a|²·|b|²) with a single square root, so it can differ in
// the last bit from dot/(|a|·|b|) computed with two.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	if isASCII(a) && isASCII(b) {
		va, vb := newASCIIVector(a), newASCIIVector(b)
		return ratio(va.dot(vb), va.sumSquares(), vb.sumSquares())
	}

	return Cosine(NewVector(a), NewVector(b))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

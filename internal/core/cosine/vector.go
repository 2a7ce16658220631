package cosine

import (
	"math"
	"unicode/utf8"
)

// Vector is a bag-of-characters vector: occurrence count per character.
type Vector map[rune]int

// NewVector counts the characters of s.
func NewVector(s string) Vector {
	v := make(Vector)
	v.AddString(s)
	return v
}

// AddString adds the characters of s to the vector.
func (v Vector) AddString(s string) {
	for _, r := range s {
		v[r]++
	}
}

// Total returns the number of characters counted.
func (v Vector) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// Dot returns the dot product of v and other, summed over the keys of v.
func (v Vector) Dot(other Vector) int64 {
	var product int64
	for r, n := range v {
		product += int64(n) * int64(other[r])
	}
	return product
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(float64(v.sumSquares()))
}

// Equal reports whether v and other hold the same counts.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for r, n := range v {
		if m, ok := other[r]; !ok || m != n {
			return false
		}
	}
	return true
}

func (v Vector) sumSquares() int64 {
	var sum int64
	for _, n := range v {
		sum += int64(n) * int64(n)
	}
	return sum
}

// Cosine returns dot(a, b) / (|a| * |b|). Empty vectors score 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return ratio(a.Dot(b), a.sumSquares(), b.sumSquares())
}

// ratio divides the dot product by the product of both norms. Taking a single
// square root keeps equal vectors at exactly 1.
func ratio(dot, squaresA, squaresB int64) float64 {
	return float64(dot) / math.Sqrt(float64(squaresA)*float64(squaresB))
}

// asciiVector is the fixed-size counterpart of Vector for ASCII-only input.
type asciiVector [utf8.RuneSelf]int

func newASCIIVector(s string) *asciiVector {
	var v asciiVector
	for i := 0; i < len(s); i++ {
		v[s[i]]++
	}
	return &v
}

func (v *asciiVector) dot(other *asciiVector) int64 {
	var product int64
	for i, n := range v {
		product += int64(n) * int64(other[i])
	}
	return product
}

func (v *asciiVector) sumSquares() int64 {
	var sum int64
	for _, n := range v {
		sum += int64(n) * int64(n)
	}
	return sum
}

package hashing

import "testing"

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int32
	}{
		{"empty string", "", 0},
		{"single char", "a", 97},
		{"two chars", "ab", 3105},
		{"word", "hello", 99162322},
		{"overflow wraps", "hello world", 1794106052},
		{"negative result", "polygenelubricants", -2147483648},
		{"non-ascii", "é", 233},
		{"surrogate pair", "😀", 1772899},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Hash(tc.input); got != tc.expected {
				t.Errorf("Hash(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	input := "The quick brown fox jumps over the lazy dog"
	first := Hash(input)
	for i := 0; i < 10; i++ {
		if got := Hash(input); got != first {
			t.Fatalf("Hash changed between calls: %d != %d", got, first)
		}
	}
}

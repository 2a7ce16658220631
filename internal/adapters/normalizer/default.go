package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_strutil/internal/pool"
	"github.com/baditaflorin/go_strutil/internal/ports"
)

// IdentityNormalizer leaves text untouched, so scores match the plain Similarity function.
type IdentityNormalizer struct{}

// NewIdentityNormalizer creates a new identity normalizer.
func NewIdentityNormalizer() ports.Normalizer {
	return IdentityNormalizer{}
}

// Normalize returns text unchanged.
func (IdentityNormalizer) Normalize(text string) string {
	return text
}

// CaseFoldingNormalizer lower-cases text and replaces punctuation with spaces.
// Each rune is mapped independently, so chunks split on rune boundaries normalize
// the same as the whole text.
type CaseFoldingNormalizer struct {
	// Pre-computed replacement for ASCII characters (0-127)
	asciiTable [utf8.RuneSelf]byte
}

// NewCaseFoldingNormalizer creates a new case-folding normalizer.
func NewCaseFoldingNormalizer() ports.Normalizer {
	n := &CaseFoldingNormalizer{}
	for i := 0; i < utf8.RuneSelf; i++ {
		n.asciiTable[i] = byte(foldRune(rune(i)))
	}
	return n
}

// Normalize converts the input text to lower case and replaces punctuation with spaces.
func (n *CaseFoldingNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	sb.Grow(len(text))

	for _, r := range text {
		if r < utf8.RuneSelf {
			sb.WriteByte(n.asciiTable[r])
			continue
		}
		sb.WriteRune(foldRune(r))
	}
	return sb.String()
}

func foldRune(r rune) rune {
	if unicode.IsPunct(r) {
		return ' '
	}
	return unicode.ToLower(r)
}

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// IdentityNormalizerType leaves text untouched
	IdentityNormalizerType NormalizerType = iota
	// CaseFoldingNormalizerType lower-cases text and blanks punctuation
	CaseFoldingNormalizerType
)

// ParseNormalizerType maps a configuration name to a NormalizerType.
func ParseNormalizerType(name string) (NormalizerType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "identity":
		return IdentityNormalizerType, true
	case "fold", "casefold", "case-folding":
		return CaseFoldingNormalizerType, true
	default:
		return IdentityNormalizerType, false
	}
}

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case CaseFoldingNormalizerType:
		return NewCaseFoldingNormalizer()
	default:
		return NewIdentityNormalizer()
	}
}

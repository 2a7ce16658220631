package ports

// Normalizer rewrites text before it is turned into a character-frequency vector.
// Implementations must map runes independently so that streamed chunks normalize
// like the whole text.
type Normalizer interface {
	Normalize(text string) string
}

package ports

import (
	"context"
	"io"
	"time"
)

// VectorSource builds a character-frequency vector from a stream.
type VectorSource interface {
	// Build consumes reader and returns the vector along with the number of bytes read.
	Build(ctx context.Context, reader io.Reader) (map[rune]int, int64, error)
}

// StreamResult holds the outcome of a similarity computation on streams
type StreamResult struct {
	Name            string
	Score           float64
	Passed          bool
	OriginalLength  int
	AugmentedLength int
	Threshold       float64
	Details         map[string]interface{}
	// Additional fields relevant to streaming processing
	BytesProcessed int64
	ProcessingTime time.Duration
}

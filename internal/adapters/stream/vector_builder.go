package stream

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/baditaflorin/go_strutil/internal/core/cosine"
	"github.com/baditaflorin/go_strutil/internal/pool"
	"github.com/baditaflorin/go_strutil/internal/ports"
)

const (
	// DefaultChunkSize is the read size used when none is configured.
	DefaultChunkSize = 32 * 1024
	// MinChunkSize keeps room for a carried partial rune plus new input.
	MinChunkSize = 64
)

// VectorBuilder builds character-frequency vectors from readers chunk by chunk.
type VectorBuilder struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	buffers    *pool.BufferPool
}

// NewVectorBuilder creates a builder reading chunkSize bytes at a time.
func NewVectorBuilder(logger ports.Logger, normalizer ports.Normalizer, chunkSize int) *VectorBuilder {
	if chunkSize < MinChunkSize {
		chunkSize = MinChunkSize
	}
	return &VectorBuilder{
		logger:     logger,
		normalizer: normalizer,
		buffers:    pool.NewBufferPool(chunkSize),
	}
}

// Build consumes reader until EOF. Chunks are cut on rune boundaries, so the vector
// equals the one built from the whole text.
func (b *VectorBuilder) Build(ctx context.Context, reader io.Reader) (map[rune]int, int64, error) {
	buffer := b.buffers.Get()
	defer b.buffers.Put(buffer)
	buf := *buffer

	vector := make(cosine.Vector)
	var bytesRead int64
	carry := 0

	for {
		select {
		case <-ctx.Done():
			b.logger.Warn("Vector build cancelled", "bytes_read", bytesRead)
			return nil, bytesRead, ctx.Err()
		default:
		}

		n, err := reader.Read(buf[carry:])
		bytesRead += int64(n)
		data := buf[:carry+n]

		complete := len(data)
		if err == nil {
			complete = completePrefix(data)
		}
		if complete > 0 {
			vector.AddString(b.normalizer.Normalize(string(data[:complete])))
		}
		carry = copy(buf, data[complete:])

		if err == io.EOF {
			b.logger.Debug("Vector built from stream",
				"bytes_read", bytesRead,
				"distinct", len(vector),
			)
			return vector, bytesRead, nil
		}
		if err != nil {
			return nil, bytesRead, fmt.Errorf("read stream: %w", err)
		}
	}
}

// completePrefix returns the length of the longest prefix of data that does not end
// inside a multi-byte rune.
func completePrefix(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if utf8.FullRune(data[i:]) {
				return len(data)
			}
			return i
		}
	}
	return len(data)
}

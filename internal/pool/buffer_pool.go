package pool

import (
	"strings"
	"sync"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Size returns the length of the buffers handed out by the pool.
func (bp *BufferPool) Size() int {
	return bp.size
}

// Get retrieves a full-length buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	buffer := bp.pool.Get().(*[]byte)
	if cap(*buffer) < bp.size {
		*buffer = make([]byte, bp.size)
	}
	*buffer = (*buffer)[:bp.size]
	return buffer
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	bp.pool.Put(buffer)
}

// builders is shared by the string transformations.
var builders = NewStringBuilderPool()

// GetBuilder retrieves a StringBuilder from the shared pool.
func GetBuilder() *StringBuilder {
	return builders.Get()
}

// PutBuilder returns a StringBuilder to the shared pool.
func PutBuilder(sb *StringBuilder) {
	builders.Put(sb)
}

// StringBuilderPool implements a pool of strings.Builder for efficient string building
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new strings.Builder pool
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(StringBuilder)
			},
		},
	}
}

// Get retrieves a StringBuilder from the pool or creates a new one if none are available
func (sbp *StringBuilderPool) Get() *StringBuilder {
	return sbp.pool.Get().(*StringBuilder)
}

// Put returns a StringBuilder to the pool for reuse
func (sbp *StringBuilderPool) Put(sb *StringBuilder) {
	sb.Reset()
	sbp.pool.Put(sb)
}

// StringBuilder wraps strings.Builder with additional functionality
type StringBuilder struct {
	builder strings.Builder
}

// Grow reserves room for n more bytes
func (sb *StringBuilder) Grow(n int) {
	sb.builder.Grow(n)
}

// WriteRune writes a rune to the builder
func (sb *StringBuilder) WriteRune(r rune) {
	sb.builder.WriteRune(r)
}

// WriteByte writes a single byte to the builder
func (sb *StringBuilder) WriteByte(c byte) error {
	return sb.builder.WriteByte(c)
}

// WriteString writes a string to the builder
func (sb *StringBuilder) WriteString(s string) {
	sb.builder.WriteString(s)
}

// Len returns the number of accumulated bytes
func (sb *StringBuilder) Len() int {
	return sb.builder.Len()
}

// String returns the accumulated string
func (sb *StringBuilder) String() string {
	return sb.builder.String()
}

// Reset resets the builder for reuse
func (sb *StringBuilder) Reset() {
	sb.builder.Reset()
}

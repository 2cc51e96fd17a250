// Package pool provides pooled byte buffers for the in-memory encode paths.
package pool

import "sync"

const (
	// EncodeBufferDefaultSize is the initial capacity of a pooled buffer,
	// sized for a typical small geometry encode.
	EncodeBufferDefaultSize = 16 * 1024
	// EncodeBufferMaxThreshold is the largest capacity returned to the pool.
	// Buffers grown past it are dropped so one huge geometry does not pin
	// memory forever.
	EncodeBufferMaxThreshold = 4 * 1024 * 1024
)

// ByteBuffer is a reusable append-only byte buffer. It implements io.Writer
// so encoders can target it directly.
type ByteBuffer struct {
	B []byte
}

// Write appends data, growing the buffer as needed. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

var encodeBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, EncodeBufferDefaultSize)}
	},
}

// GetEncodeBuffer obtains an empty buffer from the pool.
func GetEncodeBuffer() *ByteBuffer {
	bb, _ := encodeBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutEncodeBuffer returns a buffer to the pool. Oversized buffers are
// dropped.
func PutEncodeBuffer(bb *ByteBuffer) {
	if cap(bb.B) > EncodeBufferMaxThreshold {
		return
	}
	encodeBufferPool.Put(bb)
}

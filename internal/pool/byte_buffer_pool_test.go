package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := &ByteBuffer{}

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = bb.Write([]byte(" world"))
	require.NoError(t, err)

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())
}

func TestByteBufferReset(t *testing.T) {
	bb := &ByteBuffer{}
	_, err := bb.Write([]byte("content"))
	require.NoError(t, err)

	before := cap(bb.B)
	bb.Reset()

	require.Zero(t, bb.Len())
	require.Equal(t, before, cap(bb.B))
}

func TestEncodeBufferPool(t *testing.T) {
	t.Run("Get returns an empty buffer", func(t *testing.T) {
		bb := GetEncodeBuffer()
		_, err := bb.Write([]byte("dirty"))
		require.NoError(t, err)
		PutEncodeBuffer(bb)

		again := GetEncodeBuffer()
		require.Zero(t, again.Len())
		PutEncodeBuffer(again)
	})

	t.Run("Oversized buffers are dropped", func(t *testing.T) {
		bb := &ByteBuffer{B: make([]byte, 0, EncodeBufferMaxThreshold+1)}

		// Must not panic; the buffer simply is not pooled again.
		PutEncodeBuffer(bb)
	})
}

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestByteBuffer_ExtendZero(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{0xFF})

	ext := bb.ExtendZero(8)
	require.Len(t, ext, 8)
	require.Equal(t, 9, bb.Len())
	for _, b := range ext {
		require.Equal(t, byte(0), b)
	}

	// Writes through the extension land in the buffer.
	ext[0] = 0xAB
	require.Equal(t, byte(0xAB), bb.Bytes()[1])
}

func TestContainerBufferPool_Reuse(t *testing.T) {
	bb := GetContainerBuffer()
	bb.MustWrite([]byte{1, 2, 3})
	PutContainerBuffer(bb)

	bb2 := GetContainerBuffer()
	require.Equal(t, 0, bb2.Len())
	PutContainerBuffer(bb2)
}

func TestContainerBufferPool_DropsOversized(t *testing.T) {
	bb := NewByteBuffer(ContainerBufferMaxThreshold * 2)
	// Should not panic; oversized buffers are silently dropped.
	PutContainerBuffer(bb)
	PutContainerBuffer(nil)
}

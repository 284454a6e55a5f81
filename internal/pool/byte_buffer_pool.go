package pool

import (
	"sync"
)

const (
	// ContainerBufferDefaultSize is the default capacity of pooled buffers
	// used to assemble geometry container payloads.
	ContainerBufferDefaultSize = 1024 * 16 // 16KiB

	// ContainerBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers are dropped so a single huge geometry does not pin
	// memory for the lifetime of the pool.
	ContainerBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ExtendZero grows the buffer by n zero bytes and returns the extension for
// in-place writes.
func (bb *ByteBuffer) ExtendZero(n int) []byte {
	start := len(bb.B)
	for cap(bb.B) < start+n {
		bb.B = append(bb.B[:cap(bb.B)], 0)
	}
	bb.B = bb.B[:start+n]
	ext := bb.B[start : start+n]
	for i := range ext {
		ext[i] = 0
	}

	return ext
}

var containerBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(ContainerBufferDefaultSize)
	},
}

// GetContainerBuffer retrieves a reset ByteBuffer from the pool.
//
// The caller must return it with PutContainerBuffer when done. Buffers whose
// contents outlive the call (e.g. output handed to the caller) must be copied
// out before the buffer is returned.
func GetContainerBuffer() *ByteBuffer {
	bb, _ := containerBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutContainerBuffer returns a ByteBuffer to the pool.
// Buffers that grew beyond ContainerBufferMaxThreshold are dropped.
func PutContainerBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > ContainerBufferMaxThreshold {
		return
	}

	containerBufferPool.Put(bb)
}

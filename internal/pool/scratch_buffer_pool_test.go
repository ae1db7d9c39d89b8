package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferMustWriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("abc"))
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte("abc"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 3)
}

func TestByteBufferGrowPreservesContent(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("hello"))
	bb.Grow(1024 * 1024)

	require.Equal(t, []byte("hello"), bb.Bytes())
	require.GreaterOrEqual(t, bb.Cap(), 1024*1024+5)
}

func TestByteBufferGrowNoopWhenCapacitySufficient(t *testing.T) {
	bb := NewByteBuffer(64)
	before := bb.Cap()
	bb.Grow(8)
	require.Equal(t, before, bb.Cap())
}

func TestByteBufferExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("xy"))
	bb.ExtendOrGrow(3)

	require.Equal(t, 5, bb.Len())
	require.Equal(t, byte('x'), bb.Bytes()[0])
	require.Equal(t, byte('y'), bb.Bytes()[1])
}

func TestByteBufferPoolGetPutRoundTrip(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "buffer should be reset before reuse")
}

func TestByteBufferPoolDiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 32)

	p.Put(bb) // should be discarded, not pooled
	p.Put(nil) // must not panic
}

func TestGetPutScratchBufferDefaultPool(t *testing.T) {
	bb := GetScratchBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("scratch"))
	PutScratchBuffer(bb)
}

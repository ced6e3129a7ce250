package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/juicy/value"
)

func TestRangeLenAndContains(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.Equal(t, int64(3), r.Len())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(1))
}

func TestSingleBufferByte(t *testing.T) {
	sb := NewSingleBuffer([]byte("hello"))

	res := sb.Byte(0)
	require.Equal(t, Ok, res.Outcome)
	assert.Equal(t, byte('h'), res.Byte)

	res = sb.Byte(4)
	require.Equal(t, Ok, res.Outcome)
	assert.Equal(t, byte('o'), res.Byte)

	res = sb.Byte(5)
	assert.Equal(t, Eof, res.Outcome)

	res = sb.Byte(-1)
	assert.Equal(t, Eof, res.Outcome)
}

func TestSingleBufferMaterializeIsZeroCopy(t *testing.T) {
	buf := []byte("hello world")
	sb := NewSingleBuffer(buf)

	v := sb.Materialize(Range{Start: 0, End: 5})
	s, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "hello", string(s))

	empty := sb.Materialize(Range{Start: 20, End: 30})
	assert.Equal(t, value.String(nil), empty)
}

func TestSingleBufferPushRangeClips(t *testing.T) {
	sb := NewSingleBuffer([]byte("abcdef"))
	var buf []byte
	sb.PushRange(Range{Start: -5, End: 3}, &buf)
	assert.Equal(t, []byte("abc"), buf)
}

func TestChunkListByteAwaitsUndeliveredBytes(t *testing.T) {
	cl := &ChunkList{}
	cl.Push(0, []byte("abc"))

	res := cl.Byte(1)
	require.Equal(t, Ok, res.Outcome)
	assert.Equal(t, byte('b'), res.Byte)

	res = cl.Byte(10)
	assert.Equal(t, AwaitInput, res.Outcome)
}

func TestChunkListPushRangeAcrossChunks(t *testing.T) {
	cl := &ChunkList{}
	cl.Push(0, []byte("abc"))
	cl.Push(3, []byte("def"))

	var buf []byte
	cl.PushRange(Range{Start: 1, End: 5}, &buf)
	assert.Equal(t, []byte("bcde"), buf)
}

func TestChunkListReleaseDropsFullyConsumedChunks(t *testing.T) {
	cl := &ChunkList{}
	cl.Push(0, []byte("abc"))
	cl.Push(3, []byte("def"))

	cl.Release(3)
	remaining := cl.Remaining()
	require.Len(t, remaining, 1)
	assert.Equal(t, Position(3), remaining[0].Offset)
	assert.Equal(t, []byte("def"), remaining[0].Data)
}

func TestChunkListMaterializeCopies(t *testing.T) {
	cl := &ChunkList{}
	cl.Push(0, []byte("hello"))

	v := cl.Materialize(Range{Start: 0, End: 5})
	s, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "hello", string(s))
}

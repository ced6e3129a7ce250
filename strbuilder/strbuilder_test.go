package strbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/value"
)

func TestBorrowedRangeStaysZeroCopy(t *testing.T) {
	p := input.NewSingleBuffer([]byte(`hello world`))
	b := New()
	b.AppendRange(p, input.Range{Start: 0, End: 5})

	start, ok := b.BorrowedStart()
	require.True(t, ok)
	assert.Equal(t, input.Position(0), start)

	v := b.Finalize(p)
	s, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "hello", string(s))
}

func TestSecondRangeForcesOwned(t *testing.T) {
	p := input.NewSingleBuffer([]byte(`hello world`))
	b := New()
	b.AppendRange(p, input.Range{Start: 0, End: 5})
	b.AppendRange(p, input.Range{Start: 6, End: 11})

	_, ok := b.BorrowedStart()
	assert.False(t, ok)

	v := b.Finalize(p)
	s, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "helloworld", string(s))
}

func TestEscapeForcesOwned(t *testing.T) {
	p := input.NewSingleBuffer([]byte(`tab`))
	b := New()
	b.AppendRange(p, input.Range{Start: 0, End: 1})
	b.AppendByte(p, '\t')
	b.AppendRange(p, input.Range{Start: 2, End: 3})

	v := b.Finalize(p)
	s, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "t\tb", string(s))
}

func TestAppendRuneEncodesUTF8(t *testing.T) {
	p := input.NewSingleBuffer(nil)
	b := New()
	b.AppendRune(p, 'é')

	v := b.Finalize(p)
	s, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "é", string(s))
}

func TestEmptyBuilderFinalizesToEmptyString(t *testing.T) {
	p := input.NewSingleBuffer(nil)
	b := New()

	v := b.Finalize(p)
	assert.Equal(t, value.String(nil), v)
}

func TestResetReturnsToEmpty(t *testing.T) {
	p := input.NewSingleBuffer([]byte("abc"))
	b := New()
	b.AppendRange(p, input.Range{Start: 0, End: 3})
	b.Reset()

	_, ok := b.BorrowedStart()
	assert.False(t, ok)
	assert.Equal(t, value.String(nil), b.Finalize(p))
}

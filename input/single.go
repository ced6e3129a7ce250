package input

import "github.com/flitsinc/juicy/value"

// SingleBuffer is the non-streaming input provider: the entire document is
// known up front. Positions past the end report Eof, never AwaitInput.
type SingleBuffer struct {
	buf []byte
}

// NewSingleBuffer wraps buf as a SingleBuffer provider.
func NewSingleBuffer(buf []byte) *SingleBuffer {
	return &SingleBuffer{buf: buf}
}

func (s *SingleBuffer) Byte(pos Position) ByteResult {
	if pos < 0 || int64(pos) >= int64(len(s.buf)) {
		return ByteResult{Outcome: Eof}
	}
	return ByteResult{Outcome: Ok, Byte: s.buf[pos]}
}

func (s *SingleBuffer) PushRange(r Range, buf *[]byte) {
	start, end := clip(r, 0, Position(len(s.buf)))
	if start >= end {
		return
	}
	*buf = append(*buf, s.buf[start:end]...)
}

func (s *SingleBuffer) Materialize(r Range) value.Value {
	start, end := clip(r, 0, Position(len(s.buf)))
	if start >= end {
		return value.String(nil)
	}
	// Zero-copy: the returned value aliases s.buf. Safe because SingleBuffer
	// is constructed from a caller-owned, never-mutated-in-place slice.
	return value.String(s.buf[start:end])
}

func clip(r Range, lo, hi Position) (Position, Position) {
	start, end := r.Start, r.End
	if start < lo {
		start = lo
	}
	if end > hi {
		end = hi
	}
	return start, end
}

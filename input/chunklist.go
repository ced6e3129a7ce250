package input

import (
	"sort"

	"github.com/flitsinc/juicy/value"
)

// chunk is one delivered span of the logical input stream, anchored at an
// absolute offset (spec.md §6.1's "(absolute_start_offset, bytes) pairs").
type chunk struct {
	start Position
	data  []byte
}

func (c chunk) end() Position { return c.start + Position(len(c.data)) }

// ChunkList is the streaming input provider: bytes arrive as a list of
// chunks with no gaps ahead of firstNeeded, and can be released once the
// adapter no longer needs to refer back to them.
type ChunkList struct {
	chunks []chunk
}

// NewChunkList builds a ChunkList from an initial set of (offset, bytes)
// pairs, as delivered to stream_parse_iter.
func NewChunkList(pairs ...struct {
	Offset Position
	Data   []byte
}) *ChunkList {
	cl := &ChunkList{}
	for _, p := range pairs {
		cl.Push(p.Offset, p.Data)
	}
	return cl
}

// Push appends a newly delivered chunk. Chunks must not overlap and should
// arrive in non-decreasing offset order, matching how the host accumulates
// stream_parse_iter's chunks argument.
func (cl *ChunkList) Push(offset Position, data []byte) {
	if len(data) == 0 {
		return
	}
	cl.chunks = append(cl.chunks, chunk{start: offset, data: data})
	sort.Slice(cl.chunks, func(i, j int) bool { return cl.chunks[i].start < cl.chunks[j].start })
}

// Release drops any chunk whose end is at or before upTo, implementing the
// "dropping chunks with end <= first_needed" safety property (spec.md §4.5,
// §8 property 5).
func (cl *ChunkList) Release(upTo Position) {
	kept := cl.chunks[:0]
	for _, c := range cl.chunks {
		if c.end() <= upTo {
			continue
		}
		kept = append(kept, c)
	}
	cl.chunks = kept
}

// Remaining returns the chunks still held, for reporting back to the host
// as remaining_chunks.
func (cl *ChunkList) Remaining() []struct {
	Offset Position
	Data   []byte
} {
	out := make([]struct {
		Offset Position
		Data   []byte
	}, len(cl.chunks))
	for i, c := range cl.chunks {
		out[i].Offset = c.start
		out[i].Data = c.data
	}
	return out
}

// find returns the chunk covering pos, if any.
func (cl *ChunkList) find(pos Position) (chunk, bool) {
	for _, c := range cl.chunks {
		if pos >= c.start && pos < c.end() {
			return c, true
		}
	}
	return chunk{}, false
}

func (cl *ChunkList) Byte(pos Position) ByteResult {
	c, ok := cl.find(pos)
	if !ok {
		return ByteResult{Outcome: AwaitInput}
	}
	return ByteResult{Outcome: Ok, Byte: c.data[pos-c.start]}
}

// PushRange appends r's bytes into buf, clipping any prefix/suffix that
// extends into territory not yet delivered. The caller (the string builder
// via the adapter) only ever asks for ranges it has already scanned past,
// so in practice nothing is clipped; the tolerance exists because spec.md
// §3.2 requires it.
func (cl *ChunkList) PushRange(r Range, buf *[]byte) {
	pos := r.Start
	for pos < r.End {
		c, ok := cl.find(pos)
		if !ok {
			return
		}
		segEnd := c.end()
		if segEnd > r.End {
			segEnd = r.End
		}
		*buf = append(*buf, c.data[pos-c.start:segEnd-c.start]...)
		pos = segEnd
	}
}

func (cl *ChunkList) Materialize(r Range) value.Value {
	var buf []byte
	cl.PushRange(r, &buf)
	return value.String(buf)
}

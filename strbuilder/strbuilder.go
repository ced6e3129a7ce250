// Package strbuilder implements the three-state string accumulator of
// spec.md §3.3: a decoded JSON string defers allocation for as long as it
// remains a single contiguous slice of the input, and only copies once an
// escape sequence or a second, disjoint range forces it.
package strbuilder

import (
	"unicode/utf8"

	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/value"
)

type state int

const (
	stateEmpty state = iota
	stateBorrowed
	stateOwned
)

// Builder is a String Pos-scoped accumulator; one Builder is used per
// string the parser is currently decoding (spec.md's StringPos values
// MapKey/ArrayElement/MapValue/Root just select which Sink call receives
// the finalized Value, they don't change how the Builder itself works).
type Builder struct {
	st       state
	borrowed input.Range
	owned    []byte
}

// New returns an empty Builder (the Empty state).
func New() *Builder {
	return &Builder{st: stateEmpty}
}

// Reset returns the Builder to Empty so it can be reused for the next
// string without allocating a new one.
func (b *Builder) Reset() {
	b.st = stateEmpty
	b.owned = b.owned[:0]
}

// AppendRange appends a raw, unescaped span of the input. The first call on
// an Empty builder transitions to BorrowedRange with no copy; any
// subsequent call (a second disjoint range) forces a copy into Owned.
func (b *Builder) AppendRange(p input.Provider, r input.Range) {
	switch b.st {
	case stateEmpty:
		b.st = stateBorrowed
		b.borrowed = r
	case stateBorrowed:
		b.copyBorrowedIntoOwned(p)
		p.PushRange(r, &b.owned)
	case stateOwned:
		p.PushRange(r, &b.owned)
	}
}

// AppendByte appends a single decoded byte (e.g. a simple \" \\ \/ \n
// escape). Any escape forces Owned since the decoded form now diverges from
// the raw input.
func (b *Builder) AppendByte(p input.Provider, c byte) {
	b.ensureOwned(p)
	b.owned = append(b.owned, c)
}

// AppendRune appends a decoded \uXXXX codepoint (including the second half
// of a surrogate pair), UTF-8 encoded.
func (b *Builder) AppendRune(p input.Provider, r rune) {
	b.ensureOwned(p)
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	b.owned = append(b.owned, buf[:n]...)
}

func (b *Builder) ensureOwned(p input.Provider) {
	if b.st == stateBorrowed {
		b.copyBorrowedIntoOwned(p)
		return
	}
	b.st = stateOwned
}

func (b *Builder) copyBorrowedIntoOwned(p input.Provider) {
	b.owned = b.owned[:0]
	p.PushRange(b.borrowed, &b.owned)
	b.st = stateOwned
}

// BorrowedStart reports the start of the still-unmaterialized borrowed
// range, if the builder hasn't been forced into Owned yet. A caller
// computing a chunk-release safe point (spec.md §4.5's first_needed) must
// not release input bytes at or after this position while it's in flight.
func (b *Builder) BorrowedStart() (input.Position, bool) {
	if b.st != stateBorrowed {
		return 0, false
	}
	return b.borrowed.Start, true
}

// Finalize converts the accumulated string into a host value: a zero-copy
// sub-binary when the builder never left BorrowedRange, or a copy of the
// owned buffer otherwise.
func (b *Builder) Finalize(p input.Provider) value.Value {
	switch b.st {
	case stateEmpty:
		return value.String(nil)
	case stateBorrowed:
		return p.Materialize(b.borrowed)
	default:
		out := make([]byte, len(b.owned))
		copy(out, b.owned)
		return value.String(out)
	}
}

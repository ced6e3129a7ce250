// Package input abstracts the byte source behind a position->byte lookup
// and a range->value materializer (spec.md §3.1-3.2), so the parser kernel
// never has to know whether it's reading one contiguous buffer or a list of
// chunks delivered over time.
package input

import "github.com/flitsinc/juicy/value"

// Position is an absolute byte offset from the start of the logical input
// stream, not the current chunk.
type Position int64

// Range is a half-open [Start, End) span of absolute positions.
type Range struct {
	Start, End Position
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int64 { return int64(r.End - r.Start) }

// Contains reports whether p falls within the range.
func (r Range) Contains(p Position) bool { return p >= r.Start && p < r.End }

// ByteOutcome is the closed result of Provider.Byte.
type ByteOutcome int

const (
	// Ok means the byte was returned.
	Ok ByteOutcome = iota
	// AwaitInput means pos lies past all chunks held so far (streaming
	// provider only; never returned by SingleBuffer).
	AwaitInput
	// Eof means pos lies past the end of a known-complete input
	// (SingleBuffer only).
	Eof
)

// ByteResult is the outcome of a single-byte lookup.
type ByteResult struct {
	Outcome ByteOutcome
	Byte    byte
}

// Provider is the bidirectional glue between the host's byte storage and the
// parser kernel's pull-based reads.
type Provider interface {
	// Byte looks up the byte at pos.
	Byte(pos Position) ByteResult
	// PushRange appends the bytes covered by r into buf, tolerating a range
	// that extends into not-yet-delivered territory: the caller is only
	// ever supposed to ask for fully-delivered ranges, but an out-of-bounds
	// prefix/suffix is silently clipped rather than panicking.
	PushRange(r Range, buf *[]byte)
	// Materialize produces a host value holding the bytes of r. The
	// single-buffer variant may return a zero-copy sub-view; the streaming
	// variant must copy since its backing chunks may be released later.
	Materialize(r Range) value.Value
}

// Package juicy is the entry-point surface of the decoder: ParseInit/
// ParseIter for plain (non-projected) decoding, StreamParseInit/
// StreamParseIter for streaming documents against a tree spec, and
// ValidateSpec for checking a spec's wire form ahead of time.
package juicy

import (
	"github.com/flitsinc/juicy/adapter"
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/value"
)

// PathStep and Yield are re-exported from adapter so callers never need to
// import it directly.
type PathStep = adapter.PathStep
type Yield = adapter.Yield

// OutcomeKind discriminates a non-streaming parse's result (spec.md §7's
// closed outcome sum).
type OutcomeKind int

const (
	// OutcomeOk means Value holds the fully decoded document.
	OutcomeOk OutcomeKind = iota
	// OutcomeIter means the budget elapsed; call ParseIter with the same
	// (or a grown) buffer and Continuation to resume.
	OutcomeIter
	// OutcomeAwaitInput never occurs in non-streaming mode (SingleBuffer
	// has no concept of missing bytes) but is kept in the sum for
	// symmetry with StreamOutcome.
	OutcomeAwaitInput
	// OutcomeUnexpected means Err holds a grammar violation
	// (*parser.UnexpectedByteError) or another non-recoverable error.
	OutcomeUnexpected
)

// Outcome is the result of ParseInit/ParseIter.
type Outcome struct {
	Kind         OutcomeKind
	Value        value.Value
	Continuation *Continuation
	Err          error
}

// StreamOutcomeKind discriminates a streaming parse's result.
type StreamOutcomeKind int

const (
	StreamOk StreamOutcomeKind = iota
	StreamIter
	StreamAwaitInput
	StreamUnexpected
)

// Chunk is one delivered span of the logical stream (spec.md §6.1's
// "(absolute_start_offset, bytes) pairs").
type Chunk struct {
	Offset input.Position
	Data   []byte
}

// StreamOutcome is the result of StreamParseIter.
type StreamOutcome struct {
	Kind  StreamOutcomeKind
	Value value.Value
	// Yields holds every streamed subtree produced during this call
	// (spec.md §3.5's Stream option).
	Yields []Yield
	// FirstNeeded is the earliest input position this continuation may
	// still need; the caller may release any held chunk whose end is at
	// or before this position (spec.md §4.5).
	FirstNeeded input.Position
	// RemainingChunks is the continuation's held input after this step,
	// for a caller that wants to know what it's still retaining.
	RemainingChunks []Chunk
	Continuation    *StreamContinuation
	Err             error
}

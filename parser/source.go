package parser

import "github.com/flitsinc/juicy/input"

// PeekOutcome is the closed result of a Source.PeekChar call.
type PeekOutcome int

const (
	// PeekOk means Byte holds the next unconsumed byte.
	PeekOk PeekOutcome = iota
	// PeekEof means the input is known-complete and exhausted
	// (single-buffer mode only).
	PeekEof
	// PeekBail means the source could not produce a byte right now; Bail
	// explains why.
	PeekBail
)

// PeekResult is the outcome of a single peek.
type PeekResult struct {
	Outcome PeekOutcome
	Byte    byte
	Bail    *Bail
}

// Source is what the parser kernel pulls bytes from. It is implemented by
// the source/sink adapter, which owns the input provider and the budget.
type Source interface {
	// Position returns the current absolute read position.
	Position() input.Position
	// Skip advances the read position by n bytes without re-validating
	// them; callers only skip bytes they've already successfully peeked.
	Skip(n int)
	// PeekChar looks at the byte at the current position without
	// consuming it.
	PeekChar() PeekResult
	// PeekSlice is an optional fast path for scanning ahead (e.g.
	// ASCII-only object keys) without one PeekChar call per byte. Honest
	// adapters may always return (nil, false); the parser must not assume
	// it is ever available (spec.md §9 Open Question 4).
	PeekSlice(n int) ([]byte, bool)
}

package parser

import (
	"fmt"

	"github.com/flitsinc/juicy/input"
)

// BailKind discriminates why a Run call suspended instead of erroring or
// completing (spec.md §7).
type BailKind int

const (
	// BailReschedule means the time budget elapsed.
	BailReschedule BailKind = iota
	// BailAwaitInput means the input provider has no byte at the current
	// position yet (streaming mode only).
	BailAwaitInput
)

// Bail is a non-error, structured suspension. It is returned up the call
// chain (wrapped as an error via errors.As) with the parser's entire state
// preserved, so a subsequent Run call continues from the identical
// position.
type Bail struct {
	Kind BailKind
}

func (b *Bail) Error() string {
	switch b.Kind {
	case BailReschedule:
		return "parser: bail: reschedule"
	case BailAwaitInput:
		return "parser: bail: await input"
	default:
		return "parser: bail: unknown"
	}
}

// UnexpectedByteError reports a grammar violation at a known position
// (spec.md §7's UnexpectedByte). It is non-recoverable for this parse.
type UnexpectedByteError struct {
	Pos    input.Position
	Reason string
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("parser: unexpected byte at %d: %s", e.Pos, e.Reason)
}

package parser

import (
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/numbers"
)

// StringPos distinguishes which role a string terminal is playing so the
// sink doesn't have to rescan parser state to tell a key from a value
// (spec.md §4.1).
type StringPos int

const (
	StringRoot StringPos = iota
	StringMapKey
	StringMapValue
	StringArrayElement
)

// Sink receives structural events from the parser kernel as it recognizes
// the document (spec.md §4.1). Every method may return an error wrapping a
// *Bail to suspend the parse (the current design never does so from the
// sink side — only Source.PeekChar bails — but the signature permits a
// future per-event yield point).
type Sink interface {
	PushMap(pos input.Position) error
	PushArray(pos input.Position) error
	PushNumber(pos input.Position, d numbers.Descriptor) error
	PushBool(pos input.Position, v bool) error
	PushNull(pos input.Position) error

	StartString(sp StringPos) error
	AppendStringRange(r input.Range) error
	AppendStringSingle(b byte) error
	AppendStringCodepoint(cp rune) error
	FinalizeString(sp StringPos) error

	FinalizeMap(pos input.Position) error
	FinalizeArray(pos input.Position) error

	PopIntoMap() error
	PopIntoArray() error
}

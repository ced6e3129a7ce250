package adapter

import (
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/numbers"
	"github.com/flitsinc/juicy/parser"
	"github.com/flitsinc/juicy/strbuilder"
	"github.com/flitsinc/juicy/value"
)

type frameKind int

const (
	frameMap frameKind = iota
	frameArray
)

// frame is one entry of Basic's output stack (spec.md §4.2's OutputStack):
// the container currently being built, plus (for a map) the key awaiting
// its value.
type frame struct {
	kind       frameKind
	mapVal     *value.Map
	arrVal     *value.Array
	pendingKey string
}

// Basic implements parser.Sink by building a single value.Value tree with
// no spec projection, the non-spec mode of spec.md §4.2.
type Basic struct {
	provider input.Provider
	stack    []frame
	curStr   *strbuilder.Builder

	result value.Value
	done   bool
}

// NewBasic returns a Basic sink reading string/number bytes from p.
func NewBasic(p input.Provider) *Basic {
	return &Basic{provider: p}
}

// Result returns the fully decoded document and true once the parse has
// completed a value at depth zero. Before that it returns (nil, false).
func (b *Basic) Result() (value.Value, bool) {
	return b.result, b.done
}

// EarliestBorrowed reports the start of the in-progress string's
// still-borrowed (not yet copied) range, if any, for first_needed
// computation (spec.md §4.5).
func (b *Basic) EarliestBorrowed() (input.Position, bool) {
	if b.curStr == nil {
		return 0, false
	}
	return b.curStr.BorrowedStart()
}

// SetProvider swaps the input.Provider a not-yet-finished parse reads
// from, used by juicy.ParseIter to hand a Continuation its caller's
// latest byte slice.
func (b *Basic) SetProvider(p input.Provider) { b.provider = p }

func (b *Basic) integrate(v value.Value) {
	if len(b.stack) == 0 {
		b.result = v
		b.done = true
		return
	}
	top := &b.stack[len(b.stack)-1]
	if top.kind == frameArray {
		top.arrVal.Append(v)
	} else {
		top.mapVal.Put(top.pendingKey, v)
		top.pendingKey = ""
	}
}

func (b *Basic) PushMap(pos input.Position) error {
	b.stack = append(b.stack, frame{kind: frameMap, mapVal: value.NewMap()})
	return nil
}

func (b *Basic) PushArray(pos input.Position) error {
	b.stack = append(b.stack, frame{kind: frameArray, arrVal: value.NewArray()})
	return nil
}

func (b *Basic) PushNumber(pos input.Position, d numbers.Descriptor) error {
	v, err := numbers.Decode(b.provider, d)
	if err != nil {
		return err
	}
	b.integrate(v)
	return nil
}

func (b *Basic) PushBool(pos input.Position, v bool) error {
	b.integrate(value.Bool(v))
	return nil
}

func (b *Basic) PushNull(pos input.Position) error {
	b.integrate(value.Null{})
	return nil
}

func (b *Basic) StartString(sp parser.StringPos) error {
	b.curStr = strbuilder.New()
	return nil
}

func (b *Basic) AppendStringRange(r input.Range) error {
	b.curStr.AppendRange(b.provider, r)
	return nil
}

func (b *Basic) AppendStringSingle(c byte) error {
	b.curStr.AppendByte(b.provider, c)
	return nil
}

func (b *Basic) AppendStringCodepoint(cp rune) error {
	b.curStr.AppendRune(b.provider, cp)
	return nil
}

func (b *Basic) FinalizeString(sp parser.StringPos) error {
	v := b.curStr.Finalize(b.provider)
	b.curStr = nil
	if sp == parser.StringMapKey {
		s, _ := v.(value.String)
		b.stack[len(b.stack)-1].pendingKey = string(s)
		return nil
	}
	b.integrate(v)
	return nil
}

func (b *Basic) FinalizeMap(pos input.Position) error {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.integrate(top.mapVal)
	return nil
}

func (b *Basic) FinalizeArray(pos input.Position) error {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.integrate(top.arrVal)
	return nil
}

// PopIntoMap and PopIntoArray are no-ops for Basic: integrate already
// folded the value into its parent at the moment it was produced
// (PushNumber/PushBool/PushNull/FinalizeString/FinalizeMap/FinalizeArray),
// since Basic has no path tracker whose position needs advancing
// afterward the way Spec's does.
func (b *Basic) PopIntoMap() error   { return nil }
func (b *Basic) PopIntoArray() error { return nil }

package adapter

import (
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/numbers"
	"github.com/flitsinc/juicy/parser"
	"github.com/flitsinc/juicy/strbuilder"
	"github.com/flitsinc/juicy/treespec"
	"github.com/flitsinc/juicy/value"
	"github.com/flitsinc/juicy/walker"
)

// specFrame is one entry of Spec's output stack: the container under
// construction, the spec node it matched (if any), and whatever this
// container's parent decided about it (stream out instead of keep,
// ignore_not_mapped drop it entirely).
type specFrame struct {
	kind   frameKind
	mapVal *value.Map
	arrVal *value.Array

	pendingKey    any
	pendingKeyRaw string
	pendingSkip   bool

	nodeId        treespec.NodeId
	matched       bool
	streamCollect bool
	dropWhenDone  bool
}

// Spec implements parser.Sink by projecting the document against a
// treespec.Spec as it parses (spec.md §3.6/§4.4): a node with Stream=true
// does not stream itself, it streams the completion of every descendant
// value that a spec node matches as an individual Yield with a Streamed{}
// sentinel left in its place, while its own completion (the container
// holding those sentinels) is collected normally into its parent. Values
// no spec node matches (inside an Any-matched container, or under a key a
// map_keys node does not list) are not yielded on their own; they stay in
// their enclosing value. struct_atom/
// atom_mappings/ignore_not_mapped are applied to matched map nodes, and
// everything outside the spec's description is still decoded and kept
// verbatim (an unmatched node behaves like Any).
type Spec struct {
	provider input.Provider
	tree     *treespec.Spec
	walker   *walker.Walker
	path     *walker.PathTracker

	stack  []specFrame
	curStr *strbuilder.Builder

	result value.Value
	done   bool
	yields []Yield
}

// NewSpec returns a Spec sink reading string/number bytes from p and
// projecting against tree.
func NewSpec(p input.Provider, tree *treespec.Spec) *Spec {
	return &Spec{provider: p, tree: tree, walker: walker.New(tree), path: walker.NewPathTracker()}
}

// Result returns the fully decoded (and possibly Streamed-sentineled)
// document once the parse has completed a value at depth zero.
func (s *Spec) Result() (value.Value, bool) { return s.result, s.done }

// DrainYields returns every Yield produced since the last call and clears
// the internal buffer, for a caller that wants to hand them to its own
// caller incrementally across resumptions.
func (s *Spec) DrainYields() []Yield {
	y := s.yields
	s.yields = nil
	return y
}

// EarliestBorrowed reports the start of the in-progress string's
// still-borrowed (not yet copied) range, if any, for first_needed
// computation (spec.md §4.5).
func (s *Spec) EarliestBorrowed() (input.Position, bool) {
	if s.curStr == nil {
		return 0, false
	}
	return s.curStr.BorrowedStart()
}

// SetProvider swaps the input.Provider a not-yet-finished parse reads
// from.
func (s *Spec) SetProvider(p input.Provider) { s.provider = p }

func (s *Spec) currentRef() walker.Ref {
	if len(s.stack) == 0 {
		return walker.RootRef()
	}
	top := &s.stack[len(s.stack)-1]
	if top.kind == frameArray {
		return walker.IndexRef()
	}
	return walker.KeyRef(top.pendingKeyRaw)
}

// childStreams reports whether a value matched at nodeId should be emitted
// as a Yield rather than collected: spec.md §4.3's rule is that Stream=true
// on a node streams out its descendants' completions, not its own, so this
// looks at nodeId's *parent* StreamCollect, never nodeId's own.
func (s *Spec) childStreams(nodeId treespec.NodeId) bool {
	node := s.tree.Node(nodeId)
	return s.tree.Node(node.Parent).Options.StreamCollect
}

func (s *Spec) topSkipAndClear() bool {
	if len(s.stack) == 0 {
		return false
	}
	top := &s.stack[len(s.stack)-1]
	d := top.pendingSkip
	top.pendingSkip = false
	return d
}

func (s *Spec) integrateInto(top *specFrame, v value.Value) {
	if top.kind == frameArray {
		top.arrVal.Append(v)
		return
	}
	top.mapVal.Put(top.pendingKey, v)
	top.pendingKey = nil
}

// finishValue folds a just-completed value (terminal or container) into
// its parent, or records it as the document result at depth zero. drop
// discards it instead (ignore_not_mapped); stream emits it as a Yield and
// leaves a Streamed{} sentinel behind. The JSON path is always advanced,
// even when dropping, since the underlying document structure doesn't
// change shape because of a projection decision.
func (s *Spec) finishValue(v value.Value, stream, drop bool) error {
	if drop {
		s.path.UpdateAfterTerminal()
		return nil
	}
	if len(s.stack) == 0 {
		if stream {
			s.yields = append(s.yields, Yield{Path: convertPath(s.path.Snapshot()), Value: v})
			s.result = value.Streamed{}
		} else {
			s.result = v
		}
		s.done = true
		s.path.UpdateAfterTerminal()
		return nil
	}
	top := &s.stack[len(s.stack)-1]
	if stream {
		s.yields = append(s.yields, Yield{Path: convertPath(s.path.Snapshot()), Value: v})
		s.integrateInto(top, value.Streamed{})
	} else {
		s.integrateInto(top, v)
	}
	s.path.UpdateAfterTerminal()
	return nil
}

func convertPath(entries []walker.PathEntry) []PathStep {
	out := make([]PathStep, len(entries))
	for i, e := range entries {
		if e.Kind == walker.EntryIndex {
			out[i] = PathStep{IsIndex: true, Index: e.Index}
		} else {
			out[i] = PathStep{Key: e.Key}
		}
	}
	return out
}

func (s *Spec) PushMap(pos input.Position) error {
	ref := s.currentRef()
	drop := s.topSkipAndClear()
	nodeId, matched := s.walker.EnterNonterminal(ref, treespec.VariantMap)
	stream := matched && s.childStreams(nodeId)
	s.stack = append(s.stack, specFrame{
		kind: frameMap, mapVal: value.NewMap(),
		nodeId: nodeId, matched: matched, streamCollect: stream, dropWhenDone: drop,
	})
	return nil
}

func (s *Spec) PushArray(pos input.Position) error {
	ref := s.currentRef()
	drop := s.topSkipAndClear()
	nodeId, matched := s.walker.EnterNonterminal(ref, treespec.VariantArray)
	stream := matched && s.childStreams(nodeId)
	s.stack = append(s.stack, specFrame{
		kind: frameArray, arrVal: value.NewArray(),
		nodeId: nodeId, matched: matched, streamCollect: stream, dropWhenDone: drop,
	})
	s.path.PushIndex(0)
	return nil
}

func (s *Spec) PushNumber(pos input.Position, d numbers.Descriptor) error {
	v, err := numbers.Decode(s.provider, d)
	if err != nil {
		return err
	}
	ref := s.currentRef()
	nodeId, matched := s.walker.TryChild(ref, treespec.VariantAny)
	stream := matched && s.childStreams(nodeId)
	drop := s.topSkipAndClear()
	return s.finishValue(v, stream, drop)
}

func (s *Spec) PushBool(pos input.Position, v bool) error {
	ref := s.currentRef()
	nodeId, matched := s.walker.TryChild(ref, treespec.VariantAny)
	stream := matched && s.childStreams(nodeId)
	drop := s.topSkipAndClear()
	return s.finishValue(value.Bool(v), stream, drop)
}

func (s *Spec) PushNull(pos input.Position) error {
	ref := s.currentRef()
	nodeId, matched := s.walker.TryChild(ref, treespec.VariantAny)
	stream := matched && s.childStreams(nodeId)
	drop := s.topSkipAndClear()
	return s.finishValue(value.Null{}, stream, drop)
}

func (s *Spec) StartString(sp parser.StringPos) error {
	s.curStr = strbuilder.New()
	return nil
}

func (s *Spec) AppendStringRange(r input.Range) error {
	s.curStr.AppendRange(s.provider, r)
	return nil
}

func (s *Spec) AppendStringSingle(c byte) error {
	s.curStr.AppendByte(s.provider, c)
	return nil
}

func (s *Spec) AppendStringCodepoint(cp rune) error {
	s.curStr.AppendRune(s.provider, cp)
	return nil
}

func (s *Spec) FinalizeString(sp parser.StringPos) error {
	v := s.curStr.Finalize(s.provider)
	s.curStr = nil

	if sp == parser.StringMapKey {
		keyStr := string(v.(value.String))
		var key any = keyStr
		drop := false
		if nodeId, ok := s.walker.Current(); ok {
			node := s.tree.Node(nodeId)
			if node.Variant == treespec.VariantMapKeys {
				if mapped, found := node.Options.AtomMappings[keyStr]; found {
					key = mapped
				} else if node.Options.IgnoreNotMapped {
					drop = true
				}
			}
		}
		top := &s.stack[len(s.stack)-1]
		top.pendingKey = key
		top.pendingKeyRaw = keyStr
		top.pendingSkip = drop
		s.path.PushKey(keyStr)
		return nil
	}

	ref := s.currentRef()
	nodeId, matched := s.walker.TryChild(ref, treespec.VariantAny)
	stream := matched && s.childStreams(nodeId)
	drop := s.topSkipAndClear()
	return s.finishValue(v, stream, drop)
}

const structKey = "__struct__"

func (s *Spec) FinalizeMap(pos input.Position) error {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.walker.ExitContainer()
	v := f.mapVal
	if f.matched {
		if atom := s.tree.Node(f.nodeId).Options.StructAtom; atom != nil {
			v.Put(structKey, *atom)
		}
	}
	return s.finishValue(v, f.streamCollect, f.dropWhenDone)
}

func (s *Spec) FinalizeArray(pos input.Position) error {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.path.Pop()
	s.walker.ExitContainer()
	return s.finishValue(f.arrVal, f.streamCollect, f.dropWhenDone)
}

// PopIntoMap and PopIntoArray are no-ops: finishValue already integrated
// the value and advanced the path tracker the moment it was produced,
// since the streaming/drop decision needs the walker position that exists
// at that exact point, not after.
func (s *Spec) PopIntoMap() error   { return nil }
func (s *Spec) PopIntoArray() error { return nil }

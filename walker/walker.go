package walker

import "github.com/flitsinc/juicy/treespec"

// refKind discriminates how a container/terminal event addresses itself
// against the current spec node's children.
type refKind int

const (
	refRoot refKind = iota
	refKey
	refIndex
)

// Ref identifies which child of the current spec node an incoming
// structural event is trying to match: the document root, an object key,
// or "any array index" (arrays don't address elements by position in the
// spec, every element shares one child spec).
type Ref struct {
	kind refKind
	key  string
}

// RootRef addresses the top-level document value.
func RootRef() Ref { return Ref{kind: refRoot} }

// KeyRef addresses an object key.
func KeyRef(key string) Ref { return Ref{kind: refKey, key: key} }

// IndexRef addresses "the next array element" (arrays have one child spec
// shared by every index).
func IndexRef() Ref { return Ref{kind: refIndex} }

// Walker is the stateful cursor of spec.md §3.6: current is the deepest
// matched spec node, heightOffCurrent counts how many containers deep we
// are below the last spec match (non-zero means "inside a region the spec
// does not describe").
type Walker struct {
	spec             *treespec.Spec
	current          treespec.NodeId
	heightOffCurrent int
}

// New returns a Walker positioned at the spec's sentinel, ready to match
// the document root.
func New(spec *treespec.Spec) *Walker {
	return &Walker{spec: spec, current: treespec.SentinelID}
}

// Current returns the deepest matched node, or (0, false) if we're inside
// spec-less territory (heightOffCurrent > 0).
func (w *Walker) Current() (treespec.NodeId, bool) {
	if w.heightOffCurrent > 0 {
		return 0, false
	}
	return w.current, true
}

// TryChild implements spec.md §4.4's try_child for a terminal value (a
// leaf that doesn't open a container): it attempts to descend to match
// ref against the current node's children and the given kind, then
// immediately "un-descends" since a terminal has no body to recurse into.
// It returns the matched node id, if any.
func (w *Walker) TryChild(ref Ref, kind treespec.VariantKind) (treespec.NodeId, bool) {
	if w.heightOffCurrent != 0 {
		return 0, false
	}
	child, ok := w.lookupChild(ref)
	if !ok {
		return 0, false
	}
	if !w.spec.Node(child).Matches(kind) {
		return 0, false
	}
	return child, true
}

// EnterNonterminal implements spec.md §4.4's enter_map/enter_array: it
// attempts to descend into a container-typed child. On a match, current
// advances to the child and it remains there (the container is now open);
// on a mismatch, heightOffCurrent increments to track that we've entered
// spec-less territory. Returns the matched node id, if any.
func (w *Walker) EnterNonterminal(ref Ref, kind treespec.VariantKind) (treespec.NodeId, bool) {
	if w.heightOffCurrent != 0 {
		w.heightOffCurrent++
		return 0, false
	}
	child, ok := w.lookupChild(ref)
	if !ok || !w.spec.Node(child).Matches(kind) {
		w.heightOffCurrent++
		return 0, false
	}
	w.current = child
	return child, true
}

// ExitContainer implements spec.md §4.4's exit_map/exit_array: pop one
// level, either by decrementing heightOffCurrent (we're leaving a region
// the spec didn't describe) or by resetting current to its parent.
func (w *Walker) ExitContainer() {
	if w.heightOffCurrent > 0 {
		w.heightOffCurrent--
		return
	}
	w.current = w.spec.Node(w.current).Parent
}

func (w *Walker) lookupChild(ref Ref) (treespec.NodeId, bool) {
	node := w.spec.Node(w.current)
	switch node.Variant {
	case treespec.VariantSentinel:
		if ref.kind != refRoot {
			return 0, false
		}
		return w.spec.ChildRoot(), true
	case treespec.VariantArray:
		if ref.kind != refIndex {
			return 0, false
		}
		return node.Child, true
	case treespec.VariantMap:
		if ref.kind != refKey {
			return 0, false
		}
		return node.Child, true
	case treespec.VariantMapKeys:
		if ref.kind != refKey {
			return 0, false
		}
		child, ok := node.Children[ref.key]
		return child, ok
	default: // VariantAny has no children
		return 0, false
	}
}

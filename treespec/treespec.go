// Package treespec implements the immutable, arena-allocated tree spec of
// spec.md §3.5: a node graph describing the expected shape of a JSON
// document and per-node projection options (renamed atoms, tagged
// structures, subtree streaming).
package treespec

import "github.com/flitsinc/juicy/value"

// NodeId indexes into a Spec's arena. NodeId 0 is always the sentinel;
// NodeId 1, when present, is the user-authored root.
type NodeId int

// SentinelID is the arena's fixed sentinel node.
const SentinelID NodeId = 0

// RootID is where a non-trivial spec's top-level node lives.
const RootID NodeId = 1

// VariantKind discriminates the closed set of node shapes.
type VariantKind int

const (
	VariantSentinel VariantKind = iota
	VariantAny
	VariantArray
	VariantMap
	VariantMapKeys
)

// Options carries the per-node projection knobs of spec.md §3.5.
type Options struct {
	// Stream, if true, causes each value below this node that a spec node
	// matches to be emitted as a Yield, with a Streamed{} sentinel
	// accumulated in its place. The node's own value is not yielded, and
	// values no spec node matches stay inside their enclosing value.
	Stream bool
	// StreamCollect is true if this node or any ancestor has Stream=true.
	// It is computed, not user-set, and is monotone along any
	// root-to-leaf path.
	StreamCollect bool
	// StructAtom, on a Map node, sets __struct__ = *StructAtom in the
	// finalized map.
	StructAtom *value.Atom
	// AtomMappings, on a MapKeys node, rewrites decoded key bytes matching
	// a map entry into the corresponding Atom instead of a binary key.
	AtomMappings map[string]value.Atom
	// IgnoreNotMapped drops keys absent from AtomMappings instead of
	// passing them through as binaries (spec.md §9 Open Question 2; see
	// DESIGN.md for the chosen interpretation).
	IgnoreNotMapped bool
}

// Node is one entry in the arena.
type Node struct {
	Variant VariantKind
	Options Options
	Parent  NodeId

	// Child is the payload for Array/Map nodes.
	Child NodeId
	// Children is the payload for MapKeys nodes: object key -> child node.
	Children map[string]NodeId
	// ChildOrder preserves the order keys were declared in the spec, for
	// deterministic iteration (error messages, debug tracing).
	ChildOrder []string
}

// Matches reports whether this node's variant can accept an incoming JSON
// value of the given structural kind (spec.md §4.4's "matches" predicate).
func (n *Node) Matches(kind VariantKind) bool {
	switch n.Variant {
	case VariantAny:
		return true
	case VariantArray:
		return kind == VariantArray
	case VariantMap, VariantMapKeys:
		return kind == VariantMap
	default:
		return false
	}
}

// Spec is an immutable arena of Nodes, built once (via FromJSON/FromYAML or
// the programmatic Builder) and then shared read-only by every walker that
// parses against it.
type Spec struct {
	nodes []Node
}

// Node returns the node at id. Panics on an out-of-range id: an
// InternalInvariant, since NodeId values only ever come from this package's
// own construction and traversal code.
func (s *Spec) Node(id NodeId) *Node {
	if int(id) < 0 || int(id) >= len(s.nodes) {
		panic("treespec: NodeId out of range")
	}
	return &s.nodes[id]
}

// Len returns the number of nodes in the arena, including the sentinel.
func (s *Spec) Len() int { return len(s.nodes) }

// ChildRoot returns the user-authored root node (always RootID when the
// spec is non-empty).
func (s *Spec) ChildRoot() NodeId {
	if len(s.nodes) <= int(RootID) {
		panic("treespec: spec has no root node")
	}
	return RootID
}

func newSpec() *Spec {
	s := &Spec{nodes: make([]Node, 1)}
	s.nodes[SentinelID] = Node{Variant: VariantSentinel, Parent: SentinelID}
	return s
}

// addNode appends a node to the arena and returns its id. StreamCollect is
// computed here from the parent, keeping the monotone-along-root-to-leaf
// invariant of spec.md §3.5 true by construction.
func (s *Spec) addNode(variant VariantKind, parent NodeId, opts Options) NodeId {
	if variant != VariantSentinel {
		parentNode := s.Node(parent)
		if parentNode.Options.StreamCollect || opts.Stream {
			opts.StreamCollect = true
		}
	}
	id := NodeId(len(s.nodes))
	s.nodes = append(s.nodes, Node{Variant: variant, Options: opts, Parent: parent})
	return id
}

package treespec

import "github.com/flitsinc/juicy/value"

// Builder assembles a Spec programmatically, mirroring how FromJSON builds
// one from the wire grammar but usable directly from Go (tests, or a host
// that prefers a typed API over authoring tuples).
type Builder struct {
	spec *Spec
}

// NewBuilder starts a fresh arena containing only the sentinel.
func NewBuilder() *Builder {
	return &Builder{spec: newSpec()}
}

// Any adds an Any node (matches any JSON value, no projection) under parent.
func (b *Builder) Any(parent NodeId, opts Options) NodeId {
	return b.spec.addNode(VariantAny, parent, opts)
}

// Array adds an Array node under parent; the caller must attach the child
// element spec with SetArrayChild.
func (b *Builder) Array(parent NodeId, opts Options) NodeId {
	return b.spec.addNode(VariantArray, parent, opts)
}

// SetArrayChild attaches child as arrayID's element spec.
func (b *Builder) SetArrayChild(arrayID, child NodeId) {
	n := b.spec.Node(arrayID)
	if n.Variant != VariantArray {
		panic("treespec: SetArrayChild on a non-Array node")
	}
	n.Child = child
}

// Map adds a Map node under parent (matches any JSON object, no per-key
// projection); the caller must attach the child value spec with
// SetMapChild.
func (b *Builder) Map(parent NodeId, opts Options) NodeId {
	return b.spec.addNode(VariantMap, parent, opts)
}

// SetMapChild attaches child as mapID's per-value spec.
func (b *Builder) SetMapChild(mapID, child NodeId) {
	n := b.spec.Node(mapID)
	if n.Variant != VariantMap {
		panic("treespec: SetMapChild on a non-Map node")
	}
	n.Child = child
}

// MapKeys adds a MapKeys node under parent (matches a JSON object,
// per-key child specs). Keys are attached with AddMapKeysChild.
func (b *Builder) MapKeys(parent NodeId, opts Options) NodeId {
	id := b.spec.addNode(VariantMapKeys, parent, opts)
	b.spec.Node(id).Children = make(map[string]NodeId)
	return id
}

// AddMapKeysChild attaches child as the spec for key under the MapKeys
// node mapKeysID, appending to ChildOrder.
func (b *Builder) AddMapKeysChild(mapKeysID NodeId, key string, child NodeId) {
	n := b.spec.Node(mapKeysID)
	if n.Variant != VariantMapKeys {
		panic("treespec: AddMapKeysChild on a non-MapKeys node")
	}
	if _, exists := n.Children[key]; !exists {
		n.ChildOrder = append(n.ChildOrder, key)
	}
	n.Children[key] = child
}

// Atom is a small convenience for building StructAtom/AtomMappings options
// without the caller spelling out &value.Atom(...) (which Go disallows
// taking the address of a conversion result).
func Atom(name string) *value.Atom {
	a := value.Atom(name)
	return &a
}

// Build finalizes and returns the assembled Spec.
func (b *Builder) Build() *Spec {
	return b.spec
}

package value

import "github.com/metalim/jsonmap"

// Map is the host map primitive of spec.md §6.2 (make_empty_map/map_put). It
// wraps an order-preserving JSON map so that re-encoding a decoded document
// reproduces the key order it was parsed in, rather than Go's randomized
// map iteration order.
type Map struct {
	m *jsonmap.Map
}

func (*Map) Kind() Kind { return KindMap }

// NewMap returns an empty host map (make_empty_map).
func NewMap() *Map {
	return &Map{m: jsonmap.New()}
}

// Put sets key to v, preserving first-insertion order for keys that don't
// already exist (map_put). The key may be a string (ordinary object key) or
// an Atom (atom_mappings rewrote it).
func (m *Map) Put(key any, v Value) {
	switch k := key.(type) {
	case Atom:
		m.m.Set(string(k), v)
	case string:
		m.m.Set(k, v)
	default:
		panic("value: Map.Put called with non-string/Atom key")
	}
}

// Get returns the value stored at key, if any.
func (m *Map) Get(key string) (Value, bool) {
	raw, ok := m.m.Get(key)
	if !ok {
		return nil, false
	}
	v, ok := raw.(Value)
	return v, ok
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []string {
	return m.m.Keys()
}

// Array is the host list primitive of spec.md §6.2
// (make_empty_list/list_prepend/list_reverse). Prepend and Reverse provide
// those primitives; the adapters build arrays with Append in document
// order and never reverse them.
type Array struct {
	items []Value
}

func (*Array) Kind() Kind { return KindArray }

// NewArray returns an empty host list (make_empty_list).
func NewArray() *Array {
	return &Array{}
}

// Prepend adds v to the front of the list (list_prepend).
func (a *Array) Prepend(v Value) {
	a.items = append(a.items, nil)
	copy(a.items[1:], a.items)
	a.items[0] = v
}

// Append adds v to the back of the list; used once the adapter already
// knows it is building left-to-right (e.g. basic mode keeps natural order
// instead of prepend+reverse — see adapter.Basic).
func (a *Array) Append(v Value) {
	a.items = append(a.items, v)
}

// Reverse reverses the list in place (list_reverse), used after a
// prepend-built list to restore document order.
func (a *Array) Reverse() {
	for i, j := 0, len(a.items)-1; i < j; i, j = i+1, j-1 {
		a.items[i], a.items[j] = a.items[j], a.items[i]
	}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at index i.
func (a *Array) At(i int) Value { return a.items[i] }

// Set overwrites the element at index i.
func (a *Array) Set(i int, v Value) { a.items[i] = v }

// Items returns the underlying slice in current order. Callers must not
// retain it past the next mutation.
func (a *Array) Items() []Value { return a.items }

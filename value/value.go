// Package value implements the host-runtime value surface that spec.md
// treats as an external collaborator (§6.2). Since this module ships as a
// standalone library rather than a native extension loaded into a foreign
// VM, the "host" primitives are concrete Go types instead of opaque FFI
// calls.
package value

// Kind identifies the concrete shape of a Value.
type Kind string

const (
	KindNull     Kind = "null"
	KindBool     Kind = "bool"
	KindInt64    Kind = "int64"
	KindFloat64  Kind = "float64"
	KindBigInt   Kind = "bigint"
	KindString   Kind = "string"
	KindAtom     Kind = "atom"
	KindMap      Kind = "map"
	KindArray    Kind = "array"
	KindStreamed Kind = "streamed"
)

// Value is any decoded host term. Implementations are the closed set below;
// callers type-switch on Kind() rather than using reflection.
type Value interface {
	Kind() Kind
}

// Atom is an interned-by-value wire name (object keys rewritten via
// atom_mappings, or __struct__ tags). Go has no NIF atom table to economize,
// so an Atom is simply a named string type compared by value.
type Atom string

func (Atom) Kind() Kind { return KindAtom }

// Null is the JSON null terminal.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is the JSON true/false terminal.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Int64 is a JSON integer that fits the host's native signed 64-bit range.
type Int64 int64

func (Int64) Kind() Kind { return KindInt64 }

// Float64 is any JSON number carrying a decimal point or exponent.
type Float64 float64

func (Float64) Kind() Kind { return KindFloat64 }

// String is a JSON string terminal, materialized either as a zero-copy
// sub-slice of the input or as a freshly allocated buffer.
type String []byte

func (String) Kind() Kind { return KindString }

// Streamed is the placeholder left in a container where a full subtree would
// otherwise go, once the subtree has instead been delivered as yields
// (spec.md's "Streamed sentinel").
type Streamed struct{}

func (Streamed) Kind() Kind { return KindStreamed }

func (v Null) String() string { return "null" }

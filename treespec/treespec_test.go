package treespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/juicy/value"
)

func TestFromJSONAnyNode(t *testing.T) {
	spec, err := FromJSON([]byte(`["any", {}]`))
	require.NoError(t, err)
	root := spec.Node(spec.ChildRoot())
	assert.Equal(t, VariantAny, root.Variant)
}

func TestFromJSONArrayWithChild(t *testing.T) {
	spec, err := FromJSON([]byte(`["array", {}, ["any", {}]]`))
	require.NoError(t, err)
	root := spec.Node(spec.ChildRoot())
	require.Equal(t, VariantArray, root.Variant)
	child := spec.Node(root.Child)
	assert.Equal(t, VariantAny, child.Variant)
}

func TestFromJSONMapKeysWithAtomMappings(t *testing.T) {
	raw := []byte(`["map_keys", {"atom_mappings": {"name": "name", "age": "age"}, "ignore_not_mapped": true}, {
		"name": ["any", {}],
		"age": ["any", {}]
	}]`)
	spec, err := FromJSON(raw)
	require.NoError(t, err)
	root := spec.Node(spec.ChildRoot())
	require.Equal(t, VariantMapKeys, root.Variant)
	assert.True(t, root.Options.IgnoreNotMapped)
	assert.Equal(t, value.Atom("name"), root.Options.AtomMappings["name"])
	assert.Equal(t, []string{"name", "age"}, root.ChildOrder)
}

func TestFromJSONStructAtom(t *testing.T) {
	raw := []byte(`["map", {"struct_atom": "point"}, ["any", {}]]`)
	spec, err := FromJSON(raw)
	require.NoError(t, err)
	root := spec.Node(spec.ChildRoot())
	require.NotNil(t, root.Options.StructAtom)
	assert.Equal(t, value.Atom("point"), *root.Options.StructAtom)
}

func TestFromJSONStreamCollectIsMonotone(t *testing.T) {
	raw := []byte(`["array", {"stream": true}, ["any", {}]]`)
	spec, err := FromJSON(raw)
	require.NoError(t, err)
	root := spec.Node(spec.ChildRoot())
	assert.True(t, root.Options.StreamCollect)
	child := spec.Node(root.Child)
	assert.True(t, child.Options.StreamCollect)
}

func TestFromJSONRejectsUnknownType(t *testing.T) {
	_, err := FromJSON([]byte(`["bogus", {}]`))
	require.Error(t, err)
	assert.IsType(t, &BadSpecError{}, err)
}

func TestFromJSONRejectsUnrecognizedOption(t *testing.T) {
	_, err := FromJSON([]byte(`["any", {"nonsense": true}]`))
	require.Error(t, err)
}

func TestFromJSONRejectsNonArrayTop(t *testing.T) {
	_, err := FromJSON([]byte(`{"type": "any"}`))
	require.Error(t, err)
}

func TestValidateDelegatesToFromJSON(t *testing.T) {
	assert.NoError(t, Validate([]byte(`["any", {}]`)))
	assert.Error(t, Validate([]byte(`["bogus", {}]`)))
}

func TestFromYAMLMatchesEquivalentJSON(t *testing.T) {
	yamlSpec := []byte(`
- array
- stream: true
- - any
  - {}
`)
	spec, err := FromYAML(yamlSpec)
	require.NoError(t, err)
	root := spec.Node(spec.ChildRoot())
	assert.Equal(t, VariantArray, root.Variant)
	assert.True(t, root.Options.Stream)
}

func TestNodeMatches(t *testing.T) {
	any := Node{Variant: VariantAny}
	assert.True(t, any.Matches(VariantArray))
	assert.True(t, any.Matches(VariantMap))

	arr := Node{Variant: VariantArray}
	assert.True(t, arr.Matches(VariantArray))
	assert.False(t, arr.Matches(VariantMap))

	mk := Node{Variant: VariantMapKeys}
	assert.True(t, mk.Matches(VariantMap))
	assert.False(t, mk.Matches(VariantArray))
}

func TestBuilderAssemblesEquivalentSpec(t *testing.T) {
	b := NewBuilder()
	arr := b.Array(SentinelID, Options{})
	elem := b.Any(arr, Options{})
	b.SetArrayChild(arr, elem)
	spec := b.Build()

	root := spec.Node(spec.ChildRoot())
	require.Equal(t, VariantArray, root.Variant)
	assert.Equal(t, VariantAny, spec.Node(root.Child).Variant)
}

func TestSpecNodePanicsOutOfRange(t *testing.T) {
	spec, err := FromJSON([]byte(`["any", {}]`))
	require.NoError(t, err)
	assert.Panics(t, func() { spec.Node(NodeId(999)) })
}

package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/juicy/treespec"
)

func mapKeysSpec(t *testing.T) *treespec.Spec {
	t.Helper()
	spec, err := treespec.FromJSON([]byte(`["map_keys", {}, {
		"name": ["any", {}],
		"tags": ["array", {}, ["any", {}]]
	}]`))
	require.NoError(t, err)
	return spec
}

func TestWalkerMatchesMappedKey(t *testing.T) {
	spec := mapKeysSpec(t)
	w := New(spec)

	root, ok := w.EnterNonterminal(RootRef(), treespec.VariantMap)
	require.True(t, ok)
	assert.Equal(t, spec.ChildRoot(), root)

	child, ok := w.TryChild(KeyRef("name"), treespec.VariantAny)
	require.True(t, ok)
	assert.NotZero(t, child)
}

func TestWalkerRejectsUnmappedKey(t *testing.T) {
	spec := mapKeysSpec(t)
	w := New(spec)
	_, ok := w.EnterNonterminal(RootRef(), treespec.VariantMap)
	require.True(t, ok)

	_, ok = w.TryChild(KeyRef("nope"), treespec.VariantAny)
	assert.False(t, ok)
}

func TestWalkerEntersSpeclessTerritoryAndRecovers(t *testing.T) {
	spec := mapKeysSpec(t)
	w := New(spec)
	_, ok := w.EnterNonterminal(RootRef(), treespec.VariantMap)
	require.True(t, ok)

	// "unmapped" isn't in atom_mappings/children: entering its nested array
	// should push us into spec-less territory.
	_, ok = w.EnterNonterminal(KeyRef("unmapped"), treespec.VariantArray)
	assert.False(t, ok)
	_, matched := w.Current()
	assert.False(t, matched)

	w.ExitContainer()
	_, matched = w.Current()
	assert.True(t, matched)
}

func TestWalkerArrayElementsShareOneChildSpec(t *testing.T) {
	spec := mapKeysSpec(t)
	w := New(spec)
	_, ok := w.EnterNonterminal(RootRef(), treespec.VariantMap)
	require.True(t, ok)

	arr, ok := w.EnterNonterminal(KeyRef("tags"), treespec.VariantArray)
	require.True(t, ok)
	assert.NotZero(t, arr)

	c1, ok := w.TryChild(IndexRef(), treespec.VariantAny)
	require.True(t, ok)
	c2, ok := w.TryChild(IndexRef(), treespec.VariantAny)
	require.True(t, ok)
	assert.Equal(t, c1, c2)
}

func TestWalkerExitContainerReturnsToParent(t *testing.T) {
	spec := mapKeysSpec(t)
	w := New(spec)
	_, _ = w.EnterNonterminal(RootRef(), treespec.VariantMap)
	before, _ := w.Current()

	_, ok := w.EnterNonterminal(KeyRef("tags"), treespec.VariantArray)
	require.True(t, ok)
	w.ExitContainer()

	after, matched := w.Current()
	require.True(t, matched)
	assert.Equal(t, before, after)
}

func TestPathTrackerIndexAdvancesInPlace(t *testing.T) {
	pt := NewPathTracker()
	pt.PushIndex(0)
	pt.UpdateAfterTerminal()
	last, ok := pt.Last()
	require.True(t, ok)
	assert.Equal(t, Index(1), last)
}

func TestPathTrackerKeyPopsAfterValue(t *testing.T) {
	pt := NewPathTracker()
	pt.PushKey("name")
	assert.Equal(t, 1, pt.Depth())
	pt.UpdateAfterTerminal()
	assert.Equal(t, 0, pt.Depth())
}

func TestPathTrackerSnapshotIsIndependentCopy(t *testing.T) {
	pt := NewPathTracker()
	pt.PushKey("a")
	snap := pt.Snapshot()
	pt.PushKey("b")
	assert.Len(t, snap, 1)
	assert.Equal(t, 2, pt.Depth())
}

func TestPathTrackerPopPanicsWhenEmpty(t *testing.T) {
	pt := NewPathTracker()
	assert.Panics(t, func() { pt.Pop() })
}

func TestPathTrackerUpdateAfterTerminalNoopAtRoot(t *testing.T) {
	pt := NewPathTracker()
	assert.NotPanics(t, func() { pt.UpdateAfterTerminal() })
	assert.Equal(t, 0, pt.Depth())
}

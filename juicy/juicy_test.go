package juicy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/juicy/juicy"
	"github.com/flitsinc/juicy/treespec"
	"github.com/flitsinc/juicy/value"
)

func TestParseInitCompletesSmallDocument(t *testing.T) {
	outcome := juicy.ParseInit([]byte(`{"a": 1, "b": [2, 3]}`))
	require.Equal(t, juicy.OutcomeOk, outcome.Kind)

	m, ok := outcome.Value.(*value.Map)
	require.True(t, ok)
	a, _ := m.Get("a")
	assert.Equal(t, value.Int64(1), a)
}

func TestParseInitRescheduleAndResume(t *testing.T) {
	doc := []byte(`{"a": 1, "b": 2, "c": 3}`)
	outcome := juicy.ParseInit(doc, juicy.WithBudget(1))
	require.Equal(t, juicy.OutcomeIter, outcome.Kind)
	require.NotNil(t, outcome.Continuation)

	for outcome.Kind == juicy.OutcomeIter {
		outcome = juicy.ParseIter(doc, outcome.Continuation)
	}
	require.Equal(t, juicy.OutcomeOk, outcome.Kind)

	m, ok := outcome.Value.(*value.Map)
	require.True(t, ok)
	c, _ := m.Get("c")
	assert.Equal(t, value.Int64(3), c)
}

func TestParseInitReportsGrammarError(t *testing.T) {
	outcome := juicy.ParseInit([]byte(`{"a": }`))
	require.Equal(t, juicy.OutcomeUnexpected, outcome.Kind)
	require.Error(t, outcome.Err)
}

func TestValidateSpec(t *testing.T) {
	assert.NoError(t, juicy.ValidateSpec([]byte(`["any", {}]`)))
	assert.Error(t, juicy.ValidateSpec([]byte(`["bogus", {}]`)))
}

func TestStreamParseIterDeliversYieldsAcrossChunks(t *testing.T) {
	tree, err := treespec.FromJSON([]byte(`["map", {}, ["array", {"stream": true}, ["any", {}]]]`))
	require.NoError(t, err)

	c := juicy.StreamParseInit(tree)
	doc := []byte(`{"items": [1, 2, 3]}`)

	outcome := juicy.StreamParseIter([]juicy.Chunk{{Offset: 0, Data: doc}}, c)
	require.Equal(t, juicy.StreamOk, outcome.Kind)
	require.Len(t, outcome.Yields, 3)
	assert.Equal(t, value.Int64(1), outcome.Yields[0].Value)
	assert.Equal(t, value.Int64(2), outcome.Yields[1].Value)
	assert.Equal(t, value.Int64(3), outcome.Yields[2].Value)

	m, ok := outcome.Value.(*value.Map)
	require.True(t, ok)
	items, _ := m.Get("items")
	arr, ok := items.(*value.Array)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, value.Streamed{}, arr.At(0))
}

func TestStreamParseIterAwaitsMoreInput(t *testing.T) {
	tree, err := treespec.FromJSON([]byte(`["any", {}]`))
	require.NoError(t, err)

	c := juicy.StreamParseInit(tree)
	outcome := juicy.StreamParseIter([]juicy.Chunk{{Offset: 0, Data: []byte(`{"a":`)}}, c)
	require.Equal(t, juicy.StreamAwaitInput, outcome.Kind)
	require.NotNil(t, outcome.Continuation)

	outcome = juicy.StreamParseIter([]juicy.Chunk{{Offset: 5, Data: []byte(`1}`)}}, c)
	require.Equal(t, juicy.StreamOk, outcome.Kind)
	m, ok := outcome.Value.(*value.Map)
	require.True(t, ok)
	a, _ := m.Get("a")
	assert.Equal(t, value.Int64(1), a)
}

func TestStreamParseIterReleasesFullyConsumedChunks(t *testing.T) {
	tree, err := treespec.FromJSON([]byte(`["any", {}]`))
	require.NoError(t, err)

	c := juicy.StreamParseInit(tree)
	outcome := juicy.StreamParseIter([]juicy.Chunk{{Offset: 0, Data: []byte(`42`)}}, c)
	require.Equal(t, juicy.StreamOk, outcome.Kind)
	assert.Empty(t, outcome.RemainingChunks)
}

func TestRegistryRoutesStreamParseIterByID(t *testing.T) {
	tree, err := treespec.FromJSON([]byte(`["any", {}]`))
	require.NoError(t, err)

	reg := juicy.NewRegistry(2)
	c := juicy.StreamParseInit(tree)
	reg.Register("doc-1", c)

	outcome, err := reg.StreamParseIter(context.Background(), "doc-1", []juicy.Chunk{{Offset: 0, Data: []byte(`7`)}})
	require.NoError(t, err)
	assert.Equal(t, juicy.StreamOk, outcome.Kind)
	assert.Equal(t, value.Int64(7), outcome.Value)

	reg.Forget("doc-1")
	_, err = reg.StreamParseIter(context.Background(), "doc-1", nil)
	assert.Error(t, err)
}

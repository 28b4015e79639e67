package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonpath "github.com/njchilds90/jsonpath-core"
)

func TestFindFirstMatchesFirstOfFind(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[1,2,3]`))
	require.NoError(t, err)

	expr := jsonpath.NewRoot().Array()
	all, err := jsonpath.Find(expr, doc)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	first, err := jsonpath.FindFirst(jsonpath.NewRoot().Array(), doc)
	require.NoError(t, err)
	assert.True(t, jsonpath.ValueEqual(all[0], first))
}

func TestFindFirstNotFoundOnEmptySequence(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[]`))
	require.NoError(t, err)

	_, err = jsonpath.FindFirst(jsonpath.NewRoot().Array(), doc)
	assert.True(t, jsonpath.IsNotFound(err))
}

func TestFindIterYieldsSameSequenceAsFind(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[1,2,3,4]`))
	require.NoError(t, err)

	expr := jsonpath.NewRoot().Array()
	want, err := jsonpath.Find(expr, doc)
	require.NoError(t, err)

	var got []jsonpath.Value
	for v, err := range jsonpath.FindIter(jsonpath.NewRoot().Array(), doc) {
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, jsonpath.ValueEqual(want[i], got[i]))
	}
}

func TestFindIterStopsWhenConsumerBreaks(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[1,2,3,4,5]`))
	require.NoError(t, err)

	var seen []jsonpath.Value
	for v, err := range jsonpath.FindIter(jsonpath.NewRoot().Array(), doc) {
		require.NoError(t, err)
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2)
}

func TestEvaluationDoesNotMutateDocument(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`{"a":[1,2,3],"b":{"c":4}}`))
	require.NoError(t, err)

	before, err := doc.MarshalJSON()
	require.NoError(t, err)

	_, err = jsonpath.Find(jsonpath.NewRoot().Search(jsonpath.NewName(nil)), doc)
	require.NoError(t, err)

	after, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestChainInvariantAcrossThreeNodes(t *testing.T) {
	a := jsonpath.NewRoot()
	b := a.Name(ptr("x"))
	c := b.Array()

	assert.Same(t, a, a.Begin())
	assert.Same(t, a, b.Begin())
	assert.Same(t, a, c.Begin())
	assert.Same(t, b, a.Next())
	assert.Same(t, c, b.Next())
	assert.Nil(t, c.Next())
}

// Scenario 1 (spec §8): $.a on {"a":1,"b":2} yields [1].
func TestScenarioFieldAccess(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)

	got, err := jsonpath.Find(jsonpath.NewRoot().Name(ptr("a")), doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, jsonpath.ValueEqual(got[0], jsonpath.Int(1)))
}

// Scenario 2 (spec §8): $[*] against a scalar root is suppressed to an
// empty result, not a hard error, since Array is chained.
func TestScenarioWildcardOnScalarRootIsEmpty(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`1`))
	require.NoError(t, err)

	got, err := jsonpath.Find(jsonpath.NewRoot().Array(), doc)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Scenario 3 (spec §8): $[:3:2] on [1,2,3,4] yields [1,3].
func TestScenarioStridedSlice(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[1,2,3,4]`))
	require.NoError(t, err)

	got, err := jsonpath.Find(jsonpath.NewRoot().ArraySlice(nil, jsonpath.IntBound(3), jsonpath.IntBound(2)), doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, jsonpath.ValueEqual(got[0], jsonpath.Int(1)))
	assert.True(t, jsonpath.ValueEqual(got[1], jsonpath.Int(3)))
}

// A lone (unchained) node's own NotFound is never suppressed, even though
// the same failure mid-chain would be.
func TestLoneNodeNotFoundIsNotSuppressed(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`{"a":1}`))
	require.NoError(t, err)

	_, err = jsonpath.Find(jsonpath.NewName(ptr("missing")), doc)
	assert.True(t, jsonpath.IsNotFound(err))
}

// A nested find's own chain fans out to several elements; one of them
// NotFound-ing partway through must not abort the rest of that fan-out.
// $.data[?(@==$.items[*].id)] against
// {"items":[{"name":"x"},{"id":5}],"data":[5,6]}: the Compare rhs chain's
// Array() fans out to two items, Name("id") NotFounds on the first
// ({"name":"x"}) but must still be tried against the second ({"id":5}),
// yielding 5 and making the predicate match 5 in $.data.
func TestNestedFindFanOutSurvivesPartialNotFound(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`{"items":[{"name":"x"},{"id":5}],"data":[5,6]}`))
	require.NoError(t, err)

	rhs := jsonpath.NewRoot().Name(ptr("items")).Array().Name(ptr("id"))
	expr := jsonpath.NewRoot().Name(ptr("data")).Predicate(jsonpath.NewSelf().Equal(rhs))

	got, err := jsonpath.Find(expr, doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, jsonpath.ValueEqual(got[0], jsonpath.Int(5)))
}

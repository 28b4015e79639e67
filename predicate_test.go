package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonpath "github.com/njchilds90/jsonpath-core"
)

func TestPredicateFiltersArrayByCompare(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[{"a":1},{"a":2},{}]`))
	require.NoError(t, err)

	expr := jsonpath.NewRoot().Predicate(jsonpath.NewName(ptr("a")).Equal(jsonpath.NewValue(jsonpath.Int(1))))
	got, err := jsonpath.Find(expr, doc)
	require.NoError(t, err)
	require.Len(t, got, 1)

	obj, ok := got[0].AsObject()
	require.True(t, ok)
	v, present := obj.Get("a")
	require.True(t, present)
	assert.True(t, jsonpath.ValueEqual(v, jsonpath.Int(1)))
}

func TestPredicateFiltersObjectByKeySubstring(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`{"book 1":1,"picture 2":2}`))
	require.NoError(t, err)

	expr := jsonpath.NewRoot().Predicate(jsonpath.NewContains(jsonpath.NewKey(), jsonpath.NewValue(jsonpath.String("book"))))
	got, err := jsonpath.Find(expr, doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, jsonpath.ValueEqual(got[0], jsonpath.Int(1)))
}

func TestPredicateOnScalarIsNotFound(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`1`))
	require.NoError(t, err)

	_, err = jsonpath.Find(jsonpath.NewPredicate(jsonpath.NewSelf()), doc)
	assert.True(t, jsonpath.IsNotFound(err))
}

func TestBraceChainedDoubleFilter(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`[100,99,50,1]`))
	require.NoError(t, err)

	inner := jsonpath.NewRoot().Predicate(jsonpath.NewSelf().LessThan(jsonpath.NewValue(jsonpath.Int(100))))
	expr := jsonpath.NewBrace(inner).Predicate(jsonpath.NewSelf().GreaterEqual(jsonpath.NewValue(jsonpath.Int(50))))

	got, err := jsonpath.Find(expr, doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, jsonpath.ValueEqual(got[0], jsonpath.Int(99)))
	assert.True(t, jsonpath.ValueEqual(got[1], jsonpath.Int(50)))
}

func TestSearchPreOrderTraversal(t *testing.T) {
	doc, err := jsonpath.Decode([]byte(`{"a":{"a":0}}`))
	require.NoError(t, err)

	got, err := jsonpath.Find(jsonpath.NewRoot().Search(jsonpath.NewName(ptr("a"))), doc)
	require.NoError(t, err)
	require.Len(t, got, 2)

	outer, ok := got[0].AsObject()
	require.True(t, ok)
	v, present := outer.Get("a")
	require.True(t, present)
	assert.True(t, jsonpath.ValueEqual(v, jsonpath.Int(0)))
	assert.True(t, jsonpath.ValueEqual(got[1], jsonpath.Int(0)))
}

func TestSearchWrapsPredicateInnerAsSingleton(t *testing.T) {
	// Because each visited node is wrapped in a singleton array when inner is a predicate
	// (the §9 open-question resolution), the predicate evaluates against
	// the visited node itself rather than iterating its children — so a
	// self-comparison predicate under Search finds every node, at any
	// depth, matching the target value.
	doc, err := jsonpath.Decode([]byte(`{"a":1,"b":{"a":2}}`))
	require.NoError(t, err)

	inner := jsonpath.NewPredicate(jsonpath.NewSelf().Equal(jsonpath.NewValue(jsonpath.Int(2))))
	got, err := jsonpath.Find(jsonpath.NewRoot().Search(inner), doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, jsonpath.ValueEqual(got[0], jsonpath.Int(2)))
}

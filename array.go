package jsonpath

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// SliceBound is one of Slice's start/stop/step payload slots: either a
// literal integer or a nested Expression resolved against the parent
// element on each evaluation (spec §4.2). A nil *SliceBound means the
// slot was omitted.
type SliceBound struct {
	hasLiteral bool
	literal    int
	expr       Expr
}

// IntBound builds a literal integer slice bound.
func IntBound(i int) *SliceBound { return &SliceBound{hasLiteral: true, literal: i} }

// ExprBound builds a slice bound resolved by evaluating expr against the
// parent element.
func ExprBound(expr Expr) *SliceBound { return &SliceBound{expr: expr} }

func (b *SliceBound) render() string {
	if b == nil {
		return ""
	}
	if b.hasLiteral {
		return strconv.Itoa(b.literal)
	}
	return FullExpression(b.expr)
}

// resolve returns the bound's integer value: the literal directly, or the
// first result of a nested find against parent, which must itself be an
// integer.
func (b *SliceBound) resolve(ctx EvalContext, parent Value) (int, bool, error) {
	if b == nil {
		return 0, false, nil
	}
	if b.hasLiteral {
		return b.literal, true, nil
	}
	results, err := find(b.expr, ctx, parent)
	if err != nil {
		if IsNotFound(err) {
			return 0, false, notFound("Slice")
		}
		return 0, false, err
	}
	if len(results) == 0 {
		return 0, false, notFound("Slice")
	}
	i, ok := results[0].AsInt()
	if !ok {
		return 0, false, notFound("Slice")
	}
	return int(i), true, nil
}

// ArrayNode is the Array variant: index, slice, or all-items selection
// over an array element (spec §3, §4.2).
type ArrayNode struct {
	link
	hasIndex bool
	index    int
	slice    *SliceNode // nested child; nil unless this Array wraps a Slice
}

func newArrayAllNode() *ArrayNode {
	n := &ArrayNode{}
	n.link.init(n)
	return n
}

func newArrayIndexNode(index int) *ArrayNode {
	n := &ArrayNode{hasIndex: true, index: index}
	n.link.init(n)
	return n
}

func newArraySliceNode(start, stop, step *SliceBound) *ArrayNode {
	s := newSliceNode(start, stop, step)
	n := &ArrayNode{slice: s}
	n.link.init(n)
	return n
}

// NewArrayAll constructs a standalone Array node selecting every item.
func NewArrayAll() Expr { return newArrayAllNode() }

// NewArrayAt constructs a standalone Array node selecting one (possibly
// negative) index.
func NewArrayAt(index int) Expr { return newArrayIndexNode(index) }

// NewArraySlice constructs a standalone Array node wrapping a Slice
// selection.
func NewArraySlice(start, stop, step *SliceBound) Expr {
	return newArraySliceNode(start, stop, step)
}

func (n *ArrayNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	arr, ok := elem.AsArray()
	if n.slice != nil {
		return n.slice.Match(ctx, elem)
	}
	if !ok {
		return nil, notFound("Array")
	}
	if !n.hasIndex {
		return slices.Clone(arr), nil
	}
	i := normalizeIndex(n.index, len(arr))
	if i < 0 || i >= len(arr) {
		return []Value{}, nil
	}
	return []Value{arr[i]}, nil
}

func (n *ArrayNode) PartialExpression() string {
	switch {
	case n.slice != nil:
		return "[" + n.slice.PartialExpression() + "]"
	case n.hasIndex:
		return "[" + strconv.Itoa(n.index) + "]"
	default:
		return "[*]"
	}
}

func (n *ArrayNode) NoSeparator() bool { return true }

// SliceNode is the Slice payload of an Array node (invariant 5: it never
// appears outside one). It is a nested child, not independently
// chainable.
type SliceNode struct {
	link
	start, stop, step *SliceBound
}

func newSliceNode(start, stop, step *SliceBound) *SliceNode {
	n := &SliceNode{start: start, stop: stop, step: step}
	n.link.init(n)
	return n
}

func (n *SliceNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	arr, ok := elem.AsArray()
	if !ok {
		return nil, notFound("Slice")
	}
	length := len(arr)

	start, _, err := n.start.resolve(ctx, ctx.Parent())
	if err != nil {
		return nil, err
	}
	if n.start == nil {
		start = 0
	}
	stop, _, err := n.stop.resolve(ctx, ctx.Parent())
	if err != nil {
		return nil, err
	}
	if n.stop == nil {
		stop = length
	}
	step, _, err := n.step.resolve(ctx, ctx.Parent())
	if err != nil {
		return nil, err
	}
	if n.step == nil {
		step = 1
	}

	idx := sliceIndices(length, start, stop, step)
	out := make([]Value, len(idx))
	for i, j := range idx {
		out[i] = arr[j]
	}
	return out, nil
}

func (n *SliceNode) PartialExpression() string {
	return n.start.render() + ":" + n.stop.render() + ":" + n.step.render()
}

// normalizeIndex resolves a possibly-negative index against length,
// Python-list style, without clamping — callers decide what an
// out-of-range result means.
func normalizeIndex(i, length int) int {
	if i < 0 {
		return i + length
	}
	return i
}

// sliceIndices returns the ordered list of array indices selected by
// start:stop:step, following Python list-slicing semantics (negative
// index normalization, clamping, and support for a negative step).
func sliceIndices(n, start, stop, step int) []int {
	if step == 0 {
		step = 1
	}
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}

	var idx []int
	if step > 0 {
		if start < 0 {
			start = 0
		}
		if start > n {
			start = n
		}
		if stop < 0 {
			stop = 0
		}
		if stop > n {
			stop = n
		}
		for i := start; i < stop; i += step {
			idx = append(idx, i)
		}
		return idx
	}

	if start < -1 {
		start = -1
	}
	if start >= n {
		start = n - 1
	}
	if stop < -1 {
		stop = -1
	}
	if stop >= n {
		stop = n - 1
	}
	for i := start; i > stop; i += step {
		idx = append(idx, i)
	}
	return idx
}

package jsonpath

// SearchNode is the Search variant: unbounded recursive descent. At every
// node it visits — starting with elem itself — it applies inner in the
// driver's own (chained) discipline, not a nested find, so the visit's
// suppression behavior matches whatever the surrounding evaluation is
// already doing (spec §4.2).
type SearchNode struct {
	link
	inner Expr
}

func newSearchNode(inner Expr) *SearchNode {
	n := &SearchNode{inner: inner}
	n.link.init(n)
	return n
}

// NewSearch constructs a standalone Search node.
func NewSearch(inner Expr) Expr { return newSearchNode(inner) }

func (n *SearchNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	var acc []Value
	if err := n.visit(ctx, elem, &acc); err != nil {
		return nil, err
	}
	if acc == nil {
		acc = []Value{}
	}
	return acc, nil
}

// visit applies inner to visited, then descends into visited's children
// (array items or object field values, in order), binding context.parent
// to visited for that descent.
func (n *SearchNode) visit(ctx EvalContext, visited Value, acc *[]Value) error {
	input := visited
	if _, ok := n.inner.(*PredicateNode); ok {
		// The source wraps the element in a singleton array before the
		// initial visit when inner is a Predicate, so its per-item
		// iteration begins at visited itself (§9 open question,
		// resolved in favor of preserving this behavior).
		input = Array([]Value{visited})
	}

	results, err := dfs(n.inner.Begin(), ctx, []Value{input})
	if err != nil && !IsNotFound(err) {
		return err
	}
	if err == nil {
		*acc = append(*acc, results...)
	}

	childCtx := ctx.WithParent(visited)
	switch visited.Kind() {
	case KindArray:
		arr, _ := visited.AsArray()
		for _, item := range arr {
			if err := n.visit(childCtx, item, acc); err != nil {
				return err
			}
		}
	case KindObject:
		obj, _ := visited.AsObject()
		for p := obj.Oldest(); p != nil; p = p.Next() {
			if err := n.visit(childCtx, p.Value, acc); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *SearchNode) PartialExpression() string {
	return ".." + FullExpression(n.inner)
}

func (n *SearchNode) NoSeparator() bool { return true }

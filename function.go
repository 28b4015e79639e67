package jsonpath

// ContainsNode is the Function::Contains variant: a substring/element/key
// membership test between inner's result and target's result (spec
// §4.2).
type ContainsNode struct {
	link
	inner  Expr
	target Expr
}

func newContainsNode(inner, target Expr) *ContainsNode {
	n := &ContainsNode{inner: inner, target: target}
	n.link.init(n)
	return n
}

// NewContains constructs a standalone Function::Contains node.
func NewContains(inner, target Expr) Expr { return newContainsNode(inner, target) }

func (n *ContainsNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	containerResults, err := find(n.inner, ctx, elem)
	if err != nil {
		if IsNotFound(err) {
			return []Value{}, nil
		}
		return nil, err
	}
	if len(containerResults) == 0 {
		return []Value{}, nil
	}

	needleResults, err := find(n.target, ctx, elem)
	if err != nil {
		if IsNotFound(err) {
			return []Value{}, nil
		}
		return nil, err
	}
	if len(needleResults) == 0 {
		return []Value{}, nil
	}

	return []Value{Bool(Contains(containerResults[0], needleResults[0]))}, nil
}

func (n *ContainsNode) PartialExpression() string {
	return "contains(" + FullExpression(n.inner) + ", " + FullExpression(n.target) + ")"
}

// NotNode is the Function::Not variant: element-wise boolean negation of
// inner's results.
type NotNode struct {
	link
	inner Expr
}

func newNotNode(inner Expr) *NotNode {
	n := &NotNode{inner: inner}
	n.link.init(n)
	return n
}

// NewNot constructs a standalone Function::Not node.
func NewNot(inner Expr) Expr { return newNotNode(inner) }

func (n *NotNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	results, err := find(n.inner, ctx, elem)
	if err != nil {
		if IsNotFound(err) {
			// inner found nothing to negate at all (e.g. a missing
			// field) — treat the absence itself as the one implicit
			// falsy value, so negating it yields true (spec §8
			// scenario 8: not(enable) on a record with no "enable"
			// field passes the predicate).
			return []Value{Bool(true)}, nil
		}
		return nil, err
	}
	if len(results) == 0 {
		return []Value{Bool(true)}, nil
	}
	out := make([]Value, len(results))
	for i, v := range results {
		out[i] = Bool(!v.Truthy())
	}
	return out, nil
}

func (n *NotNode) PartialExpression() string {
	return "not(" + FullExpression(n.inner) + ")"
}

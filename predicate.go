package jsonpath

// PredicateNode is the Predicate variant: filters an array or object by
// the truthiness of inner evaluated once per (key, value) pair, with
// context.self bound to that pair for the duration (spec §4.2).
type PredicateNode struct {
	link
	inner Expr
}

func newPredicateNode(inner Expr) *PredicateNode {
	n := &PredicateNode{inner: inner}
	n.link.init(n)
	return n
}

// NewPredicate constructs a standalone Predicate node.
func NewPredicate(inner Expr) Expr { return newPredicateNode(inner) }

func (n *PredicateNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	var out []Value

	switch elem.Kind() {
	case KindArray:
		arr, _ := elem.AsArray()
		for i, v := range arr {
			if n.passes(ctx, Int(int64(i)), v) {
				out = append(out, v)
			}
		}
	case KindObject:
		obj, _ := elem.AsObject()
		for p := obj.Oldest(); p != nil; p = p.Next() {
			if n.passes(ctx, String(p.Key), p.Value) {
				out = append(out, p.Value)
			}
		}
	default:
		return nil, notFound("Predicate")
	}

	if out == nil {
		out = []Value{}
	}
	return out, nil
}

func (n *PredicateNode) passes(ctx EvalContext, key, value Value) bool {
	selfCtx := ctx.WithSelf(key, value)
	results, err := find(n.inner, selfCtx, value)
	if err != nil {
		return false
	}
	return len(results) > 0 && results[0].Truthy()
}

func (n *PredicateNode) PartialExpression() string {
	return "[" + FullExpression(n.inner) + "]"
}

func (n *PredicateNode) NoSeparator() bool { return true }

package jsonpath

// BraceNode is the Brace variant: evaluates inner and rewraps its whole
// result list as a single element, so a chain can keep filtering the
// bundle as one unit (e.g., two predicates applied in sequence — spec
// §4.2, §8 scenario 6).
type BraceNode struct {
	link
	inner Expr
}

func newBraceNode(inner Expr) *BraceNode {
	n := &BraceNode{inner: inner}
	n.link.init(n)
	return n
}

// NewBrace constructs a standalone Brace node.
func NewBrace(inner Expr) Expr { return newBraceNode(inner) }

func (n *BraceNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	results, err := find(n.inner, ctx, elem)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		results = []Value{}
	}
	return []Value{Array(results)}, nil
}

func (n *BraceNode) PartialExpression() string {
	return "(" + FullExpression(n.inner) + ")"
}

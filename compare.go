package jsonpath

// CompareOp identifies which Compare::* sub-variant a CompareNode
// implements (spec §3).
type CompareOp int

const (
	CompareLessThan CompareOp = iota
	CompareLessEqual
	CompareEqual
	CompareGreaterEqual
	CompareGreaterThan
	CompareNotEqual
	CompareAnd
	CompareOr
)

func (op CompareOp) token() string {
	switch op {
	case CompareLessThan:
		return " < "
	case CompareLessEqual:
		return " <= "
	case CompareEqual:
		return " == "
	case CompareGreaterEqual:
		return " >= "
	case CompareGreaterThan:
		return " > "
	case CompareNotEqual:
		return " != "
	case CompareAnd:
		return " && "
	case CompareOr:
		return " || "
	default:
		return " ? "
	}
}

// CompareNode is the Compare family: a binary operator whose left operand
// is the flowing element and whose right operand is either a literal
// (represented as a Value node, which ignores whatever it is evaluated
// against) or a general Expression evaluated against context.self's value
// (spec §4.2).
type CompareNode struct {
	link
	op  CompareOp
	rhs Expr
}

func newCompareNode(op CompareOp, rhs Expr) *CompareNode {
	n := &CompareNode{op: op, rhs: rhs}
	n.link.init(n)
	return n
}

// NewCompare constructs a standalone Compare node for op, comparing
// against rhs.
func NewCompare(op CompareOp, rhs Expr) Expr { return newCompareNode(op, rhs) }

func (n *CompareNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	_, selfValue, _ := ctx.Self()
	results, err := find(n.rhs, ctx, selfValue)
	if err != nil {
		if IsNotFound(err) {
			return nil, notFound("Compare")
		}
		return nil, err
	}
	if len(results) == 0 {
		return nil, notFound("Compare")
	}
	rhs := results[0]

	switch n.op {
	case CompareLessThan:
		return []Value{Bool(ValueLess(elem, rhs))}, nil
	case CompareLessEqual:
		return []Value{Bool(ValueLess(elem, rhs) || ValueEqual(elem, rhs))}, nil
	case CompareEqual:
		return []Value{Bool(ValueEqual(elem, rhs))}, nil
	case CompareGreaterEqual:
		return []Value{Bool(!ValueLess(elem, rhs))}, nil
	case CompareGreaterThan:
		return []Value{Bool(ValueLess(rhs, elem))}, nil
	case CompareNotEqual:
		return []Value{Bool(!ValueEqual(elem, rhs))}, nil
	case CompareAnd:
		// And/Or return the operand itself, not a bool (spec §4.2, §9):
		// a predicate only ever inspects the first result's truthiness,
		// so this preserves meaningful composition without rejecting a
		// bool-returning reimplementation as equally valid.
		if elem.Truthy() {
			return []Value{rhs}, nil
		}
		return []Value{elem}, nil
	case CompareOr:
		if elem.Truthy() {
			return []Value{elem}, nil
		}
		return []Value{rhs}, nil
	default:
		return nil, notFound("Compare")
	}
}

func (n *CompareNode) PartialExpression() string {
	return n.op.token() + FullExpression(n.rhs)
}

func (n *CompareNode) NoSeparator() bool { return true }

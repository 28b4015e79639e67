package jsonpath

import (
	"fmt"
	"strings"
)

// Expr is the tagged-variant expression node interface described in spec
// §3. Every concrete node type embeds link, which supplies Begin/Next/
// NoSeparator and the fluent chain-building methods.
type Expr interface {
	// Match implements the node's local match rule (spec §4.2). It never
	// applies the finding-flag suppression discipline itself — that is
	// the driver's job (spec §9 Design Notes: "an explicit match
	// dispatch... that applies the flag discipline in one place inside
	// the driver").
	Match(ctx EvalContext, elem Value) ([]Value, error)

	// PartialExpression renders this node's own token(s), per spec §4.3.
	PartialExpression() string

	// NoSeparator reports whether this node's partial expression glues
	// to the previous one without a "." separator (Array, Predicate,
	// Search, and Compare variants supply their own leading
	// punctuation).
	NoSeparator() bool

	// Begin returns the head of the chain this node belongs to — itself,
	// if unchained (invariant 4).
	Begin() Expr

	// Next returns the following node in the chain, or nil at the tail.
	Next() Expr

	// The remaining methods are the fluent one-method-per-variant chain
	// builders (spec §9 Design Notes, SPEC_FULL.md supplemented feature
	// 5), implemented once on link and promoted onto every concrete node
	// type, so that e.g. Root().Name("a").Array() reads left to right
	// regardless of which variant sits where in the chain.
	Value(v Value) Expr
	Root() Expr
	Name(name *string) Expr
	Array() Expr
	ArrayAt(index int) Expr
	ArraySlice(start, stop, step *SliceBound) Expr
	Predicate(inner Expr) Expr
	Brace(inner Expr) Expr
	Search(inner Expr) Expr
	Self() Expr
	Key() Expr
	Contains(inner, target Expr) Expr
	Not(inner Expr) Expr
	LessThan(rhs Expr) Expr
	LessEqual(rhs Expr) Expr
	Equal(rhs Expr) Expr
	GreaterEqual(rhs Expr) Expr
	GreaterThan(rhs Expr) Expr
	NotEqual(rhs Expr) Expr
	And(rhs Expr) Expr
	Or(rhs Expr) Expr

	linkPtr() *link
}

// link is embedded in every concrete node type. It implements the chain
// bookkeeping (Begin/Next), the fluent one-method-per-variant chain
// builders (Name, Array, Predicate, ...), and the "chained" flag used by
// the driver to decide whether a NotFound should be suppressed to an
// empty result (see driver.go).
type link struct {
	self  Expr
	begin Expr
	next  Expr

	// chained is true once this node has taken part in a Chain call,
	// either as the source or the target. An untouched node constructed
	// in isolation has chained == false even though Begin() already
	// returns itself (invariant 4) — the driver's suppression rule needs
	// to distinguish "a lone node" from "a node in a chain of length
	// one's worth of neighbors," which Begin() alone can no longer tell
	// apart once every node's begin defaults to itself. See DESIGN.md.
	chained bool
}

func (l *link) init(self Expr) {
	l.self = self
	l.begin = self
}

func (l *link) Begin() Expr       { return l.begin }
func (l *link) Next() Expr        { return l.next }
func (l *link) NoSeparator() bool { return false }
func (l *link) linkPtr() *link    { return l }

// Chain marks next as a's successor: it becomes reachable via a.Next(),
// reports the same Begin() as a, and a itself becomes reachable only
// through its predecessors from then on (spec §6). It panics if a already
// has a successor or if next already belongs to some chain — both are
// programmer errors per spec §7, not part of the evaluation error
// taxonomy.
func Chain(a, next Expr) Expr {
	al := a.linkPtr()
	if al.next != nil {
		panic("jsonpath: node already has a successor")
	}
	nl := next.linkPtr()
	if nl.chained {
		panic("jsonpath: next node already belongs to a chain")
	}
	al.next = next
	al.chained = true
	nl.begin = al.begin
	nl.chained = true
	return next
}

// FullExpression renders e's whole chain, starting from Begin(), per spec
// §4.3.
func FullExpression(e Expr) string {
	var sb strings.Builder
	first := true
	for n := e.Begin(); n != nil; n = n.Next() {
		if !first && !n.NoSeparator() {
			sb.WriteString(".")
		}
		sb.WriteString(n.PartialExpression())
		first = false
	}
	return sb.String()
}

// exprString renders a debug representation mirroring the source's
// __repr__: the full chain expression alongside this node's own partial
// expression (and, if present, the next node's).
func exprString(e Expr) string {
	var sb strings.Builder
	sb.WriteString("JSONPath(")
	sb.WriteString(FullExpression(e))
	sb.WriteString(", ")
	sb.WriteString(e.PartialExpression())
	if n := e.Next(); n != nil {
		sb.WriteString(", ")
		sb.WriteString(n.PartialExpression())
	}
	sb.WriteString(")")
	return sb.String()
}

// renderLiteral renders v using the canonical JSON encoding spec §4.3
// requires for literal rendering: double-quoted strings, lowercase
// true/false/null.
func renderLiteral(v Value) string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "null"
	}
	return string(data)
}

// String renders a debug representation of the node, mirroring the
// source's Expr.__repr__: the full chain expression alongside this
// node's own partial expression.
func (l *link) String() string { return exprString(l.self) }

// GoString implements fmt.GoStringer with the node's Go type alongside
// its partial expression, for %#v-style debugging.
func (l *link) GoString() string {
	return fmt.Sprintf("%T(%s)", l.self, l.self.PartialExpression())
}

// --- fluent chain builders, promoted onto every node type via link ---

// Value chains a literal-producer Value node onto the receiver.
func (l *link) Value(v Value) Expr { return Chain(l.self, newValueNode(v)) }

// Root chains a Root node onto the receiver.
func (l *link) Root() Expr { return Chain(l.self, newRootNode()) }

// Name chains a field-access Name node onto the receiver. A nil name
// selects all fields.
func (l *link) Name(name *string) Expr { return Chain(l.self, newNameNode(name)) }

// Array chains an Array node selecting all items.
func (l *link) Array() Expr { return Chain(l.self, newArrayAllNode()) }

// ArrayAt chains an Array node selecting a single (possibly negative)
// index.
func (l *link) ArrayAt(index int) Expr { return Chain(l.self, newArrayIndexNode(index)) }

// ArraySlice chains an Array node wrapping a Slice selection. A nil bound
// uses the default named in spec §4.2 (start 0, stop len, step 1).
func (l *link) ArraySlice(start, stop, step *SliceBound) Expr {
	return Chain(l.self, newArraySliceNode(start, stop, step))
}

// Predicate chains a Predicate node filtering by inner's truthiness.
func (l *link) Predicate(inner Expr) Expr { return Chain(l.self, newPredicateNode(inner)) }

// Brace chains a Brace node, wrapping inner's whole result as a
// singleton.
func (l *link) Brace(inner Expr) Expr { return Chain(l.self, newBraceNode(inner)) }

// Search chains a Search node performing recursive descent with inner.
func (l *link) Search(inner Expr) Expr { return Chain(l.self, newSearchNode(inner)) }

// Self chains a Self node onto the receiver.
func (l *link) Self() Expr { return Chain(l.self, newSelfNode()) }

// Key chains a Function::Key node onto the receiver.
func (l *link) Key() Expr { return Chain(l.self, newKeyNode()) }

// Contains chains a Function::Contains node. target may itself be a Value
// node for a literal needle.
func (l *link) Contains(inner, target Expr) Expr {
	return Chain(l.self, newContainsNode(inner, target))
}

// Not chains a Function::Not node, negating inner element-wise.
func (l *link) Not(inner Expr) Expr { return Chain(l.self, newNotNode(inner)) }

// LessThan chains a Compare::LessThan node. rhs may be a Value node for a
// literal right-hand side.
func (l *link) LessThan(rhs Expr) Expr { return Chain(l.self, newCompareNode(CompareLessThan, rhs)) }

// LessEqual chains a Compare::LessEqual node.
func (l *link) LessEqual(rhs Expr) Expr {
	return Chain(l.self, newCompareNode(CompareLessEqual, rhs))
}

// Equal chains a Compare::Equal node.
func (l *link) Equal(rhs Expr) Expr { return Chain(l.self, newCompareNode(CompareEqual, rhs)) }

// GreaterEqual chains a Compare::GreaterEqual node.
func (l *link) GreaterEqual(rhs Expr) Expr {
	return Chain(l.self, newCompareNode(CompareGreaterEqual, rhs))
}

// GreaterThan chains a Compare::GreaterThan node.
func (l *link) GreaterThan(rhs Expr) Expr {
	return Chain(l.self, newCompareNode(CompareGreaterThan, rhs))
}

// NotEqual chains a Compare::NotEqual node.
func (l *link) NotEqual(rhs Expr) Expr { return Chain(l.self, newCompareNode(CompareNotEqual, rhs)) }

// And chains a Compare::And node. And/Or return the operand value itself,
// not a bool (spec §4.2, §9).
func (l *link) And(rhs Expr) Expr { return Chain(l.self, newCompareNode(CompareAnd, rhs)) }

// Or chains a Compare::Or node.
func (l *link) Or(rhs Expr) Expr { return Chain(l.self, newCompareNode(CompareOr, rhs)) }

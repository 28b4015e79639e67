package jsonpath

// ValueNode is the Value variant: a literal producer that ignores its
// input element entirely.
type ValueNode struct {
	link
	literal Value
}

func newValueNode(v Value) *ValueNode {
	n := &ValueNode{literal: v}
	n.link.init(n)
	return n
}

// NewValue constructs a standalone literal-producing node.
func NewValue(v Value) Expr { return newValueNode(v) }

func (n *ValueNode) Match(_ EvalContext, _ Value) ([]Value, error) {
	return []Value{n.literal}, nil
}

func (n *ValueNode) PartialExpression() string { return renderLiteral(n.literal) }

// RootNode is the Root variant: yields the context's document root.
type RootNode struct {
	link
}

func newRootNode() *RootNode {
	n := &RootNode{}
	n.link.init(n)
	return n
}

// NewRoot constructs a standalone Root node — the conventional chain head
// for an absolute path expression.
func NewRoot() Expr { return newRootNode() }

func (n *RootNode) Match(ctx EvalContext, _ Value) ([]Value, error) {
	root, ok := ctx.Root()
	if !ok {
		return nil, notFound("Root")
	}
	return []Value{root}, nil
}

func (n *RootNode) PartialExpression() string { return "$" }

// NameNode is the Name variant: field access, or (when name is nil) every
// field in insertion order.
type NameNode struct {
	link
	name *string
}

func newNameNode(name *string) *NameNode {
	n := &NameNode{name: name}
	n.link.init(n)
	return n
}

// NewName constructs a standalone Name node. A nil name selects all
// fields.
func NewName(name *string) Expr { return newNameNode(name) }

func (n *NameNode) Match(_ EvalContext, elem Value) ([]Value, error) {
	obj, ok := elem.AsObject()
	if !ok {
		return nil, notFound("Name")
	}
	if n.name == nil {
		out := make([]Value, 0, obj.Len())
		for p := obj.Oldest(); p != nil; p = p.Next() {
			out = append(out, p.Value)
		}
		return out, nil
	}
	v, present := obj.Get(*n.name)
	if !present {
		return nil, notFound("Name")
	}
	return []Value{v}, nil
}

func (n *NameNode) PartialExpression() string {
	if n.name == nil {
		return "*"
	}
	s := *n.name
	if s == "*" || s == "$" || s == "@" {
		return quoteName(s)
	}
	return s
}

// SelfNode is the Self variant: yields context.self's value when bound,
// or elem itself otherwise — which makes Self usable as an identity
// producer outside a predicate.
type SelfNode struct {
	link
}

func newSelfNode() *SelfNode {
	n := &SelfNode{}
	n.link.init(n)
	return n
}

// NewSelf constructs a standalone Self node.
func NewSelf() Expr { return newSelfNode() }

func (n *SelfNode) Match(ctx EvalContext, elem Value) ([]Value, error) {
	if _, v, ok := ctx.Self(); ok {
		return []Value{v}, nil
	}
	return []Value{elem}, nil
}

func (n *SelfNode) PartialExpression() string { return "@" }

// KeyNode is the Function::Key variant: yields the key bound by the
// enclosing Predicate iteration — a string key for object
// iteration, an integer index for array iteration.
type KeyNode struct {
	link
}

func newKeyNode() *KeyNode {
	n := &KeyNode{}
	n.link.init(n)
	return n
}

// NewKey constructs a standalone Function::Key node.
func NewKey() Expr { return newKeyNode() }

func (n *KeyNode) Match(ctx EvalContext, _ Value) ([]Value, error) {
	k, _, ok := ctx.Self()
	if !ok {
		return nil, notFound("Key")
	}
	return []Value{k}, nil
}

func (n *KeyNode) PartialExpression() string { return "key()" }

func quoteName(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return string(out)
}

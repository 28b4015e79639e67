package jsonpath

// EvalContext carries the ambient bindings consulted by Root, Self, and
// Function::Key: the document root, the current parent container, the
// current (key, value) pair for self-reference, and the finding flag that
// enables the driver's chained-NotFound suppression (spec §5).
//
// Per §9 Design Notes, this is threaded explicitly as a value rather than
// kept in thread-local/dynamically-scoped storage: every "temporarily
// bind X" in the spec becomes "call a With* method and pass the returned
// copy down," so save/restore on exit (including the error path) falls
// out of normal Go value semantics instead of needing an explicit
// restore step.
type EvalContext struct {
	root    Value
	hasRoot bool

	parent Value

	selfKey   Value
	selfValue Value
	hasSelf   bool

	finding bool
}

// NewEvalContext returns the empty context an outer find starts from: no
// root bound yet, no self bound, finding false.
func NewEvalContext() EvalContext {
	return EvalContext{}
}

// WithRoot returns a copy of c with the document root bound to v, unless a
// root is already bound (the driver only sets the root "if not already
// set," per §4.1 step 2 — a nested find never overrides an outer one's
// root).
func (c EvalContext) WithRoot(v Value) EvalContext {
	if c.hasRoot {
		return c
	}
	c.root = v
	c.hasRoot = true
	return c
}

// Root returns the bound document root and whether one is bound.
func (c EvalContext) Root() (Value, bool) { return c.root, c.hasRoot }

// WithParent returns a copy of c with the current parent container bound
// to v.
func (c EvalContext) WithParent(v Value) EvalContext {
	c.parent = v
	return c
}

// Parent returns the currently bound parent container. Callers that care
// whether one was ever bound should track that separately; every dfs
// invocation below the root binds one before recursing.
func (c EvalContext) Parent() Value { return c.parent }

// WithSelf returns a copy of c with the current (key, value) iteration
// pair bound.
func (c EvalContext) WithSelf(key, value Value) EvalContext {
	c.selfKey = key
	c.selfValue = value
	c.hasSelf = true
	return c
}

// Self returns the bound (key, value) pair and whether one is bound.
func (c EvalContext) Self() (key, value Value, ok bool) {
	return c.selfKey, c.selfValue, c.hasSelf
}

// WithFinding returns a copy of c with the finding flag set to f.
func (c EvalContext) WithFinding(f bool) EvalContext {
	c.finding = f
	return c
}

// Finding reports whether a driver walk has set the flag. FindIter and the
// nested-find helper both set it to true for their whole traversal, so it
// is false only on a context that no driver call has passed through.
func (c EvalContext) Finding() bool { return c.finding }

package jsonpath

import "iter"

// Find returns every match of e against doc, in traversal order (spec
// §4.1). If e is an unchained node whose local match itself fails, the
// NotFound propagates as the returned error rather than an empty slice
// (invariant: a lone node's NotFound is not suppressed).
func Find(e Expr, doc Value) ([]Value, error) {
	var out []Value
	for v, err := range FindIter(e, doc) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FindFirst returns the first match, or a NotFound error if the sequence
// is empty. It is defined in terms of FindIter — not a second code path —
// mirroring the source's find_first, which calls next(self.find_iter(...)).
func FindFirst(e Expr, doc Value) (Value, error) {
	for v, err := range FindIter(e, doc) {
		if err != nil {
			return Value{}, err
		}
		return v, nil
	}
	return Value{}, notFound("find_first")
}

// FindIter is the lazy form of Find: an iter.Seq2 that walks the chain
// depth-first and yields each match as it is produced, stopping as soon
// as the consumer's range body returns (or breaks). An error, if any, is
// delivered as the final pair.
func FindIter(e Expr, doc Value) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		ctx := NewEvalContext().WithRoot(doc).WithFinding(true)
		_, err := dfsIter(e.Begin(), ctx, []Value{doc}, func(v Value) bool {
			return yield(v, nil)
		})
		if err != nil {
			yield(Value{}, err)
		}
	}
}

// find is the nested-find helper used by Predicate, Slice bounds,
// Compare's right-hand side, and Function::Contains/Not: it evaluates expr
// against a single input value as a fresh, independent traversal of expr's
// whole chain. The source's ExprMeta.find wrapper clears the finding flag
// only as a one-shot dispatch signal routing the call through find_iter,
// which immediately rebinds it to true for the whole of its own _dfs_find
// walk (core.py ExprMeta.find and find_iter) — so a nested find's own
// sub-traversal runs exactly like a fresh outer find, and dfsIter's
// chained-NotFound suppression below still applies inside it: a failing
// fanned-out element is skipped, not allowed to abort the whole nested walk.
func find(expr Expr, ctx EvalContext, input Value) ([]Value, error) {
	nested := ctx.WithFinding(true)
	return dfs(expr.Begin(), nested, []Value{input})
}

// dfs is the eager counterpart of dfsIter, used by the nested-find helper
// above (nested finds only ever need the first result or a truthiness
// check, but collecting eagerly keeps that call site simple).
func dfs(node Expr, ctx EvalContext, inputs []Value) ([]Value, error) {
	var out []Value
	_, err := dfsIter(node, ctx, inputs, func(v Value) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// dfsIter implements the driver algorithm of spec §4.1: for each input
// element, invoke the node's local match; skip NotFound (suppressing it
// to "no contribution" only when finding is true and the node takes part
// in a chain, per the rule in §4.1's last paragraph); recurse into the
// next node with the parent temporarily bound to elem, or yield directly
// at the tail. It stops as soon as yield returns false, and reports
// whether traversal may continue along with any propagated error.
func dfsIter(node Expr, ctx EvalContext, inputs []Value, yield func(Value) bool) (keepGoing bool, err error) {
	nxt := node.Next()
	for _, elem := range inputs {
		res, matchErr := node.Match(ctx, elem)
		if matchErr != nil {
			if IsNotFound(matchErr) && ctx.Finding() && node.linkPtr().chained {
				continue
			}
			return false, matchErr
		}
		if len(res) == 0 {
			continue
		}
		if nxt == nil {
			for _, v := range res {
				if !yield(v) {
					return false, nil
				}
			}
			continue
		}
		childCtx := ctx.WithParent(elem)
		cont, err := dfsIter(nxt, childCtx, res, yield)
		if err != nil {
			return false, err
		}
		if !cont {
			return false, nil
		}
	}
	return true, nil
}

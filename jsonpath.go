// Package jsonpath implements the core of a JSONPath evaluation engine:
// an expression tree of composable operators (Root, Name, Array, Slice,
// Predicate, Brace, Search, Self, comparisons, and a small function set)
// and the depth-first driver that walks a tree against a JSON document.
//
// Building an expression tree from a textual path, and decoding bytes
// into a Value, are treated as the host program's concern rather than the
// evaluator's — the functions in this file are the thin, conventional
// convenience layer the host is expected to use, in the same spirit as
// njchilds90-go-jsonpath's Query/QueryContext API, just rebuilt around a
// pre-built Expr tree instead of a path string.
package jsonpath

import (
	"context"
	"iter"
	"log/slog"
)

// Option configures the ambient convenience layer (Query/QueryContext). It
// has no effect on the core Find/FindFirst/FindIter algorithms themselves.
type Option func(*queryConfig)

type queryConfig struct {
	logger *slog.Logger
}

// WithLogger attaches a structured logger used to report ambient events —
// decode and evaluation failures in Query, and cancellation of a
// QueryContext call — at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *queryConfig) { c.logger = logger }
}

func newQueryConfig(opts []Option) *queryConfig {
	c := &queryConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query decodes data as JSON and evaluates expr against it, returning
// every match in traversal order.
func Query(data []byte, expr Expr, opts ...Option) ([]Value, error) {
	cfg := newQueryConfig(opts)
	doc, err := Decode(data)
	if err != nil {
		cfg.logger.Debug("jsonpath: query decode failed", "err", err)
		return nil, err
	}
	out, err := Find(expr, doc)
	if err != nil && !IsNotFound(err) {
		cfg.logger.Debug("jsonpath: query evaluation failed", "err", err)
	}
	return out, err
}

// QueryValue evaluates expr against an already-decoded document.
func QueryValue(doc Value, expr Expr) ([]Value, error) {
	return Find(expr, doc)
}

// QueryContext is Query with cooperative cancellation: the consumer's
// context is checked at every yielded match boundary (spec §5), matching
// njchilds90-go-jsonpath's QueryContext convention of threading a
// context.Context through an otherwise synchronous evaluation.
func QueryContext(ctx context.Context, data []byte, expr Expr, opts ...Option) ([]Value, error) {
	cfg := newQueryConfig(opts)
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	var out []Value
	for v, err := range FindIterContext(ctx, expr, doc) {
		if err != nil {
			if ctx.Err() != nil {
				cfg.logger.DebugContext(ctx, "jsonpath: query cancelled", "err", err)
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FindIterContext wraps FindIter with cooperative cancellation: ctx is
// checked before each yield, and a consumer range loop observes ctx.Err()
// as the final (Value, error) pair instead of the next match.
func FindIterContext(ctx context.Context, expr Expr, doc Value) iter.Seq2[Value, error] {
	base := FindIter(expr, doc)
	return func(yield func(Value, error) bool) {
		for v, err := range base {
			if ctxErr := ctx.Err(); ctxErr != nil {
				yield(Value{}, ctxErr)
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// First decodes data as JSON and returns expr's first match.
func First(data []byte, expr Expr) (Value, error) {
	doc, err := Decode(data)
	if err != nil {
		return Value{}, err
	}
	return FindFirst(expr, doc)
}

// Exists reports whether expr has at least one match against data,
// distinguishing a genuine NotFound from a decode or evaluation error.
func Exists(data []byte, expr Expr) (bool, error) {
	_, err := First(data, expr)
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// MustFind is Find, panicking on error — for test fixtures and examples
// where a failed match indicates a broken test, not a runtime condition
// to handle (mirrors njchilds90-go-jsonpath's MustQuery).
func MustFind(expr Expr, doc Value) []Value {
	out, err := Find(expr, doc)
	if err != nil {
		panic(err)
	}
	return out
}

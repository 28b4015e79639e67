package jsonpath

import (
	"errors"

	"github.com/samber/oops"
)

// Error codes recorded on every oops-wrapped error this package raises.
const (
	codeNotFound          = "NOT_FOUND"
	codeSyntax            = "SYNTAX_ERROR"
	codeUndefinedFunction = "UNDEFINED_FUNCTION"
)

// Sentinel errors, matched with errors.Is. These are the three variants of
// the single error family described in spec §6: SyntaxError (raised only
// by an external parser, never by this package), UndefinedFunction
// (reserved for implementations with extensible function registries; this
// package's Function set is closed, so it is never raised internally),
// and FindError::NotFound (the evaluation-time control signal).
var (
	ErrNotFound          = errors.New("jsonpath: not found")
	ErrSyntax            = errors.New("jsonpath: syntax error")
	ErrUndefinedFunction = errors.New("jsonpath: undefined function")
)

// notFound builds the internal NotFound signal a node's local match raises
// on failure. kind identifies which node variant raised it, for
// diagnostics only — callers should branch on IsNotFound, never on this
// field.
func notFound(kind string) error {
	return oops.Code(codeNotFound).With("kind", kind).Wrap(ErrNotFound)
}

// NewSyntaxError builds a SyntaxError carrying the offending textual
// expression. The core evaluator never calls this itself (§1 places
// parsing out of scope); it is exported for an external parser built atop
// this package to raise errors of the same family.
func NewSyntaxError(expression string) error {
	return oops.Code(codeSyntax).With("expression", expression).Wrap(ErrSyntax)
}

// NewUndefinedFunctionError builds an UndefinedFunction error for an
// extensible function registry that does not recognize name. This
// package's own Function variants (Key, Contains, Not) are a closed set
// resolved at construction time, so it never raises this itself.
func NewUndefinedFunctionError(name string) error {
	return oops.Code(codeUndefinedFunction).With("function", name).Wrap(ErrUndefinedFunction)
}

// IsNotFound reports whether err is (or wraps) the NotFound control
// signal.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsSyntaxError reports whether err is (or wraps) a SyntaxError.
func IsSyntaxError(err error) bool { return errors.Is(err, ErrSyntax) }

// IsUndefinedFunction reports whether err is (or wraps) an
// UndefinedFunction error.
func IsUndefinedFunction(err error) bool { return errors.Is(err, ErrUndefinedFunction) }

// ErrorCode returns the oops code attached to err, if err (or something it
// wraps) was built by this package.
func ErrorCode(err error) (string, bool) {
	oerr, ok := oops.AsOops(err)
	if !ok {
		return "", false
	}
	return oerr.Code(), true
}

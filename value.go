package jsonpath

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/slices"
)

// Kind identifies which variant of the JSON tagged union a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Object is an insertion-ordered string-keyed map of Values, satisfying the
// data model's requirement (spec §3) that JSON objects iterate in the order
// their fields were inserted/decoded. Go's builtin map cannot do this, so
// objects are backed by github.com/wk8/go-ordered-map/v2 instead.
type Object = *orderedmap.OrderedMap[string, Value]

// NewObject returns an empty, ready-to-use Object.
func NewObject() Object {
	return orderedmap.New[string, Value]()
}

// Value is the tagged union described in spec §3: null, bool, int, float,
// string, ordered array, or insertion-ordered object. The zero Value is
// KindNull.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  Object
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating-point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array wraps an ordered sequence of Values. The slice is not copied.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Obj wraps an Object.
func Obj(o Object) Value { return Value{kind: KindObject, obj: o} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload and whether v is KindBool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the string payload and whether v is KindString.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the array payload and whether v is KindArray.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the object payload and whether v is KindObject.
func (v Value) AsObject() (Object, bool) { return v.obj, v.kind == KindObject }

// AsInt returns the integer payload and whether v is KindInt. Unlike
// AsNumber, it does not accept a KindFloat value.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsNumber returns v's numeric value as a float64, accepting either KindInt
// or KindFloat, and reports whether v was numeric at all.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Truthy implements the JSON truthiness rule from the GLOSSARY: false,
// null, 0, 0.0, "", [], {} are falsy; everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return len(v.arr) != 0
	case KindObject:
		return v.obj != nil && v.obj.Len() != 0
	default:
		return false
	}
}

// ValueEqual reports whether a and b represent the same JSON value. Numbers
// compare by numeric value across KindInt/KindFloat; containers compare
// structurally and order-sensitively (insertion order is part of an
// Object's identity, matching the ordered data model in spec §3).
func ValueEqual(a, b Value) bool {
	an, aIsNum := a.AsNumber()
	bn, bIsNum := b.AsNumber()
	if aIsNum && bIsNum {
		return an == bn
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindArray:
		return slices.EqualFunc(a.arr, b.arr, ValueEqual)
	case KindObject:
		return objectEqual(a.obj, b.obj)
	default:
		return false
	}
}

func objectEqual(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Len() != b.Len() {
		return false
	}
	bp := b.Oldest()
	for ap := a.Oldest(); ap != nil; ap = ap.Next() {
		if bp == nil || ap.Key != bp.Key || !ValueEqual(ap.Value, bp.Value) {
			return false
		}
		bp = bp.Next()
	}
	return true
}

// typeRank implements the total order across JSON types documented in
// DESIGN.md (spec §9 Open Question — mixed-type ordering): null < bool <
// number < string < array < object.
func typeRank(v Value) int {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInt, KindFloat:
		return 2
	case KindString:
		return 3
	case KindArray:
		return 4
	case KindObject:
		return 5
	default:
		return 6
	}
}

// ValueLess implements the ordering used by the LessThan/LessEqual/
// GreaterThan/GreaterEqual comparison operators. It is total across JSON
// types (see DESIGN.md): values of different kinds order by typeRank,
// values of the same kind order by their natural/lexicographic order.
func ValueLess(a, b Value) bool {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return ra < rb
	}
	switch a.kind {
	case KindNull:
		return false
	case KindBool:
		return !a.b && b.b
	case KindInt, KindFloat:
		an, _ := a.AsNumber()
		bn, _ := b.AsNumber()
		return an < bn
	case KindString:
		return a.s < b.s
	case KindArray:
		return lessSlice(a.arr, b.arr)
	case KindObject:
		return lessObject(a.obj, b.obj)
	default:
		return false
	}
}

func lessSlice(a, b []Value) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if ValueLess(a[i], b[i]) {
			return true
		}
		if ValueLess(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

func lessObject(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	bp := b.Oldest()
	for ap := a.Oldest(); ap != nil; ap = ap.Next() {
		if bp == nil {
			return false
		}
		if ap.Key != bp.Key {
			return ap.Key < bp.Key
		}
		if ValueLess(ap.Value, bp.Value) {
			return true
		}
		if ValueLess(bp.Value, ap.Value) {
			return false
		}
		bp = bp.Next()
	}
	return bp != nil
}

// Contains implements the membership test used by Function::Contains:
// substring test for strings, element test for arrays, key test for
// objects.
func Contains(container, needle Value) bool {
	switch container.kind {
	case KindString:
		s, _ := needle.AsString()
		return needle.kind == KindString && strings.Contains(container.s, s)
	case KindArray:
		for _, item := range container.arr {
			if ValueEqual(item, needle) {
				return true
			}
		}
		return false
	case KindObject:
		s, ok := needle.AsString()
		if !ok || container.obj == nil {
			return false
		}
		_, present := container.obj.Get(s)
		return present
	default:
		return false
	}
}

// Decode parses JSON bytes into a Value tree. Decoding bytes into Values is
// an ambient convenience (spec §1 places "JSON input/output encoding" out
// of scope for the core evaluator) kept here because Go requires
// json.Marshaler/Unmarshaler methods live on the type they describe; see
// DESIGN.md.
func Decode(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		if v.b {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		return []byte(strconv.FormatFloat(v.f, 'g', -1, 64)), nil
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.obj)
	default:
		return nil, fmt.Errorf("jsonpath: value has unknown kind %d", v.kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler, decoding into whichever
// variant the JSON token is, and preserving object field order via Object.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("jsonpath: empty JSON value")
	}

	switch data[0] {
	case 'n':
		*v = Null()
		return nil
	case 't':
		*v = Bool(true)
		return nil
	case 'f':
		*v = Bool(false)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]Value, len(raw))
		for i, r := range raw {
			if err := items[i].UnmarshalJSON(r); err != nil {
				return err
			}
		}
		*v = Array(items)
		return nil
	case '{':
		om := NewObject()
		if err := json.Unmarshal(data, om); err != nil {
			return err
		}
		*v = Obj(om)
		return nil
	default:
		return v.unmarshalNumber(data)
	}
}

func (v *Value) unmarshalNumber(data []byte) error {
	if bytes.ContainsAny(data, ".eE") {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("jsonpath: invalid number %q: %w", data, err)
		}
		*v = Float(f)
		return nil
	}
	i, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Integer literal too large for int64: fall back to float so large
		// JSON numbers still decode instead of erroring.
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return fmt.Errorf("jsonpath: invalid number %q: %w", data, err)
		}
		*v = Float(f)
		return nil
	}
	*v = Int(i)
	return nil
}

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
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
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "<unknown kind>"
	}
}

// Value is the uniform representation every input format is parsed into.
// It is a closed tagged union: exactly one payload field is meaningful,
// selected by Kind. A Value owns its descendants exclusively; adapters build
// the tree bottom-up and nothing mutates it afterwards.
type Value struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	Str    string
	Array  []Value
	Object *Object
}

// Null returns the null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// FromBool wraps a boolean.
func FromBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// FromNumber wraps a number in its textual decimal form. The text is emitted
// verbatim when rendering, so integer vs. float representation survives
// untouched from the source document.
func FromNumber(n json.Number) Value {
	return Value{Kind: KindNumber, Number: n}
}

// FromInt wraps an integer.
func FromInt(i int64) Value {
	return FromNumber(json.Number(strconv.FormatInt(i, 10)))
}

// FromFloat wraps a float. The result always carries a decimal point or an
// exponent so it cannot be mistaken for an integer in the output.
func FromFloat(f float64) Value {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return FromNumber(json.Number(s))
}

// FromString wraps a string.
func FromString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// FromArray wraps an ordered sequence of values.
func FromArray(vals []Value) Value {
	return Value{Kind: KindArray, Array: vals}
}

// FromObject wraps an ordered key/value mapping.
func FromObject(o *Object) Value {
	return Value{Kind: KindObject, Object: o}
}

// Object is an insertion-ordered mapping from string keys to Values with
// unique keys. Key order is exactly the order keys were first inserted, which
// the adapters arrange to be declaration order in the source document.
// Iteration order is a correctness requirement for rendering, so a plain Go
// map is not an option here.
type Object struct {
	m *orderedmap.OrderedMap
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: orderedmap.New()}
}

// Set inserts or replaces the value for key. Re-setting an existing key keeps
// its original position.
func (o *Object) Set(key string, v Value) {
	o.m.Set(key, v)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	raw, ok := o.m.Get(key)
	if !ok {
		return Value{}, false
	}
	return raw.(Value), true
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.m.Keys()
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.m.Keys())
}

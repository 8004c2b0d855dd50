package options

import "fmt"

// Kind classifies a node in a configuration tree.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindString
	KindList
	KindMap
)

// String returns the user-facing name of the kind, as used in error
// messages.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsAtom reports whether the kind is one of the terminal atom kinds.
func (k Kind) IsAtom() bool {
	return k == KindNumber || k == KindBool || k == KindString
}

// Value is a node in a configuration tree. The only implementations are
// Number, Bool, String, List and Map; the interface is sealed so a tree
// can never hold any other shape.
type Value interface {
	Kind() Kind
}

// Number is a numeric atom. All numbers are carried as float64, matching
// what the JSON and YAML parsers produce.
type Number float64

// Bool is a boolean atom.
type Bool bool

// String is a string atom.
type String string

// List is an ordered sequence of values. Lists are expected to be
// uniform; uniformity is checked only as far as merging naturally
// validates each element against the prototype.
type List []Value

// Map is a string-keyed collection of values and the mandatory root of
// every configuration tree.
type Map map[string]Value

func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }
func (Map) Kind() Kind    { return KindMap }

// FromNative converts a parsed configuration tree, as produced by
// encoding/json or yaml.v3 unmarshalling into any, to a Value. Integer
// and float inputs all become Number. Any other shape is a DefaultError,
// since only the five tree kinds are legal in a configuration.
func FromNative(v any) (Value, error) {
	switch n := v.(type) {
	case bool:
		return Bool(n), nil
	case string:
		return String(n), nil
	case int:
		return Number(n), nil
	case int64:
		return Number(n), nil
	case uint64:
		return Number(n), nil
	case float64:
		return Number(n), nil
	case []any:
		list := make(List, 0, len(n))
		for i, elem := range n {
			val, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list = append(list, val)
		}
		return list, nil
	case map[string]any:
		m := make(Map, len(n))
		for k, elem := range n {
			val, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = val
		}
		return m, nil
	default:
		return nil, &DefaultError{
			Message: fmt.Sprintf("unacceptable value of type %T in configuration tree", v),
		}
	}
}

// MapFromNative converts a parsed tree that must be a map at the root,
// which is the contract for every configuration layer.
func MapFromNative(v any) (Map, error) {
	val, err := FromNative(v)
	if err != nil {
		return nil, err
	}
	m, ok := val.(Map)
	if !ok {
		return nil, &DefaultError{
			Message: fmt.Sprintf("configuration root must be a map, got %s", val.Kind()),
		}
	}
	return m, nil
}

// ToNative converts a value back into the plain nested form consumed by
// code outside the engine: float64, bool, string, []any and
// map[string]any.
func ToNative(v Value) any {
	switch n := v.(type) {
	case Number:
		return float64(n)
	case Bool:
		return bool(n)
	case String:
		return string(n)
	case List:
		out := make([]any, 0, len(n))
		for _, elem := range n {
			out = append(out, ToNative(elem))
		}
		return out
	case Map:
		out := make(map[string]any, len(n))
		for k, elem := range n {
			out[k] = ToNative(elem)
		}
		return out
	default:
		return nil
	}
}

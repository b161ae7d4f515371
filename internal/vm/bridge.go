package vm

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// ToSolidifyValue converts a host-supplied dynamic Value into the
// solidifier's domain model (internal/value): a straightforward switch
// over Kind, recursing into containers.
//
// Null, Bool, Number, String, Array, and Object all have direct
// counterparts (Number always lands as Real — a host boundary with no
// separate integer/float distinction of its own has no way to pick
// Int over Real). A host VM's closures and classes do not round-trip
// through this boundary at all: this package carries no Function or
// Class concept, since a real scripting VM's compiled function is a
// different instruction encoding entirely from the solidifier's
// word-oriented Prototype (§3), and bridging one without the other
// would mean faking a translation this package cannot make sound. A
// caller that wants to solidify a closure or a class builds the
// internal/value graph directly with that package's constructors
// instead of routing it through here.
func ToSolidifyValue(v Value) (value.Value, error) {
	switch v.Kind {
	case KindNull:
		return value.Nil(), nil
	case KindBool:
		return value.BoolOf(v.B), nil
	case KindNumber:
		return value.Real(v.Num), nil
	case KindString:
		return value.Str(v.Str), nil
	case KindArray:
		out := make([]value.Value, len(v.Arr))
		for i, el := range v.Arr {
			cv, err := ToSolidifyValue(el)
			if err != nil {
				return value.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = cv
		}
		return value.ListOf(out), nil
	case KindObject:
		m := value.NewMap()
		for k, el := range v.Obj {
			cv, err := ToSolidifyValue(el)
			if err != nil {
				return value.Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			m.Set(value.Str(k), cv)
		}
		return value.MapOf(m), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported value kind %v", v.Kind)
	}
}

// FromGo converts a decoded JSON value (nil, bool, float64, string,
// []any, or map[string]any — the shapes encoding/json.Unmarshal produces
// into an any) into a host Value. This is the producer side of the host
// boundary ToSolidifyValue consumes: together they let cmd/embersolid
// treat a JSON globals file the way an embedded script VM would hand
// over its live bindings.
func FromGo(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case []any:
		out := make([]Value, len(t))
		for i, el := range t {
			cv, err := FromGo(el)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = cv
		}
		return Array(out), nil
	case map[string]any:
		out := make(map[string]Value, len(t))
		for k, el := range t {
			cv, err := FromGo(el)
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			out[k] = cv
		}
		return Object(out), nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON-decoded type %T", v)
	}
}

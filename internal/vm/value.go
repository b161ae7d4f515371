// Package vm models the dynamic value shape an embedding host hands to the
// solidifier: a scripting VM's live global bindings, the "external
// collaborator" SPEC_FULL.md places outside the solidifier's own scope.
// Here that boundary is simulated from a JSON-described globals file (see
// cmd/embersolid) rather than by running an actual bytecode interpreter,
// since nothing in this module needs a second scripting language of its
// own — the solidifier's job starts once a host has values to dump.
package vm

// Kind tags the variant held by a Value. This mirrors the subset of a
// dynamic VM's value kinds that have a direct counterpart in the
// solidifier's own value model (internal/value): scalars and the two
// container shapes. A host VM with closures, classes, or other live
// objects builds those directly against internal/value instead of
// routing them through here (see ToSolidifyValue).
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
		return "unknown"
	}
}

// Value is a host-supplied dynamic value awaiting conversion to the
// solidifier's domain model.
type Value struct {
	Kind Kind
	B    bool
	Num  float64
	Str  string
	Arr  []Value
	Obj  map[string]Value
}

func Null() Value                     { return Value{Kind: KindNull} }
func Bool(b bool) Value               { return Value{Kind: KindBool, B: b} }
func Number(n float64) Value          { return Value{Kind: KindNumber, Num: n} }
func String(s string) Value           { return Value{Kind: KindString, Str: s} }
func Array(v []Value) Value           { return Value{Kind: KindArray, Arr: v} }
func Object(m map[string]Value) Value { return Value{Kind: KindObject, Obj: m} }

// Truthy reports whether v is truthy under the host's usual rules: only
// null and false are falsy.
func Truthy(v Value) bool {
	switch v.Kind {
	case KindNull:
		return false
	case KindBool:
		return v.B
	default:
		return true
	}
}

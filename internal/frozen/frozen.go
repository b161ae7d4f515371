// Package frozen names the constructor surface that solidified source text
// references. Every exported function here corresponds one-to-one to a
// `be_*` macro of the original VM runtime (name translated by dropping the
// `be_` prefix and adopting Go's exported-identifier casing); bodies are
// provided by the real VM runtime at link time and are not invoked from
// this module. The solidifier (internal/solidify) never calls these
// functions either — it only emits their names as text, treating them as
// opaque tokens per SPEC_FULL.md §6.
package frozen

const unresolved = "frozen: provided by the VM runtime at link time"

// ConstNil, ConstBool, ConstInt, ConstVar, ConstRealHex correspond to
// be_const_nil/be_const_bool/be_const_int/be_const_var/be_const_real_hex.
func ConstNil() any               { panic(unresolved) }
func ConstBool(b int) any         { panic(unresolved) }
func ConstInt(i int64) any        { panic(unresolved) }
func ConstVar(i int64) any        { panic(unresolved) }
func ConstRealHex(bits uint64) any { panic(unresolved) }

// NestedStr, NestedStrWeak, NestedStrLong correspond to
// be_nested_str/be_nested_str_weak/be_nested_str_long.
func NestedStr(ident string) any     { panic(unresolved) }
func NestedStrWeak(ident string) any { panic(unresolved) }
func NestedStrLong(ident string) any { panic(unresolved) }

// ConstStr and StrWeak correspond to &be_const_str_<ident> / be_str_weak
// (ident), the two forms a prototype's own name/source is referenced by.
func ConstStr(ident string) any { panic(unresolved) }
func StrWeak(ident string) any  { panic(unresolved) }

// ConstClosure corresponds to the const_[static_][class_]<prefix>_<ident>_closure
// family; the modifiers are folded into name by the caller.
func ConstClosure(name string) any { panic(unresolved) }

// ConstClass corresponds to be_const_class.
func ConstClass(className string) any { panic(unresolved) }

// ConstFunc and ConstComptr correspond to be_const_func and be_const_comptr.
// ConstStaticFunc is ConstFunc's var_isstatic(value) variant,
// be_const_static_func; be_const_comptr has no static form in the original.
func ConstFunc(name string) any       { panic(unresolved) }
func ConstComptr(name string) any     { panic(unresolved) }
func ConstStaticFunc(name string) any { panic(unresolved) }

// ConstBytesInstance corresponds to be_const_bytes_instance.
func ConstBytesInstance(hexDump string) any { panic(unresolved) }

// ConstSimpleInstance and NestedSimpleInstance correspond to
// be_const_simple_instance/be_nested_simple_instance.
func ConstSimpleInstance(inner any) any                      { panic(unresolved) }
func NestedSimpleInstance(className string, member any) any  { panic(unresolved) }

// MapEntry is one { key-form, value-form } pair of a solidified map's
// backing array, mirroring struct bmapnode.
type MapEntry struct {
	Key any
	Val any
}

// NestedMap, ConstKey, ConstKeyWeak, ConstKeyInt correspond to
// be_nested_map/be_const_key/be_const_key_weak/be_const_key_int.
func NestedMap(count int, nodes []MapEntry) any { panic(unresolved) }
func ConstKey(ident string, next int) any       { panic(unresolved) }
func ConstKeyWeak(ident string, next int) any   { panic(unresolved) }
func ConstKeyInt(i int64, next int) any         { panic(unresolved) }

// NestedList corresponds to be_nested_list.
func NestedList(count int, values []any) any { panic(unresolved) }

// LocalConstUpval corresponds to be_local_const_upval.
func LocalConstUpval(inStack bool, idx int) any { panic(unresolved) }

// NestedProto corresponds to be_nested_proto. The upvalue, sub-prototype
// and constant tables are each preceded by their 0/1 presence flag.
func NestedProto(
	nstack, argc, varg int,
	hasUpvals int, upvals any,
	hasSubProtos int, subProtos any,
	hasConsts int, consts any,
	name any,
	source any,
	code any,
) any {
	panic(unresolved)
}

// LocalClosure, LocalClass, LocalModule, DefineConstNativeModule correspond
// to be_local_closure/be_local_class/be_local_module/
// be_define_const_native_module.
func LocalClosure(name string, proto any) any                     { panic(unresolved) }
func LocalClass(name string, nvar int, super, members, str any) any { panic(unresolved) }
func LocalModule(name string, strName string, table any) any       { panic(unresolved) }
func DefineConstNativeModule(name string) any                      { panic(unresolved) }

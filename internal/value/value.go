package value

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindIndex
	KindReal
	KindString
	KindClosure
	KindClass
	KindNativeFunc
	KindNativePtr
	KindInstance
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindIndex:
		return "index"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindClosure:
		return "closure"
	case KindClass:
		return "class"
	case KindNativeFunc:
		return "nativefunc"
	case KindNativePtr:
		return "nativeptr"
	case KindInstance:
		return "instance"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the tagged sum the solidifier traverses. Only the fields
// matching Kind are meaningful.
type Value struct {
	Kind Kind

	B bool
	I int64
	// RealSingle marks the Real variant as IEEE-754 single precision;
	// otherwise it is double precision.
	RealSingle bool
	R          float64
	S          string

	Closure *Closure
	Class   *Class
	// NativeName is the symbol fragment a NativeFunc/NativePtr resolves to
	// by name at compile time of the emitted text.
	NativeName string
	// NativeStatic mirrors the VM's var_isstatic(value) for a NativeFunc:
	// it emits the const_static_func form instead of const_func. NativePtr
	// has no static form in the original and ignores this field.
	NativeStatic bool
	Instance     *Instance
	Map          *Map
	List         []Value
}

func Nil() Value                { return Value{Kind: KindNil} }
func BoolOf(b bool) Value        { return Value{Kind: KindBool, B: b} }
func Int(i int64) Value          { return Value{Kind: KindInt, I: i} }
func Index(i int64) Value        { return Value{Kind: KindIndex, I: i} }
func Real(f float64) Value       { return Value{Kind: KindReal, R: f} }
func RealSingle(f float64) Value { return Value{Kind: KindReal, R: f, RealSingle: true} }
func Str(s string) Value         { return Value{Kind: KindString, S: s} }

func ClosureOf(c *Closure) Value { return Value{Kind: KindClosure, Closure: c} }
func ClassOf(c *Class) Value     { return Value{Kind: KindClass, Class: c} }
func NativeFunc(name string) Value {
	return Value{Kind: KindNativeFunc, NativeName: name}
}
func NativePtr(name string) Value {
	return Value{Kind: KindNativePtr, NativeName: name}
}

// StaticNativeFunc constructs the static-binding variant (see NativeStatic);
// NativePtr has no static form in the original, so there is no equivalent
// constructor for it.
func StaticNativeFunc(name string) Value {
	return Value{Kind: KindNativeFunc, NativeName: name, NativeStatic: true}
}
func InstanceOf(ins *Instance) Value { return Value{Kind: KindInstance, Instance: ins} }
func MapOf(m *Map) Value             { return Value{Kind: KindMap, Map: m} }
func ListOf(l []Value) Value         { return Value{Kind: KindList, List: l} }

// IsNil reports whether v holds the Nil variant (used by map-slot
// occupancy checks).
func (v Value) IsNil() bool { return v.Kind == KindNil }

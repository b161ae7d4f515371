package solidify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/internal/value"
)

// Scenario 1: closure "f" with argc=1, nstack=2, no upvals, no sub-protos,
// constants [Int 42, String "hello"].
func TestDumpSimpleClosure(t *testing.T) {
	proto := &value.Prototype{
		Name:   "f",
		Source: "solidified",
		NStack: 2,
		ArgC:   1,
		Consts: []value.Value{value.Int(42), value.Str("hello")},
		Code:   []uint32{0x80000001, 0x00000000},
	}
	closure := &value.Closure{Proto: proto}

	res, err := Dump(closure, Options{BuiltinCount: 16})
	require.NoError(t, err)
	assert.Contains(t, res.Text, `frozen.LocalClosure("f",`)
	assert.Contains(t, res.Text, "/* K0 */ frozen.ConstInt(42)")
	assert.Contains(t, res.Text, `/* K1 */ frozen.NestedStr("hello")`)
	assert.Empty(t, res.Warnings)
}

// Scenario 2: class "A" with one method "m" whose prototype's parent
// class is A itself.
func TestDumpClassWithOwnMethod(t *testing.T) {
	classA := &value.Class{Name: "A"}
	methodProto := &value.Prototype{Name: "m", Source: "solidified", ParentClass: classA}
	methodClosure := &value.Closure{Proto: methodProto}

	members := value.NewMap()
	members.Set(value.Str("m"), value.ClosureOf(methodClosure))
	classA.Members = members

	res, err := Dump(classA, Options{BuiltinCount: 16})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "extern const bclass be_class_A;")
	assert.Contains(t, res.Text, `frozen.LocalClosure("class_A_m",`)
	assert.NotContains(t, res.Text, "Borrowed method")
}

// Scenario 3: same as (2) but the method's prototype's parent class is B.
func TestDumpClassWithBorrowedMethod(t *testing.T) {
	classA := &value.Class{Name: "A"}
	classB := &value.Class{Name: "B"}
	methodProto := &value.Prototype{Name: "m", Source: "solidified", ParentClass: classB}
	methodClosure := &value.Closure{Proto: methodProto}

	members := value.NewMap()
	members.Set(value.Str("m"), value.ClosureOf(methodClosure))
	classA.Members = members

	res, err := Dump(classA, Options{BuiltinCount: 16})
	require.NoError(t, err)
	assert.Contains(t, res.Text, `Borrowed method "m" from class "B"`)
	assert.Contains(t, res.Text, "extern bclosure *class_B_m;")
	assert.NotContains(t, res.Text, `frozen.LocalClosure("class_A_m",`)
}

// Scenario 4: a map { "k_X": 1, 7: "v?" }.
func TestDumpMapWithStringAndIntKeys(t *testing.T) {
	m := value.NewMap()
	m.Set(value.Str("k_X"), value.Int(1))
	m.Set(value.Int(7), value.Str("v?"))

	mod := &value.Module{Name: "sample", Table: m}
	res, err := Dump(mod, Options{BuiltinCount: 16})
	require.NoError(t, err)
	assert.Contains(t, res.Text, `frozen.ConstKey("k_X_"`)
	assert.Contains(t, res.Text, "frozen.ConstKeyInt(7,")
	assert.Contains(t, res.Text, `frozen.NestedStr("v_X3F")`)
}

// Scenario 5: an instance of the bytes class with buffer [0xDE, 0xAD, 0xBE, 0xEF].
func TestDumpBytesInstance(t *testing.T) {
	bytesClass := &value.Class{Name: "bytes", Kind: value.ClassBytes}
	raw := string([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	ins := &value.Instance{
		Class:   bytesClass,
		Members: []value.Value{value.Str(raw), value.Int(4)},
	}

	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitInstance(ins)
	require.NoError(t, err)
	assert.Equal(t, `frozen.ConstBytesInstance("DEADBEEF")`, buf.String())
}

// Scenario 6: a prototype whose bytecode contains GETGBL with
// Bx = builtin_count + 1.
func TestDumpGetGblBeyondBuiltinCountFails(t *testing.T) {
	badWord := uint32(WordGetGbl)<<24 | 17 // Bx = 17
	proto := &value.Prototype{
		Name:   "bad",
		Source: "solidified",
		Code:   []uint32{badWord},
	}
	closure := &value.Closure{Proto: proto}

	_, err := Dump(closure, Options{BuiltinCount: 16})
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, KindNonBuiltinGlobal, serr.Kind)
}

// NativeFunc and NativePtr must reproduce the be_ntv_ runtime symbol
// verbatim, and a static native function must switch constructors.
func TestDumpNativeFunc(t *testing.T) {
	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitValue(value.NativeFunc(""), "mymodule", "dothing")
	require.NoError(t, err)
	assert.Equal(t, `frozen.ConstFunc("be_ntv_mymodule_dothing")`, buf.String())
}

func TestDumpStaticNativeFunc(t *testing.T) {
	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitValue(value.StaticNativeFunc(""), "mymodule", "dothing")
	require.NoError(t, err)
	assert.Equal(t, `frozen.ConstStaticFunc("be_ntv_mymodule_dothing")`, buf.String())
}

func TestDumpNativePtr(t *testing.T) {
	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitValue(value.NativePtr(""), "mymodule", "handle")
	require.NoError(t, err)
	assert.Equal(t, `frozen.ConstComptr("be_ntv_mymodule_handle")`, buf.String())
}

func TestDumpNativeFuncExplicitNameStillGetsPrefix(t *testing.T) {
	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitValue(value.NativeFunc("custom_symbol"), "", "")
	require.NoError(t, err)
	assert.Equal(t, `frozen.ConstFunc("be_ntv_custom_symbol")`, buf.String())
}

// A bytes instance is exempt from the super/sub restriction: it is emitted
// from its raw buffer alone, so carrying super/sub linkage does not matter.
func TestDumpBytesInstanceWithSuperSubIsExempt(t *testing.T) {
	bytesClass := &value.Class{Name: "bytes", Kind: value.ClassBytes}
	raw := string([]byte{0xCA, 0xFE})
	ins := &value.Instance{
		Class:   bytesClass,
		Members: []value.Value{value.Str(raw), value.Int(2)},
		Super:   &value.Instance{Class: bytesClass},
	}

	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitInstance(ins)
	require.NoError(t, err)
	assert.Equal(t, `frozen.ConstBytesInstance("CAFE")`, buf.String())
}

// A non-bytes instance with super/sub linkage is still rejected.
func TestDumpMapInstanceWithSuperSubFails(t *testing.T) {
	mapClass := &value.Class{Name: "map", Kind: value.ClassMap}
	ins := &value.Instance{
		Class:   mapClass,
		Members: []value.Value{value.MapOf(value.NewMap())},
		Super:   &value.Instance{Class: mapClass},
	}

	buf := new(bufferForTest)
	e := newEmitter(NewWriterSink(buf), false, 16)
	err := e.emitInstance(ins)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, KindInstanceSuperSub, serr.Kind)
}

func TestDumpRejectsUnsupportedTopLevelType(t *testing.T) {
	_, err := Dump(42, Options{})
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, KindValueError, serr.Kind)
}

// The inner-class pre-pass must walk sub-prototypes transitively: a class
// constant nested inside a sub-prototype's own constant table still needs
// its extern/local_class hoisted before the enclosing nested_proto(...)
// expression, never interleaved inside it.
func TestDumpInnerClassPrePassReachesNestedSubProto(t *testing.T) {
	innerClass := &value.Class{Name: "Nested"}
	subProto := &value.Prototype{
		Name:   "inner",
		Source: "solidified",
		Consts: []value.Value{value.ClassOf(innerClass)},
	}
	outerProto := &value.Prototype{
		Name:      "outer",
		Source:    "solidified",
		SubProtos: []*value.Prototype{subProto},
	}
	closure := &value.Closure{Proto: outerProto}

	res, err := Dump(closure, Options{BuiltinCount: 16})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "extern const bclass be_class_Nested;")

	externIdx := indexOf(res.Text, "extern const bclass be_class_Nested;")
	protoIdx := indexOf(res.Text, "frozen.NestedProto(")
	require.GreaterOrEqual(t, externIdx, 0)
	require.GreaterOrEqual(t, protoIdx, 0)
	assert.Less(t, externIdx, protoIdx, "class extern must be hoisted before the nested_proto expression begins")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestDumpLongStringUsesUnformattedPath(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	proto := &value.Prototype{
		Name:   "g",
		Source: "solidified",
		Consts: []value.Value{value.Str(string(long))},
	}
	closure := &value.Closure{Proto: proto}

	res, err := Dump(closure, Options{BuiltinCount: 16})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "frozen.NestedStrLong(")
	assert.Contains(t, res.Text, string(long))
}

// bufferForTest is a minimal io.Writer sink for tests that only need to
// inspect a single emitted form in isolation.
type bufferForTest struct {
	data []byte
}

func (b *bufferForTest) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *bufferForTest) String() string { return string(b.data) }

package solidify

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/emberlang/ember/internal/value"
)

// emitValue writes one complete constructor form for v: no leading
// indentation, no trailing comma, no trailing newline (§4.2's contract).
// prefix is the caller's naming context; key names the current map/class
// entry for NativeFunc/NativePtr forms.
func (e *emitter) emitValue(v value.Value, prefix, key string) error {
	switch v.Kind {
	case value.KindNil:
		return e.sink.Write("frozen.ConstNil()")

	case value.KindBool:
		b := 0
		if v.B {
			b = 1
		}
		return e.sink.Write(fmt.Sprintf("frozen.ConstBool(%d)", b))

	case value.KindInt:
		return e.sink.Write(fmt.Sprintf("frozen.ConstInt(%d)", v.I))

	case value.KindIndex:
		return e.sink.Write(fmt.Sprintf("frozen.ConstVar(%d)", v.I))

	case value.KindReal:
		return e.emitReal(v)

	case value.KindString:
		return e.emitString(v.S)

	case value.KindClosure:
		return e.emitClosureRef(v.Closure, prefix)

	case value.KindClass:
		return e.sink.Write(fmt.Sprintf("frozen.ConstClass(%q)", v.Class.Name))

	case value.KindNativeFunc:
		ctor := "frozen.ConstFunc"
		if v.NativeStatic {
			ctor = "frozen.ConstStaticFunc"
		}
		return e.sink.Write(fmt.Sprintf("%s(%q)", ctor, nativeSymbol(prefix, key, v.NativeName)))

	case value.KindNativePtr:
		return e.sink.Write(fmt.Sprintf("frozen.ConstComptr(%q)", nativeSymbol(prefix, key, v.NativeName)))

	case value.KindInstance:
		return e.emitInstance(v.Instance)

	case value.KindMap:
		return e.emitMap(v.Map, prefix)

	case value.KindList:
		return e.emitList(v.List, prefix)

	default:
		return newError(KindUnsupportedConstant, "value tag %v", v.Kind)
	}
}

// nativeSymbol reproduces the runtime symbol a NativeFunc/NativePtr value
// resolves to verbatim, matching be_ntv_%s_%s in the original: the be_ntv_
// prefix is fixed, never derived or omitted.
func nativeSymbol(prefix, key, name string) string {
	if name != "" {
		return "be_ntv_" + name
	}
	if prefix == "" {
		prefix = "unknown"
	}
	if key == "" {
		key = "unknown"
	}
	return "be_ntv_" + prefix + "_" + key
}

func (e *emitter) emitReal(v value.Value) error {
	if v.RealSingle {
		bits := math.Float32bits(float32(v.R))
		return e.sink.Write(fmt.Sprintf("frozen.ConstRealHex(0x%08X)", bits))
	}
	bits := math.Float64bits(v.R)
	return e.sink.Write(fmt.Sprintf("frozen.ConstRealHex(0x%016X)", bits))
}

func (e *emitter) emitString(s string) error {
	ident := Identifier(s)
	if len(s) >= 255 {
		// Three separate writes to sidestep the formatted line buffer
		// (§4.2, testable property 5): the call wrapper is short and
		// goes through the formatted path, the identifier payload itself
		// (which can be arbitrarily long) goes through the unformatted
		// path, and the closing quote and paren go back through the
		// formatted path.
		if err := e.sink.Write("frozen.NestedStrLong(\""); err != nil {
			return err
		}
		if err := e.sink.WriteRaw(ident); err != nil {
			return err
		}
		return e.sink.Write("\")")
	}
	if e.literalMode {
		return e.sink.Write(fmt.Sprintf("frozen.NestedStrWeak(%q)", ident))
	}
	return e.sink.Write(fmt.Sprintf("frozen.NestedStr(%q)", ident))
}

// emitInstance dispatches on the instance's class kind. The super/sub
// restriction (§3 invariant 1) only applies outside the bytes case: a bytes instance
// is emitted from its raw buffer alone and never needs to walk super/sub,
// so it is exempt, matching the original's else-if placement after the
// bytes-class branch already returned.
func (e *emitter) emitInstance(ins *value.Instance) error {
	switch ins.Class.Kind {
	case value.ClassBytes:
		if len(ins.Members) < 2 {
			return newError(KindUnsupportedClass, "bytes instance missing buffer/length members")
		}
		raw := ins.Members[0].S
		n := int(ins.Members[1].I)
		if n < 0 || n > len(raw) {
			n = len(raw)
		}
		dump := strings.ToUpper(hex.EncodeToString([]byte(raw[:n])))
		return e.sink.Write(fmt.Sprintf("frozen.ConstBytesInstance(%q)", dump))

	default:
		if ins.Super != nil || ins.Sub != nil {
			return newError(KindInstanceSuperSub, "instance of class %q", classNameOrNil(ins.Class))
		}
		switch ins.Class.Kind {
		case value.ClassMap, value.ClassList:
			if len(ins.Members) < 1 {
				return newError(KindUnsupportedClass, "simple instance missing member 0")
			}
			name := "map"
			if ins.Class.Kind == value.ClassList {
				name = "list"
			}
			if err := e.sink.Write(fmt.Sprintf("frozen.ConstSimpleInstance(frozen.NestedSimpleInstance(%q, ", name)); err != nil {
				return err
			}
			if err := e.emitValue(ins.Members[0], "", ""); err != nil {
				return err
			}
			return e.sink.Write("))")

		default:
			return newError(KindUnsupportedClass, "class %q", classNameOrNil(ins.Class))
		}
	}
}

func classNameOrNil(c *value.Class) string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// Word opcodes recognized for global-access validation (§4.5). Solidified
// bytecode is a word-oriented instruction stream distinct from the live
// VM's own byte-oriented chunk format; only the two opcodes the validation
// rule cares about are named, everything else is an opaque payload the
// solidifier reproduces verbatim in the disassembly comment.
const (
	WordGetGbl byte = 0x01
	WordSetGbl byte = 0x02
)

func decodeWord(w uint32) (opcode byte, bx uint32) {
	return byte(w >> 24), w & 0x00FFFFFF
}

func wordOpName(op byte) string {
	switch op {
	case WordGetGbl:
		return "GETGBL"
	case WordSetGbl:
		return "SETGBL"
	default:
		return fmt.Sprintf("OP_0x%02X", op)
	}
}

// disasmWord produces the human-readable comment accompanying each
// bytecode word (§4.5 item 7). This stands in for "a VM-provided
// formatter" — see SPEC_FULL.md §13.
func disasmWord(offset int, w uint32) string {
	op, bx := decodeWord(w)
	return fmt.Sprintf("[%04d] %s %d", offset, wordOpName(op), bx)
}

func (e *emitter) validateGlobalAccess(w uint32) error {
	op, bx := decodeWord(w)
	if op == WordGetGbl || op == WordSetGbl {
		if int(bx) > e.builtinCount {
			return newError(KindNonBuiltinGlobal, "Bx=%d exceeds builtin count %d", bx, e.builtinCount)
		}
	}
	return nil
}

// innerClassPrePass scans a prototype's constant table for Class constants
// and emits each one before the prototype body, skipping index 0 when it
// is the implicit `_class` self-reference of a static method (§4.5 "Inner
// class pre-pass"). It recurses into sub-prototypes too: a forward
// `extern`/`local_class` is a standalone statement, so every class
// reachable from the enclosing closure's constant tables — at any nesting
// depth — must be hoisted out before the single nested_proto(...)
// expression begins, not interleaved inside it.
func (e *emitter) innerClassPrePass(p *value.Prototype) error {
	for i, k := range p.Consts {
		if k.Kind != value.KindClass {
			continue
		}
		if i == 0 && p.IsStatic {
			continue
		}
		if err := e.emitClassDef(k.Class); err != nil {
			return err
		}
	}
	for _, sp := range p.SubProtos {
		if err := e.innerClassPrePass(sp); err != nil {
			return err
		}
	}
	return nil
}

// emitPrototype writes the nested_proto form (§4.5). emitName is the name
// this prototype is emitted under — the prototype's own name at the top
// level, or "<parent>_<index>" for a sub-prototype; it is threaded in
// rather than mutating p.Name, since the solidifier must not mutate its
// input graph beyond map compaction. prefix is the enclosing closure's
// naming context, threaded through so constant-table closures reference
// the right symbol.
func (e *emitter) emitPrototype(p *value.Prototype, emitName, prefix string) error {
	varg := 0
	if p.VarArg {
		varg = 1
	}
	if err := e.sink.Write(fmt.Sprintf("frozen.NestedProto(\n  %d, %d, %d,\n", p.NStack, p.ArgC, varg)); err != nil {
		return err
	}

	if err := e.emitUpvalues(p); err != nil {
		return err
	}
	if err := e.emitSubProtos(p, prefix); err != nil {
		return err
	}
	if err := e.emitConsts(p, prefix); err != nil {
		return err
	}

	nameIdent := Identifier(emitName)
	nameForm := fmt.Sprintf("frozen.ConstStr(%q)", nameIdent)
	if e.literalMode {
		nameForm = fmt.Sprintf("frozen.StrWeak(%q)", nameIdent)
	}
	if err := e.sink.Write(fmt.Sprintf("  %s,\n", nameForm)); err != nil {
		return err
	}
	if err := e.sink.Write("  frozen.ConstStr(\"solidified\"),\n"); err != nil {
		return err
	}

	if err := e.emitCode(p); err != nil {
		return err
	}
	return e.sink.Write(")")
}

func (e *emitter) emitUpvalues(p *value.Prototype) error {
	if len(p.Upvalues) == 0 {
		return e.sink.Write("  0, nil,\n")
	}
	if err := e.sink.Write("  1, []any{"); err != nil {
		return err
	}
	for i, uv := range p.Upvalues {
		if i > 0 {
			if err := e.sink.Write(", "); err != nil {
				return err
			}
		}
		if err := e.sink.Write(fmt.Sprintf("frozen.LocalConstUpval(%t, %d)", uv.InStack, uv.Idx)); err != nil {
			return err
		}
	}
	return e.sink.Write("},\n")
}

func (e *emitter) emitSubProtos(p *value.Prototype, prefix string) error {
	if len(p.SubProtos) == 0 {
		if p.ParentClass != nil {
			return e.sink.Write(fmt.Sprintf("  0, frozen.ConstClass(%q),\n", p.ParentClass.Name))
		}
		return e.sink.Write("  0, nil,\n")
	}
	// §4.5: array of n+1 entries, last is the parent-class pointer (or nil).
	if err := e.sink.Write("  1, []any{"); err != nil {
		return err
	}
	for i, sp := range p.SubProtos {
		if i > 0 {
			if err := e.sink.Write(", "); err != nil {
				return err
			}
		}
		subName := fmt.Sprintf("%s_%d", p.Name, i)
		if err := e.emitPrototype(sp, subName, prefix); err != nil {
			return err
		}
	}
	if err := e.sink.Write(", "); err != nil {
		return err
	}
	if p.ParentClass != nil {
		if err := e.sink.Write(fmt.Sprintf("frozen.ConstClass(%q)", p.ParentClass.Name)); err != nil {
			return err
		}
	} else if err := e.sink.Write("nil"); err != nil {
		return err
	}
	return e.sink.Write("},\n")
}

func (e *emitter) emitConsts(p *value.Prototype, prefix string) error {
	if len(p.Consts) == 0 {
		return e.sink.Write("  0, nil,\n")
	}
	if err := e.sink.Write("  1, []any{\n"); err != nil {
		return err
	}
	for i, k := range p.Consts {
		if err := e.sink.Write(fmt.Sprintf("    /* K%d */ ", i)); err != nil {
			return err
		}
		if err := e.emitValue(k, prefix, ""); err != nil {
			return err
		}
		if i < len(p.Consts)-1 {
			if err := e.sink.Write(",\n"); err != nil {
				return err
			}
		} else if err := e.sink.Write("\n"); err != nil {
			return err
		}
	}
	return e.sink.Write("  },\n")
}

func (e *emitter) emitCode(p *value.Prototype) error {
	if len(p.Code) == 0 {
		return e.sink.Write("  []uint32{},\n")
	}
	if err := e.sink.Write("  []uint32{\n"); err != nil {
		return err
	}
	for i, w := range p.Code {
		if err := e.validateGlobalAccess(w); err != nil {
			return err
		}
		if err := e.sink.Write(fmt.Sprintf("    0x%08X, // %s\n", w, disasmWord(i, w))); err != nil {
			return err
		}
	}
	return e.sink.Write("  },\n")
}

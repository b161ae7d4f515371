package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// emitMap writes the nested_map form (§4.3). It compacts m first (the
// solidifier's one sanctioned mutation of the input graph) and then walks
// the raw slot array by index, so chain links keep referencing the same
// slots after reconstruction. Skipped (empty) slots do not shift later
// indices; they are simply omitted from the emitted entry list.
func (e *emitter) emitMap(m *value.Map, prefix string) error {
	m.Compact()
	slots := m.Slots()

	if err := e.sink.Write(fmt.Sprintf("frozen.NestedMap(%d, []frozen.MapEntry{", m.Count())); err != nil {
		return err
	}
	first := true
	for _, node := range slots {
		if node.Key.IsNil() {
			continue
		}
		if !first {
			if err := e.sink.Write(", "); err != nil {
				return err
			}
		}
		first = false

		if err := e.sink.Write("{Key: "); err != nil {
			return err
		}
		keyStr := ""
		switch node.Key.Kind {
		case value.KindString:
			ident := Identifier(node.Key.S)
			keyStr = node.Key.S
			form := "frozen.ConstKey(%q, %d)"
			if e.literalMode {
				form = "frozen.ConstKeyWeak(%q, %d)"
			}
			if err := e.sink.Write(fmt.Sprintf(form, ident, node.Next)); err != nil {
				return err
			}
		case value.KindInt, value.KindIndex:
			if err := e.sink.Write(fmt.Sprintf("frozen.ConstKeyInt(%d, %d)", node.Key.I, node.Next)); err != nil {
				return err
			}
		default:
			return newError(KindUnsupportedKey, "map key kind %v", node.Key.Kind)
		}

		if err := e.sink.Write(", Val: "); err != nil {
			return err
		}
		if err := e.emitValue(node.Val, prefix, keyStr); err != nil {
			return err
		}
		if err := e.sink.Write("}"); err != nil {
			return err
		}
	}
	return e.sink.Write("})")
}

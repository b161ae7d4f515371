package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// emitModuleDef writes the full module definition (§4.8): every
// string-keyed closure and class in the module table, then the
// local_module(...) statement and its trailing export marker.
func (e *emitter) emitModuleDef(m *value.Module) error {
	if m.Table != nil {
		for _, node := range m.Table.Slots() {
			if node.Key.IsNil() || node.Key.Kind != value.KindString {
				continue
			}
			switch node.Val.Kind {
			case value.KindClosure:
				if err := e.emitClosureDef(node.Val.Closure, ""); err != nil {
					return err
				}
			case value.KindClass:
				if err := e.emitClassDef(node.Val.Class); err != nil {
					return err
				}
			}
		}
	}

	if err := e.sink.Write(fmt.Sprintf("frozen.LocalModule(%q, %q, ", m.Name, m.Name)); err != nil {
		return err
	}
	if m.Table != nil && m.Table.Count() > 0 {
		if err := e.emitMap(m.Table, ""); err != nil {
			return err
		}
	} else if err := e.sink.Write("nil"); err != nil {
		return err
	}
	if err := e.sink.Write(");\n"); err != nil {
		return err
	}
	return e.sink.Write(fmt.Sprintf("frozen.DefineConstNativeModule(%q)\n", m.Name))
}

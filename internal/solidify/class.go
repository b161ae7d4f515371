package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// emitClassDef writes the full class definition (§4.7): a forward
// declaration before walking members (so member closures can reference
// the class they belong to, breaking the class↔method cycle
// structurally, per §9), each member closure, a banner, the super-class
// extern, and the local_class(...) statement.
//
// Classes are forward-declared and emitted at most once; a class reached
// from more than one place (an inner-class pre-pass and a module table,
// say) is only defined the first time.
func (e *emitter) emitClassDef(c *value.Class) error {
	if e.emittedClasses[c] {
		return nil
	}
	e.emittedClasses[c] = true

	if err := e.sink.Write(fmt.Sprintf("extern const bclass be_class_%s;\n", c.Name)); err != nil {
		return err
	}

	if c.Members != nil {
		for _, node := range c.Members.Slots() {
			if node.Key.IsNil() || node.Key.Kind != value.KindString {
				continue
			}
			if node.Val.Kind != value.KindClosure {
				continue
			}
			if err := e.emitClosureDef(node.Val.Closure, "class_"+c.Name); err != nil {
				return err
			}
		}
	}

	if err := e.sink.Write(fmt.Sprintf("// Class: %s\n", c.Name)); err != nil {
		return err
	}
	if c.Super != nil {
		if err := e.sink.Write(fmt.Sprintf("extern const bclass be_class_%s;\n", c.Super.Name)); err != nil {
			return err
		}
	}

	superRef := "nil"
	if c.Super != nil {
		superRef = fmt.Sprintf("frozen.ConstClass(%q)", c.Super.Name)
	}
	nameIdent := Identifier(c.Name)
	nameForm := fmt.Sprintf("frozen.ConstStr(%q)", nameIdent)
	if e.literalMode {
		nameForm = fmt.Sprintf("frozen.StrWeak(%q)", nameIdent)
	}

	if err := e.sink.Write(fmt.Sprintf("frozen.LocalClass(%q, %d, %s, ", c.Name, c.NVar, superRef)); err != nil {
		return err
	}
	if c.Members != nil && c.Members.Count() > 0 {
		if err := e.emitMap(c.Members, "class_"+c.Name); err != nil {
			return err
		}
	} else if err := e.sink.Write("nil"); err != nil {
		return err
	}
	return e.sink.Write(fmt.Sprintf(", %s);\n", nameForm))
}

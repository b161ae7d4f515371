package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

func parentPrefix(p *value.Prototype) (string, bool) {
	if p.ParentClass == nil {
		return "", false
	}
	return "class_" + p.ParentClass.Name, true
}

// closureSymbol builds the const_[static_][class_]<prefix>_<ident>_closure
// form from §4.2's dispatch table.
func closureSymbol(c *value.Closure, callerPrefix string) string {
	effPrefix := callerPrefix
	hasParent := false
	if pp, ok := parentPrefix(c.Proto); ok {
		effPrefix = pp
		hasParent = true
	}
	mods := ""
	if c.Static {
		mods += "static_"
	}
	if hasParent {
		mods += "class_"
	}
	return mods + effPrefix + "_" + Identifier(c.Proto.Name) + "_closure"
}

// emitClosureRef emits a reference to an (already or about-to-be defined)
// closure — the Value emitter's Closure case (§4.2). It never recurses
// into the prototype body.
func (e *emitter) emitClosureRef(c *value.Closure, prefix string) error {
	return e.sink.Write(fmt.Sprintf("frozen.ConstClosure(%q)", closureSymbol(c, prefix)))
}

// emitClosureDef writes the full closure definition (§4.6): borrowed-
// method detection, the upvalue soft-warning, the inner-class pre-pass,
// and the local_closure(...) statement wrapping the prototype.
func (e *emitter) emitClosureDef(c *value.Closure, prefix string) error {
	if wantPrefix, ok := parentPrefix(c.Proto); ok && wantPrefix != prefix {
		// Borrowed method: the prototype's parent class doesn't match the
		// current emission context. Emit a forward declaration and skip
		// the body entirely (§4.6 step 1, §9).
		symbol := fmt.Sprintf("class_%s_%s", c.Proto.ParentClass.Name, Identifier(c.Proto.Name))
		if err := e.sink.Write(fmt.Sprintf("// Borrowed method %q from class %q\n", c.Proto.Name, c.Proto.ParentClass.Name)); err != nil {
			return err
		}
		return e.sink.Write(fmt.Sprintf("extern bclosure *%s;\n", symbol))
	}

	if c.UpvalCount > 0 {
		e.warn("closure %q carries %d live upvalue(s); emission continues per soft-warning disposition", c.Proto.Name, c.UpvalCount)
		if err := e.sink.Write("// --> Unsupported upvals in closure <---\n"); err != nil {
			return err
		}
	}

	if err := e.innerClassPrePass(c.Proto); err != nil {
		return err
	}

	if err := e.sink.Write(fmt.Sprintf("// Closure: %s\n", c.Proto.Name)); err != nil {
		return err
	}

	if c.Proto.ParentClass != nil {
		if err := e.sink.Write(fmt.Sprintf("extern const bclass be_class_%s;\n", c.Proto.ParentClass.Name)); err != nil {
			return err
		}
	}

	symName := Identifier(c.Proto.Name)
	if prefix != "" {
		symName = prefix + "_" + symName
	}
	if err := e.sink.Write(fmt.Sprintf("frozen.LocalClosure(%q,\n", symName)); err != nil {
		return err
	}
	if err := e.emitPrototype(c.Proto, c.Proto.Name, prefix); err != nil {
		return err
	}
	return e.sink.Write(");\n")
}

package solidify

import (
	"bytes"

	"github.com/emberlang/ember/internal/value"
)

// Options mirrors solidify.dump's optional arguments (§6).
type Options struct {
	// LiteralMode selects the weak constructor family for strings and
	// names. Default false.
	LiteralMode bool
	// Sink is the output destination. If nil, Dump writes to an internal
	// buffer and returns its contents in Result.Text.
	Sink Sink
	// Prefix seeds the outermost closure's naming context. Per SPEC_FULL.md
	// §10, it only ever flows into closure emission, never class or module
	// emission — preserved exactly as observed in the original behavior.
	Prefix string
	// BuiltinCount is the VM's builtin-table size, used to validate every
	// GETGBL/SETGBL Bx operand (§4.5).
	BuiltinCount int
}

// Result is the outcome of a successful Dump.
type Result struct {
	// Text holds the emitted source when Options.Sink was nil.
	Text string
	// Warnings accumulates soft dispositions (§7): nonzero-upvalue
	// closures, currently. Borrowed methods are a "soft notice" per §7 but
	// do not accumulate a warning — the emitted extern stub is itself the
	// observable record.
	Warnings []Warning
}

// Dump is the solidifier's single entry point, corresponding to
// solidify.dump(value, literal_mode, output, prefix) (§6). value must be
// *value.Closure, *value.Class, or *value.Module; anything else raises
// value_error.
func Dump(input any, opts Options) (*Result, error) {
	var buf *bytes.Buffer
	sink := opts.Sink
	if sink == nil {
		buf = &bytes.Buffer{}
		sink = NewWriterSink(buf)
	}

	e := newEmitter(sink, opts.LiteralMode, opts.BuiltinCount)

	var err error
	switch v := input.(type) {
	case *value.Closure:
		err = e.emitClosureDef(v, opts.Prefix)
	case *value.Class:
		err = e.emitClassDef(v)
	case *value.Module:
		err = e.emitModuleDef(v)
	default:
		err = newError(KindValueError, "top-level value must be closure, class, or module, got %T", input)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Warnings: e.warnings}
	if buf != nil {
		res.Text = buf.String()
	}
	return res, nil
}

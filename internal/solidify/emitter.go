package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// emitter carries the traversal state shared by every emission function:
// the output sink, the literal/weak-mode flag, the VM's builtin count for
// global-access validation (§4.5), accumulated soft warnings, and the set
// of classes already forward-declared (so a class referenced from more
// than one place is only emitted once).
type emitter struct {
	sink         Sink
	literalMode  bool
	builtinCount int

	warnings []Warning

	emittedClasses map[*value.Class]bool
}

func newEmitter(sink Sink, literalMode bool, builtinCount int) *emitter {
	return &emitter{
		sink:           sink,
		literalMode:    literalMode,
		builtinCount:   builtinCount,
		emittedClasses: make(map[*value.Class]bool),
	}
}

func (e *emitter) warn(format string, args ...any) {
	e.warnings = append(e.warnings, Warning{Message: fmt.Sprintf(format, args...)})
}

package solidify

import (
	"fmt"

	"github.com/emberlang/ember/internal/value"
)

// emitList writes the nested_list form (§4.4): source order preserved,
// each element recursed with the enclosing prefix and an empty key.
func (e *emitter) emitList(l []value.Value, prefix string) error {
	if err := e.sink.Write(fmt.Sprintf("frozen.NestedList(%d, []any{", len(l))); err != nil {
		return err
	}
	for i, el := range l {
		if i > 0 {
			if err := e.sink.Write(", "); err != nil {
				return err
			}
		}
		if err := e.emitValue(el, prefix, ""); err != nil {
			return err
		}
	}
	return e.sink.Write("})")
}

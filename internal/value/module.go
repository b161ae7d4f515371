package value

// Module is the top-level container the solidifier's module emitter walks:
// a name and a table mapping member names to closures or classes.
type Module struct {
	Name  string
	Table *Map
}

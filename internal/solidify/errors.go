package solidify

import "fmt"

// Kind classifies the hard-error dispositions from SPEC_FULL.md §7.
type Kind int

const (
	KindValueError Kind = iota
	KindUnsupportedClass
	KindInstanceSuperSub
	KindUnsupportedKey
	KindUnsupportedConstant
	KindNonBuiltinGlobal
	KindMemory
)

func (k Kind) String() string {
	switch k {
	case KindValueError:
		return "value_error"
	case KindUnsupportedClass:
		return "internal_error: unsupported class"
	case KindInstanceSuperSub:
		return "internal_error: instance must not have super/sub"
	case KindUnsupportedKey:
		return "internal_error: unsupported type in key"
	case KindUnsupportedConstant:
		return "internal_error: unsupported type in constants"
	case KindNonBuiltinGlobal:
		return "internal_error: non-builtin global"
	case KindMemory:
		return "memory_error"
	default:
		return "unknown_error"
	}
}

// Error is the hard-error type raised by the solidifier. It mirrors the VM
// exception the original C implementation raises; here it is simply a Go
// error with a Kind so callers can switch on disposition.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Warning is a soft-disposition event (§7): emission continues, but the
// caller can inspect Result.Warnings afterward.
type Warning struct {
	Message string
}

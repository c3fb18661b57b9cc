// Package fault defines the error taxonomy shared by the events and
// query packages: most not-found conditions are reported as (value,
// bool) at the call site, ErrNotFound covers the call sites that must
// return an error instead, and every other fault is one of the
// remaining sentinels below.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported marks a catchable "not yet implemented" fault: the
	// graph topology is valid but this code path has not been taught to
	// handle it (e.g. trail reconstruction through a List or OneOf shape).
	ErrUnsupported = errors.New("unsupported topology")

	// ErrInvariant marks a fatal programming error: the graph structure
	// contradicts a documented invariant. Callers should not attempt to
	// recover; the projection must be considered corrupt.
	ErrInvariant = errors.New("invariant violation")

	// ErrNotFound is reserved for call sites that must return an error
	// (rather than a (value, bool) pair) for a missing identifier, such as
	// when not-found occurs deep inside a call chain that cannot easily
	// thread a bool back to the top. Most lookups prefer (value, bool).
	ErrNotFound = errors.New("not found")
)

// Unsupportedf wraps ErrUnsupported with a formatted, call-site-specific
// message and returns it as a normal error value.
func Unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// PanicUnsupported panics with an error wrapping ErrUnsupported. Used at
// call sites that have no error-return channel but whose caller may
// still want to recover and classify the failure distinctly from an
// invariant violation via errors.Is on the recovered value.
func PanicUnsupported(format string, args ...any) {
	panic(Unsupportedf(format, args...))
}

// MustInvariant panics with an error wrapping ErrInvariant. It is used
// where the graph itself is supposed to guarantee the data: a Shape with
// no CoreShape ancestor, a HasBinding edge pointing at a
// non-ShapeParameter node, and similar structural contradictions.
func MustInvariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
}

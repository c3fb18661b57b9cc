package shapegraph

import (
	"errors"
	"fmt"
)

// Error sentinels for internal graph failures. These indicate programmer
// errors or a corrupt projection, not ordinary not-found conditions -
// those are reported as (value, false) from lookup methods instead.
var (
	// ErrInternal is the base error for internal graph failures.
	ErrInternal = errors.New("internal shapegraph failure")

	// ErrNilGraph indicates a method was called on a nil *Graph receiver.
	ErrNilGraph = fmt.Errorf("%w: nil *Graph receiver", ErrInternal)

	// ErrDuplicateID indicates AddShape or AddField was called with an
	// identifier already present in its namespace; identifiers are unique
	// across the graph lifetime.
	ErrDuplicateID = fmt.Errorf("%w: identifier already present in its namespace", ErrInternal)
)

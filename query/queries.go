// Package query implements the trail resolver, choice enumerator, and
// shape-edit command planner: the read-side operations a host embeds
// this module for.
package query

import (
	"log/slog"

	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/shapegraph"
)

// Queries is a thin, stateless wrapper around a shapegraph.Graph. All
// methods are pure reads except EditShapeTrailCommands, which also
// consumes an ids.Generator passed in by the caller.
type Queries struct {
	graph  *shapegraph.Graph
	logger *slog.Logger
}

// Option configures a Queries value.
type Option func(*Queries)

// WithLogger attaches a logger for operation-boundary tracing. Pure
// query methods do not log by default; this exists for parity with the
// rest of the module's functional-options convention and for future
// instrumentation.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queries) {
		q.logger = logger
	}
}

// New constructs a Queries over g.
func New(g *shapegraph.Graph, opts ...Option) *Queries {
	q := &Queries{graph: g}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// ResolvedTrail is the result of one resolve-step: the shape currently
// at this position in the trail, and the core kind it resolves to.
type ResolvedTrail struct {
	ShapeID       ids.ShapeId
	CoreShapeKind kind.Kind
}

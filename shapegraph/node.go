package shapegraph

import (
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
)

// NodeIndex addresses a node within a Graph. Indices are stable for the
// lifetime of the graph they were issued from; they are never reused.
type NodeIndex int

// Node is the closed sum of graph node variants. It is implemented only
// by the types in this file; callers switch on node.(type) to discover
// which variant they hold.
type Node interface {
	isNode()
}

// CoreShape is the canonical ancestor of every user shape of a given
// kind. Exactly one CoreShape node exists per kind.Kind, seeded when the
// Graph is constructed.
type CoreShape struct {
	Kind kind.Kind
}

func (CoreShape) isNode() {}

// Shape is a user-defined shape instance.
type Shape struct {
	ShapeID ids.ShapeId
	Name    string
}

func (Shape) isNode() {}

// Field is a named member of an object shape.
type Field struct {
	FieldID ids.FieldId
	Name    string
	// Removed marks a tombstoned field: its ID remains unique and its
	// node remains in the graph, but it no longer participates in
	// FieldsOf enumeration.
	Removed bool
}

func (Field) isNode() {}

// ShapeParameter is a slot a parameterized shape exposes.
type ShapeParameter struct {
	ParameterID ids.ShapeParameterId
	Name        string
}

func (ShapeParameter) isNode() {}

// BatchCommit is an inert provenance marker carried through from the
// event stream; the core never inspects its contents.
type BatchCommit struct {
	CommitID string
}

func (BatchCommit) isNode() {}

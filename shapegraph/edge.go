package shapegraph

import "github.com/shapelang/shapecore/ids"

// EdgeKind is the closed sum of graph edge variants.
type EdgeKind int

const (
	// IsDescendantOf: Shape -> (Shape | CoreShape). Every Shape has
	// exactly one, terminating at a unique CoreShape.
	IsDescendantOf EdgeKind = iota
	// IsFieldOf: Field -> Shape. Identifies the owning object.
	IsFieldOf
	// BelongsTo: Shape -> Field. Identifies the shape currently bound as
	// that field's type.
	BelongsTo
	// HasBinding: Shape -> ShapeParameter. Carries the bound shape ID as
	// edge payload (BoundShapeID).
	HasBinding
)

// Edge is a directed, typed edge between two nodes. Edges are immutable
// once appended; the projection is append-mostly.
type Edge struct {
	Kind   EdgeKind
	Source NodeIndex
	Target NodeIndex

	// BoundShapeID is populated only for HasBinding edges: the shape
	// currently filling the parameter slot at Target.
	BoundShapeID ids.ShapeId
}

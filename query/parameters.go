package query

import (
	"github.com/shapelang/shapecore/fault"
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/shapegraph"
)

// ParameterBinding pairs a declared parameter slot with the shape
// currently bound to it.
type ParameterBinding struct {
	ParameterID  ids.ShapeParameterId
	BoundShapeID ids.ShapeId
}

// ResolveParameterToShape returns the shape bound to parameterID on
// shapeID. Panics via fault.MustInvariant if shapeID, parameterID, or
// the binding between them does not exist - callers must only pass
// parameters declared on the shape's kind. When the parameter has been
// bound more than once, the most recent binding wins.
func (q *Queries) ResolveParameterToShape(shapeID ids.ShapeId, parameterID ids.ShapeParameterId) ids.ShapeId {
	shapeIdx, ok := q.graph.ShapeNode(shapeID)
	if !ok {
		fault.MustInvariant("shape %q does not exist", shapeID)
	}
	parameterIdx, ok := q.graph.ParameterNode(parameterID)
	if !ok {
		fault.MustInvariant("shape parameter %q does not exist", parameterID)
	}

	var bound ids.ShapeId
	found := false
	for _, e := range q.graph.EdgesFrom(shapeIdx, shapegraph.HasBinding) {
		if e.Target == parameterIdx {
			bound, found = e.BoundShapeID, true
		}
	}
	if found {
		return bound
	}
	fault.MustInvariant("expected a parameter binding from shape %q to parameter %q", shapeID, parameterID)
	panic("unreachable")
}

// ResolveParametersToShapes returns every (parameterID, boundShapeID)
// pair bound on shapeID, in outgoing HasBinding edge order (the order
// parameters were declared/bound in). A parameter bound more than once
// appears once, at the position of its first binding, carrying its most
// recent bound shape.
func (q *Queries) ResolveParametersToShapes(shapeID ids.ShapeId) []ParameterBinding {
	shapeIdx, ok := q.graph.ShapeNode(shapeID)
	if !ok {
		fault.MustInvariant("shape %q does not exist", shapeID)
	}

	var out []ParameterBinding
	position := map[ids.ShapeParameterId]int{}
	for _, e := range q.graph.EdgesFrom(shapeIdx, shapegraph.HasBinding) {
		param, ok := q.graph.NodeAt(e.Target).(shapegraph.ShapeParameter)
		if !ok {
			fault.MustInvariant("HasBinding edge from shape %q does not point at a ShapeParameter", shapeID)
		}
		if i, seen := position[param.ParameterID]; seen {
			out[i].BoundShapeID = e.BoundShapeID
			continue
		}
		position[param.ParameterID] = len(out)
		out = append(out, ParameterBinding{ParameterID: param.ParameterID, BoundShapeID: e.BoundShapeID})
	}
	return out
}

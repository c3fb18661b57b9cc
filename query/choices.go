package query

import (
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/trail"
)

// ChoiceOutput is one alternative (primitive terminal or combinator
// sentinel) reachable at a trail tip.
type ChoiceOutput struct {
	ParentTrail          trail.ShapeTrail
	AdditionalComponents []trail.PathComponent
	ShapeID              ids.ShapeId
	CoreShapeKind        kind.Kind
}

// ShapeTrail reconstructs the full trail this choice was found at, by
// appending AdditionalComponents to ParentTrail.
func (c ChoiceOutput) ShapeTrail() trail.ShapeTrail {
	t := c.ParentTrail
	for _, comp := range c.AdditionalComponents {
		t = t.WithComponent(comp)
	}
	return t
}

// ListTrailChoices walks shapeTrail and enumerates the primitive
// alternatives reachable at its tip, recursing through Nullable,
// Optional, and OneOf combinators. The result order is deterministic
// for a given graph and trail: callers may rely on it, e.g. to render
// a stable list of edit options.
func (q *Queries) ListTrailChoices(shapeTrail trail.ShapeTrail) []ChoiceOutput {
	resolved := ResolvedTrail{
		ShapeID:       shapeTrail.RootShapeID,
		CoreShapeKind: q.ResolveToCoreShape(shapeTrail.RootShapeID),
	}
	for _, component := range shapeTrail.Path {
		resolved = q.resolveTrailStep(resolved, component)
	}

	currentIdx, ok := q.graph.ShapeNode(resolved.ShapeID)
	if !ok {
		return nil
	}

	var result []ChoiceOutput
	for _, core := range q.graph.CoreShapeChildren(currentIdx) {
		result = append(result, q.expandCoreShapeChoice(shapeTrail, resolved.ShapeID, core.Kind)...)
	}
	return result
}

// expandCoreShapeChoice implements the per-kind choice enumeration
// recursion rules: a sentinel choice for each wrapper kind, then a
// recursive descent into what it wraps.
func (q *Queries) expandCoreShapeChoice(parentTrail trail.ShapeTrail, shapeID ids.ShapeId, coreKind kind.Kind) []ChoiceOutput {
	switch coreKind {
	case kind.Nullable:
		innerID := q.ResolveParameterToShape(shapeID, kind.NullableInner)
		extended := parentTrail.
			WithComponent(trail.NullableTrail{ShapeID: shapeID}).
			WithComponent(trail.NullableItemTrail{ShapeID: shapeID, InnerShapeID: innerID})

		out := []ChoiceOutput{{
			ParentTrail:          parentTrail,
			AdditionalComponents: []trail.PathComponent{trail.NullableTrail{ShapeID: shapeID}},
			ShapeID:              shapeID,
			CoreShapeKind:        kind.Nullable,
		}}
		return append(out, q.ListTrailChoices(extended)...)

	case kind.Optional:
		innerID := q.ResolveParameterToShape(shapeID, kind.OptionalInner)
		extended := parentTrail.
			WithComponent(trail.OptionalTrail{ShapeID: shapeID}).
			WithComponent(trail.OptionalItemTrail{ShapeID: shapeID, InnerShapeID: innerID})

		out := []ChoiceOutput{{
			ParentTrail:          parentTrail,
			AdditionalComponents: []trail.PathComponent{trail.OptionalTrail{ShapeID: shapeID}},
			ShapeID:              shapeID,
			CoreShapeKind:        kind.Optional,
		}}
		return append(out, q.ListTrailChoices(extended)...)

	case kind.OneOf:
		var out []ChoiceOutput
		for _, binding := range q.ResolveParametersToShapes(shapeID) {
			extended := parentTrail.
				WithComponent(trail.OneOfTrail{ShapeID: shapeID}).
				WithComponent(trail.OneOfItemTrail{
					OneOfID:     shapeID,
					ParameterID: binding.ParameterID,
					ItemShapeID: binding.BoundShapeID,
				})
			out = append(out, q.ListTrailChoices(extended)...)
		}
		return out

	default:
		return []ChoiceOutput{{
			ParentTrail:   parentTrail,
			ShapeID:       shapeID,
			CoreShapeKind: coreKind,
		}}
	}
}

// ListKnownTrailChoices is ListTrailChoices filtered to exclude
// kind.Unknown choices.
func (q *Queries) ListKnownTrailChoices(shapeTrail trail.ShapeTrail) []ChoiceOutput {
	choices := q.ListTrailChoices(shapeTrail)
	out := choices[:0:0]
	for _, c := range choices {
		if c.CoreShapeKind != kind.Unknown {
			out = append(out, c)
		}
	}
	return out
}

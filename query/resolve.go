package query

import (
	"github.com/shapelang/shapecore/fault"
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/shapegraph"
	"github.com/shapelang/shapecore/trail"
)

// ResolveToCoreShape returns the CoreShape kind the shape at shapeID
// ultimately descends from. Panics (via fault.MustInvariant) if shapeID
// is unknown or its descendant chain does not terminate at a
// CoreShape - both are invariant violations, never ordinary
// not-found conditions, because every caller is expected to have
// obtained shapeID from this same graph.
func (q *Queries) ResolveToCoreShape(shapeID ids.ShapeId) kind.Kind {
	shapeIdx, ok := q.graph.ShapeNode(shapeID)
	if !ok {
		fault.MustInvariant("shape %q does not exist", shapeID)
	}
	coreIdx, ok := q.graph.AncestorCoreShape(shapeIdx)
	if !ok {
		fault.MustInvariant("shape %q has no CoreShape ancestor", shapeID)
	}
	core, ok := q.graph.NodeAt(coreIdx).(shapegraph.CoreShape)
	if !ok {
		fault.MustInvariant("ancestor of shape %q is not a CoreShape", shapeID)
	}
	return core.Kind
}

// resolveTrailStep is the exhaustively-matched dispatch table: given
// the parent's resolved position and the next path component, compute
// the next resolved position.
//
// Adding a new kind.Kind without adding its case here is a bug this
// function surfaces immediately, by panicking through
// fault.MustInvariant (or, for the Map, Identifier, Reference, and Any
// parents, through fault.PanicUnsupported with an error wrapping
// fault.ErrUnsupported), rather than silently falling through.
func (q *Queries) resolveTrailStep(parent ResolvedTrail, component trail.PathComponent) ResolvedTrail {
	switch parent.CoreShapeKind {
	case kind.List:
		c, ok := component.(trail.ListItemTrail)
		if !ok {
			fault.MustInvariant("expected ListItemTrail relative to List, got %T", component)
		}
		return ResolvedTrail{ShapeID: c.ItemShapeID, CoreShapeKind: q.ResolveToCoreShape(c.ItemShapeID)}

	case kind.Object:
		switch c := component.(type) {
		case trail.ObjectTrail:
			return ResolvedTrail{ShapeID: c.ShapeID, CoreShapeKind: kind.Object}
		case trail.ObjectFieldTrail:
			return ResolvedTrail{ShapeID: c.FieldShapeID, CoreShapeKind: q.ResolveToCoreShape(c.FieldShapeID)}
		default:
			fault.MustInvariant("expected ObjectTrail or ObjectFieldTrail relative to Object, got %T", component)
		}

	case kind.Nullable:
		switch c := component.(type) {
		case trail.NullableTrail:
			return ResolvedTrail{ShapeID: parent.ShapeID, CoreShapeKind: kind.Nullable}
		case trail.NullableItemTrail:
			return ResolvedTrail{ShapeID: c.InnerShapeID, CoreShapeKind: q.ResolveToCoreShape(c.InnerShapeID)}
		default:
			fault.MustInvariant("expected NullableTrail or NullableItemTrail relative to Nullable, got %T", component)
		}

	case kind.Optional:
		switch c := component.(type) {
		case trail.OptionalTrail:
			return ResolvedTrail{ShapeID: parent.ShapeID, CoreShapeKind: kind.Optional}
		case trail.OptionalItemTrail:
			return ResolvedTrail{ShapeID: c.InnerShapeID, CoreShapeKind: q.ResolveToCoreShape(c.InnerShapeID)}
		default:
			fault.MustInvariant("expected OptionalTrail or OptionalItemTrail relative to Optional, got %T", component)
		}

	case kind.OneOf:
		switch c := component.(type) {
		case trail.OneOfTrail:
			return ResolvedTrail{ShapeID: parent.ShapeID, CoreShapeKind: kind.OneOf}
		case trail.OneOfItemTrail:
			return ResolvedTrail{ShapeID: c.ItemShapeID, CoreShapeKind: q.ResolveToCoreShape(c.ItemShapeID)}
		default:
			fault.MustInvariant("expected OneOfTrail or OneOfItemTrail relative to OneOf, got %T", component)
		}

	case kind.String, kind.Number, kind.Boolean, kind.Unknown:
		return parent

	case kind.Map, kind.Identifier, kind.Reference, kind.Any:
		fault.PanicUnsupported("trail resolution through %s is not yet implemented", parent.CoreShapeKind)

	default:
		fault.MustInvariant("unrecognized core shape kind %v", parent.CoreShapeKind)
	}

	panic("unreachable")
}

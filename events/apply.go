package events

import (
	"context"
	"fmt"

	"github.com/shapelang/shapecore/fault"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/shapegraph"
)

// Apply mutates g to reflect ev. It returns fault.ErrNotFound when ev
// references an identifier the graph does not yet know about, and
// fault.ErrUnsupported for an event tag or baseShapeId this projection
// does not recognize.
func Apply(ctx context.Context, g *shapegraph.Graph, ev Event) error {
	switch v := ev.(type) {
	case ShapeAdded:
		k, ok := kind.CoreShapeKindFor(v.BaseShapeID)
		if !ok {
			return fault.Unsupportedf("unknown base shape id %q", v.BaseShapeID)
		}
		_, err := g.AddShape(ctx, v.ShapeID, v.Name, k)
		return err

	case ShapeParameterAdded:
		if _, ok := g.ShapeNode(v.ShapeID); !ok {
			return fault.NotFoundf("shape %q", v.ShapeID)
		}
		g.AddShapeParameter(ctx, v.ParameterID, v.Name)
		return nil

	case ShapeParameterShapeSet:
		shapeIdx, ok := g.ShapeNode(v.ShapeID)
		if !ok {
			return fault.NotFoundf("shape %q", v.ShapeID)
		}
		parameterIdx, ok := g.ParameterNode(v.ParameterID)
		if !ok {
			return fault.NotFoundf("shape parameter %q", v.ParameterID)
		}
		if _, ok := g.ShapeNode(v.ProviderShapeID); !ok {
			return fault.NotFoundf("provider shape %q", v.ProviderShapeID)
		}
		g.SetParameterShape(ctx, shapeIdx, parameterIdx, v.ProviderShapeID)
		return nil

	case FieldAdded:
		ownerIdx, ok := g.ShapeNode(v.ShapeID)
		if !ok {
			return fault.NotFoundf("shape %q", v.ShapeID)
		}
		fieldIdx, err := g.AddField(ctx, v.FieldID, v.Name, ownerIdx)
		if err != nil {
			return err
		}
		fieldShapeIdx, ok := g.ShapeNode(v.FieldShapeID)
		if !ok {
			return fault.NotFoundf("field shape %q", v.FieldShapeID)
		}
		g.SetFieldShape(ctx, fieldShapeIdx, fieldIdx)
		return nil

	case FieldRemoved:
		fieldIdx, _, ok := g.FieldNode(v.FieldID)
		if !ok {
			return fault.NotFoundf("field %q", v.FieldID)
		}
		g.RemoveField(ctx, fieldIdx)
		return nil

	default:
		return fault.Unsupportedf("unsupported event variant %T", ev)
	}
}

// ApplyAll applies events in order, stopping at the first error.
func ApplyAll(ctx context.Context, g *shapegraph.Graph, evs []Event) error {
	for i, ev := range evs {
		if err := Apply(ctx, g, ev); err != nil {
			return fmt.Errorf("events: applying event %d (%T): %w", i, ev, err)
		}
	}
	return nil
}

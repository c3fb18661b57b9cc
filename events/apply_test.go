package events_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapelang/shapecore/events"
	"github.com/shapelang/shapecore/fault"
	"github.com/shapelang/shapecore/shapegraph"
)

func TestApply_ShapeAdded(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()

	err := events.Apply(ctx, g, events.ShapeAdded{ShapeID: "string_shape_1", BaseShapeID: "$string", Name: ""})
	require.NoError(t, err)

	_, ok := g.ShapeNode("string_shape_1")
	assert.True(t, ok)
}

func TestApply_ShapeAdded_UnknownBaseShape(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()

	err := events.Apply(ctx, g, events.ShapeAdded{ShapeID: "shape_1", BaseShapeID: "$bogus", Name: ""})
	assert.ErrorIs(t, err, fault.ErrUnsupported)
}

func TestApply_FieldAdded_BindsFieldShape(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()

	require.NoError(t, events.Apply(ctx, g, events.ShapeAdded{ShapeID: "object_shape_1", BaseShapeID: "$object"}))
	require.NoError(t, events.Apply(ctx, g, events.ShapeAdded{ShapeID: "string_shape_1", BaseShapeID: "$string"}))
	require.NoError(t, events.Apply(ctx, g, events.FieldAdded{
		FieldID: "field_1", ShapeID: "object_shape_1", Name: "name", FieldShapeID: "string_shape_1",
	}))

	fieldIdx, field, ok := g.FieldNode("field_1")
	require.True(t, ok)
	assert.Equal(t, "name", field.Name)

	ownerIdx, _, ok := g.Owner(fieldIdx)
	require.True(t, ok)
	objIdx, _ := g.ShapeNode("object_shape_1")
	assert.Equal(t, objIdx, ownerIdx)
}

func TestApply_FieldAdded_UnknownOwner(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()
	err := events.Apply(ctx, g, events.FieldAdded{FieldID: "field_1", ShapeID: "does_not_exist", Name: "x", FieldShapeID: "string_shape_1"})
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestApply_FieldRemoved_TombstonesField(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()

	require.NoError(t, events.Apply(ctx, g, events.ShapeAdded{ShapeID: "object_shape_1", BaseShapeID: "$object"}))
	require.NoError(t, events.Apply(ctx, g, events.ShapeAdded{ShapeID: "string_shape_1", BaseShapeID: "$string"}))
	require.NoError(t, events.Apply(ctx, g, events.FieldAdded{
		FieldID: "field_1", ShapeID: "object_shape_1", Name: "name", FieldShapeID: "string_shape_1",
	}))

	require.NoError(t, events.Apply(ctx, g, events.FieldRemoved{FieldID: "field_1"}))

	objIdx, _ := g.ShapeNode("object_shape_1")
	assert.Empty(t, g.FieldsOf(objIdx))
}

func TestApply_FieldRemoved_UnknownField(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()
	err := events.Apply(ctx, g, events.FieldRemoved{FieldID: "does_not_exist"})
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestApply_ShapeParameterShapeSet(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()

	require.NoError(t, events.Apply(ctx, g, events.ShapeAdded{ShapeID: "nullable_shape_1", BaseShapeID: "$nullable"}))
	require.NoError(t, events.Apply(ctx, g, events.ShapeAdded{ShapeID: "string_shape_1", BaseShapeID: "$string"}))
	require.NoError(t, events.Apply(ctx, g, events.ShapeParameterAdded{ShapeID: "nullable_shape_1", ParameterID: "$nullableInner", Name: "nullableInner"}))
	require.NoError(t, events.Apply(ctx, g, events.ShapeParameterShapeSet{
		ShapeID: "nullable_shape_1", ParameterID: "$nullableInner", ProviderShapeID: "string_shape_1",
	}))

	nullableIdx, _ := g.ShapeNode("nullable_shape_1")
	edges := g.EdgesFrom(nullableIdx, shapegraph.HasBinding)
	require.Len(t, edges, 1)
	assert.Equal(t, "string_shape_1", string(edges[0].BoundShapeID))
}

func TestApplyAll_StopsAtFirstError(t *testing.T) {
	g := shapegraph.New()
	ctx := context.Background()

	err := events.ApplyAll(ctx, g, []events.Event{
		events.ShapeAdded{ShapeID: "string_shape_1", BaseShapeID: "$string"},
		events.FieldRemoved{FieldID: "does_not_exist"},
		events.ShapeAdded{ShapeID: "number_shape_1", BaseShapeID: "$number"},
	})
	require.Error(t, err)

	_, ok := g.ShapeNode("number_shape_1")
	assert.False(t, ok, "events after the failing one must not apply")
}

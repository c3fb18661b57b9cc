package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapelang/shapecore/events"
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/query"
	"github.com/shapelang/shapecore/shapegraph"
)

// fixture is a small, composable event-sourced graph builder for tests,
// avoiding long event literals repeated in every test.
type fixture struct {
	t   *testing.T
	ctx context.Context
	g   *shapegraph.Graph
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, ctx: context.Background(), g: shapegraph.New()}
}

func (f *fixture) apply(ev events.Event) {
	f.t.Helper()
	require.NoError(f.t, events.Apply(f.ctx, f.g, ev))
}

// addShape adds a Shape of baseShapeID (e.g. "$string", "$object").
func (f *fixture) addShape(shapeID ids.ShapeId, baseShapeID string) {
	f.apply(events.ShapeAdded{ShapeID: shapeID, BaseShapeID: baseShapeID, Name: ""})
}

// addField declares fieldID named name on ownerShapeID, typed by fieldShapeID.
func (f *fixture) addField(fieldID ids.FieldId, ownerShapeID ids.ShapeId, name string, fieldShapeID ids.ShapeId) {
	f.apply(events.FieldAdded{FieldID: fieldID, ShapeID: ownerShapeID, Name: name, FieldShapeID: fieldShapeID})
}

// bindUnary declares parameterID on shapeID and binds it to innerShapeID,
// for the unary combinators (Nullable, Optional, List).
func (f *fixture) bindUnary(shapeID ids.ShapeId, parameterID ids.ShapeParameterId, innerShapeID ids.ShapeId) {
	f.apply(events.ShapeParameterAdded{ShapeID: shapeID, ParameterID: parameterID, Name: string(parameterID)})
	f.apply(events.ShapeParameterShapeSet{ShapeID: shapeID, ParameterID: parameterID, ProviderShapeID: innerShapeID})
}

// bindOneOf declares the OneOf alternative parameter parameterID on
// oneOfShapeID and binds it to altShapeID.
func (f *fixture) bindOneOf(oneOfShapeID ids.ShapeId, parameterID ids.ShapeParameterId, altShapeID ids.ShapeId) {
	f.apply(events.ShapeParameterAdded{ShapeID: oneOfShapeID, ParameterID: parameterID, Name: string(parameterID)})
	f.apply(events.ShapeParameterShapeSet{ShapeID: oneOfShapeID, ParameterID: parameterID, ProviderShapeID: altShapeID})
}

func (f *fixture) queries() *query.Queries {
	return query.New(f.g)
}

// nullableWrapping builds a Nullable shape at shapeID wrapping innerShapeID.
func (f *fixture) nullableWrapping(shapeID, innerShapeID ids.ShapeId) {
	f.addShape(shapeID, "$nullable")
	f.bindUnary(shapeID, kind.NullableInner, innerShapeID)
}

// optionalWrapping builds an Optional shape at shapeID wrapping innerShapeID.
func (f *fixture) optionalWrapping(shapeID, innerShapeID ids.ShapeId) {
	f.addShape(shapeID, "$optional")
	f.bindUnary(shapeID, kind.OptionalInner, innerShapeID)
}

// rebindField directly appends a BelongsTo edge rebinding fieldID to
// shapeID, the way a planner-emitted SetFieldShape command would once
// applied by the external validator/executor - there is no standalone
// wire event for it since FieldAdded always binds a fresh field.
func (f *fixture) rebindField(shapeID ids.ShapeId, fieldID ids.FieldId) {
	f.t.Helper()
	shapeIdx, ok := f.g.ShapeNode(shapeID)
	require.True(f.t, ok)
	fieldIdx, _, ok := f.g.FieldNode(fieldID)
	require.True(f.t, ok)
	f.g.SetFieldShape(f.ctx, shapeIdx, fieldIdx)
}

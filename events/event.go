// Package events defines the wire events that construct and mutate a
// shapegraph.Graph, and the decoder that turns a JSON (optionally
// JSONC) event stream into them.
package events

import "github.com/shapelang/shapecore/ids"

// Event is the closed sum of event variants this projection applies.
// The surrounding event-sourcing framework carries other variants too,
// outside this projection's scope; Apply returns an error wrapping
// fault.ErrUnsupported for any variant it does not recognize rather
// than silently ignoring it.
type Event interface {
	isEvent()
}

// ShapeAdded introduces a new Shape descending from a well-known
// CoreShape (BaseShapeID, e.g. "$string", "$object", "$nullable").
type ShapeAdded struct {
	ShapeID     ids.ShapeId
	BaseShapeID string
	Name        string
}

func (ShapeAdded) isEvent() {}

// ShapeParameterAdded declares a new parameter slot on ShapeID.
type ShapeParameterAdded struct {
	ShapeID     ids.ShapeId
	ParameterID ids.ShapeParameterId
	Name        string
}

func (ShapeParameterAdded) isEvent() {}

// ShapeParameterShapeSet binds ProviderShapeID into the ParameterID slot
// declared on ShapeID.
type ShapeParameterShapeSet struct {
	ShapeID         ids.ShapeId
	ParameterID     ids.ShapeParameterId
	ProviderShapeID ids.ShapeId
}

func (ShapeParameterShapeSet) isEvent() {}

// FieldAdded declares a new field named Name on the object shape
// ShapeID, bound to FieldShapeID.
type FieldAdded struct {
	FieldID      ids.FieldId
	ShapeID      ids.ShapeId
	Name         string
	FieldShapeID ids.ShapeId
}

func (FieldAdded) isEvent() {}

// FieldRemoved tombstones FieldID.
type FieldRemoved struct {
	FieldID ids.FieldId
}

func (FieldRemoved) isEvent() {}

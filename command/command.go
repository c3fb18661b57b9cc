// Package command defines the wire commands the shape-edit planner
// emits: instructions an external validator/executor turns into events
// the projection then applies. The core never applies its own commands
// directly.
package command

import (
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
)

// ShapeCommand is the closed sum of planner-emitted commands.
type ShapeCommand interface {
	isShapeCommand()
}

// AddShape requests a new Shape node of the given kind. Name is usually
// empty for planner-generated wrapper shapes.
type AddShape struct {
	ShapeID ids.ShapeId
	Kind    kind.Kind
	Name    string
}

func (AddShape) isShapeCommand() {}

// SetParameterShape requests binding bound shape to the named parameter
// slot on shapeID.
type SetParameterShape struct {
	ShapeID      ids.ShapeId
	ParameterID  ids.ShapeParameterId
	BoundShapeID ids.ShapeId
}

func (SetParameterShape) isShapeCommand() {}

// SetFieldShape requests rebinding fieldID's type to shapeID.
type SetFieldShape struct {
	FieldID ids.FieldId
	ShapeID ids.ShapeId
}

func (SetFieldShape) isShapeCommand() {}

// RemoveField requests tombstoning fieldID.
type RemoveField struct {
	FieldID ids.FieldId
}

func (RemoveField) isShapeCommand() {}

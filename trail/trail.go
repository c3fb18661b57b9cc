// Package trail models a path through a shape graph: an ordered
// sequence of combinator, object, and field steps rooted at a shape ID.
// Trails are plain, immutable value data - they carry no graph
// references and can be constructed, compared, and extended without
// touching a shapegraph.Graph.
package trail

import "github.com/shapelang/shapecore/ids"

// PathComponent is the closed sum of steps a ShapeTrail can take.
// Implemented only by the types in this file.
type PathComponent interface {
	isPathComponent()
}

// ObjectTrail names the object shape itself, with no field selected.
type ObjectTrail struct {
	ShapeID ids.ShapeId
}

func (ObjectTrail) isPathComponent() {}

// ObjectFieldTrail steps from an object shape into one of its fields.
type ObjectFieldTrail struct {
	FieldID             ids.FieldId
	FieldShapeID        ids.ShapeId
	ParentObjectShapeID ids.ShapeId
}

func (ObjectFieldTrail) isPathComponent() {}

// ListItemTrail steps from a list shape into its item shape.
type ListItemTrail struct {
	ListShapeID ids.ShapeId
	ItemShapeID ids.ShapeId
}

func (ListItemTrail) isPathComponent() {}

// NullableTrail names the nullable wrapper shape itself (the sentinel
// choice emitted before descending into its inner shape).
type NullableTrail struct {
	ShapeID ids.ShapeId
}

func (NullableTrail) isPathComponent() {}

// NullableItemTrail steps from a nullable wrapper into its bound inner
// shape.
type NullableItemTrail struct {
	ShapeID      ids.ShapeId
	InnerShapeID ids.ShapeId
}

func (NullableItemTrail) isPathComponent() {}

// OptionalTrail names the optional wrapper shape itself.
type OptionalTrail struct {
	ShapeID ids.ShapeId
}

func (OptionalTrail) isPathComponent() {}

// OptionalItemTrail steps from an optional wrapper into its bound inner
// shape.
type OptionalItemTrail struct {
	ShapeID      ids.ShapeId
	InnerShapeID ids.ShapeId
}

func (OptionalItemTrail) isPathComponent() {}

// OneOfTrail names the one-of shape itself.
type OneOfTrail struct {
	ShapeID ids.ShapeId
}

func (OneOfTrail) isPathComponent() {}

// OneOfItemTrail steps from a one-of shape into one of its bound
// alternatives.
type OneOfItemTrail struct {
	OneOfID     ids.ShapeId
	ParameterID ids.ShapeParameterId
	ItemShapeID ids.ShapeId
}

func (OneOfItemTrail) isPathComponent() {}

// ShapeTrail is a root shape plus the path descending from it.
type ShapeTrail struct {
	RootShapeID ids.ShapeId
	Path        []PathComponent
}

// WithComponent returns a new ShapeTrail with c appended. The receiver
// is never mutated.
func (t ShapeTrail) WithComponent(c PathComponent) ShapeTrail {
	path := make([]PathComponent, len(t.Path), len(t.Path)+1)
	copy(path, t.Path)
	path = append(path, c)
	return ShapeTrail{RootShapeID: t.RootShapeID, Path: path}
}

// IsField reports whether the trail's last component selects a field.
func (t ShapeTrail) IsField() bool {
	if len(t.Path) == 0 {
		return false
	}
	_, ok := t.Path[len(t.Path)-1].(ObjectFieldTrail)
	return ok
}

// LastFieldID returns the FieldId of the trail's last component, if it
// is an ObjectFieldTrail.
func (t ShapeTrail) LastFieldID() (ids.FieldId, bool) {
	if len(t.Path) == 0 {
		return "", false
	}
	f, ok := t.Path[len(t.Path)-1].(ObjectFieldTrail)
	if !ok {
		return "", false
	}
	return f.FieldID, true
}

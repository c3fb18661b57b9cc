package query

import (
	"github.com/shapelang/shapecore/command"
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/trail"
)

// RemoveFieldCommands plans the removal of fieldID: a single
// RemoveField command if the field exists, or (nil, false) otherwise.
func (q *Queries) RemoveFieldCommands(fieldID ids.FieldId) ([]command.ShapeCommand, bool) {
	if _, _, ok := q.graph.FieldNode(fieldID); !ok {
		return nil, false
	}
	return []command.ShapeCommand{command.RemoveField{FieldID: fieldID}}, true
}

// togglableKinds is the set of wrapper kinds EditShapeTrailCommands may
// add or strip. Editing is only supported at a field position; every
// other trail shape is left untouched.
var togglableKinds = map[kind.Kind]bool{
	kind.Optional: true,
	kind.Nullable: true,
}

// wrapperPrototype describes one wrapper shape EditShapeTrailCommands
// will allocate, in the order it must be added (innermost first).
type wrapperPrototype struct {
	shapeID ids.ShapeId
	kind    kind.Kind
	subject ids.ShapeId
}

// EditShapeTrailCommands plans the wrapper shapes (Nullable and/or
// Optional) needed to make the field named by t carry exactly the
// wrapper kinds in requestedKinds, while preserving the field's
// innermost primitive subject.
//
// Returns (nil, false) if t does not select a field, or if no
// primitive subject shape can be located for it.
func (q *Queries) EditShapeTrailCommands(t trail.ShapeTrail, requestedKinds []kind.Kind, gen ids.Generator) ([]command.ShapeCommand, bool) {
	currentChoices := q.ListTrailChoices(t)

	togglable := map[kind.Kind]bool{}
	if t.IsField() {
		togglable = togglableKinds
	}

	var primitiveChoice *ChoiceOutput
	for i := range currentChoices {
		if !togglable[currentChoices[i].CoreShapeKind] {
			primitiveChoice = &currentChoices[i]
			break
		}
	}
	if primitiveChoice == nil {
		return nil, false
	}

	subjectShapeID, ok := subjectFromParentTrail(primitiveChoice.ParentTrail)
	if !ok {
		return nil, false
	}

	required := map[kind.Kind]bool{}
	for _, k := range requestedKinds {
		if togglable[k] {
			required[k] = true
		}
	}

	fieldID, ok := t.LastFieldID()
	if !ok {
		return nil, false
	}

	root := subjectShapeID
	var prototypes []wrapperPrototype

	if required[kind.Nullable] {
		newID := ids.Shape(gen)
		prototypes = append(prototypes, wrapperPrototype{shapeID: newID, kind: kind.Nullable, subject: root})
		root = newID
	}
	if required[kind.Optional] {
		newID := ids.Shape(gen)
		prototypes = append(prototypes, wrapperPrototype{shapeID: newID, kind: kind.Optional, subject: root})
		root = newID
	}

	var cmds []command.ShapeCommand
	for _, p := range prototypes {
		cmds = append(cmds,
			command.AddShape{ShapeID: p.shapeID, Kind: p.kind, Name: ""},
			command.SetParameterShape{
				ShapeID:      p.shapeID,
				ParameterID:  kind.PrimaryParameterDescriptor(p.kind).ParameterID,
				BoundShapeID: p.subject,
			},
		)
	}
	cmds = append(cmds, command.SetFieldShape{FieldID: fieldID, ShapeID: root})

	return cmds, true
}

// subjectFromParentTrail scans path from tail to head for the first of
// OptionalItemTrail.InnerShapeID, NullableItemTrail.InnerShapeID, or
// ObjectFieldTrail.FieldShapeID.
func subjectFromParentTrail(t trail.ShapeTrail) (ids.ShapeId, bool) {
	for i := len(t.Path) - 1; i >= 0; i-- {
		switch c := t.Path[i].(type) {
		case trail.OptionalItemTrail:
			return c.InnerShapeID, true
		case trail.NullableItemTrail:
			return c.InnerShapeID, true
		case trail.ObjectFieldTrail:
			return c.FieldShapeID, true
		}
	}
	return "", false
}

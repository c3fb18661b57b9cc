package query

import (
	"github.com/shapelang/shapecore/fault"
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/shapegraph"
	"github.com/shapelang/shapecore/trail"
)

// ResolveShapeTrail reconstructs the ShapeTrail that reaches the shape
// whose ID is id or, when no shape has that ID, the field with that ID,
// by walking Owner() links from that node up to a root shape with no
// owner. Object shapes and fields along the way emit
// ObjectTrail and ObjectFieldTrail components respectively; the walk
// accumulates components in leaf-to-root order and reverses them before
// returning.
//
// List, Optional, Nullable, OneOf, Map, Identifier, Reference, and Any
// at an intermediate position are not yet supported and return
// fault.ErrUnsupported rather than guessing at semantics that were
// never specified for them.
func (q *Queries) ResolveShapeTrail(id ids.ShapeId) (trail.ShapeTrail, error) {
	nodeIdx, ok := q.graph.ShapeNode(id)
	if !ok {
		nodeIdx, _, ok = q.graph.FieldNode(ids.FieldId(id))
	}
	if !ok {
		return trail.ShapeTrail{}, fault.NotFoundf("shape or field %q", id)
	}

	var components []trail.PathComponent
	var rootShapeID ids.ShapeId
	haveRoot := false

	current := nodeIdx
	haveCurrent := true

	for haveCurrent {
		node := q.graph.NodeAt(current)

		switch n := node.(type) {
		case shapegraph.Shape:
			coreKind := q.ResolveToCoreShape(n.ShapeID)

			switch coreKind {
			case kind.Object:
				components = append(components, trail.ObjectTrail{ShapeID: n.ShapeID})
			case kind.String, kind.Number, kind.Boolean, kind.Unknown:
				// no component; a trail may root at a bare primitive
			default:
				return trail.ShapeTrail{}, fault.Unsupportedf("resolving a shape trail through a %s shape is not supported", coreKind)
			}

			// the topmost Shape visited becomes the root
			rootShapeID = n.ShapeID
			haveRoot = true

			ownerIdx, _, ownerOK := q.graph.Owner(current)
			if !ownerOK {
				haveCurrent = false
				break
			}
			current = ownerIdx

		case shapegraph.Field:
			fieldShapeID, fsOK := q.ResolveFieldShapeNode(n.FieldID)
			if !fsOK {
				fault.MustInvariant("field %q does not describe a shape", n.FieldID)
			}

			ownerIdx, ownerNode, ownerOK := q.graph.Owner(current)
			if !ownerOK {
				fault.MustInvariant("field %q has no owning object shape", n.FieldID)
			}
			parentObject, ok := ownerNode.(shapegraph.Shape)
			if !ok {
				fault.MustInvariant("field %q is not owned by a Shape node", n.FieldID)
			}

			components = append(components, trail.ObjectFieldTrail{
				FieldID:             n.FieldID,
				FieldShapeID:        fieldShapeID,
				ParentObjectShapeID: parentObject.ShapeID,
			})

			current = ownerIdx

		case shapegraph.ShapeParameter:
			return trail.ShapeTrail{}, fault.Unsupportedf("resolving a shape trail through a shape parameter is not supported")

		case shapegraph.BatchCommit, shapegraph.CoreShape:
			haveCurrent = false

		default:
			return trail.ShapeTrail{}, fault.Unsupportedf("resolving a shape trail through %T is not supported", node)
		}
	}

	if !haveRoot {
		return trail.ShapeTrail{}, fault.NotFoundf("no root shape found while resolving trail for %q", id)
	}

	reversed := make([]trail.PathComponent, len(components))
	for i, c := range components {
		reversed[len(components)-1-i] = c
	}

	return trail.ShapeTrail{RootShapeID: rootShapeID, Path: reversed}, nil
}

package query

import (
	"golang.org/x/text/unicode/norm"

	"github.com/shapelang/shapecore/fault"
	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/shapegraph"
)

// normalizeFieldName puts a field name in Unicode Normalization Form C
// so that two names differing only by composition (e.g. an accented
// character encoded as one code point vs. as a base letter plus a
// combining mark) compare equal.
func normalizeFieldName(name string) string {
	return norm.NFC.String(name)
}

// ResolveFieldID finds the field named fieldName on the object shape at
// shapeID, comparing names under Unicode normalization. Returns false
// if shapeID has no such field.
func (q *Queries) ResolveFieldID(shapeID ids.ShapeId, fieldName string) (ids.FieldId, bool) {
	shapeIdx, ok := q.graph.ShapeNode(shapeID)
	if !ok {
		fault.MustInvariant("shape %q does not exist", shapeID)
	}

	want := normalizeFieldName(fieldName)
	for _, f := range q.graph.FieldsOf(shapeIdx) {
		if normalizeFieldName(f.Name) == want {
			return f.FieldID, true
		}
	}
	return "", false
}

// ResolveFieldShapeNode returns the shape currently bound as the type
// of fieldID via the most recently appended BelongsTo edge (Shape ->
// Field). Rebinding a field never removes its earlier BelongsTo edges,
// so the last one wins.
func (q *Queries) ResolveFieldShapeNode(fieldID ids.FieldId) (ids.ShapeId, bool) {
	fieldIdx, _, ok := q.graph.FieldNode(fieldID)
	if !ok {
		return "", false
	}

	edges := q.graph.EdgesTo(fieldIdx, shapegraph.BelongsTo)
	if len(edges) == 0 {
		return "", false
	}
	last := edges[len(edges)-1]
	shape, ok := q.graph.NodeAt(last.Source).(shapegraph.Shape)
	if !ok {
		fault.MustInvariant("BelongsTo edge to field %q does not originate from a Shape", fieldID)
	}
	return shape.ShapeID, true
}

// FieldIDName pairs a field's identity with its declared name.
type FieldIDName struct {
	FieldID ids.FieldId
	Name    string
}

// ResolveShapeFieldIDAndNames returns the non-removed fields declared
// on the object shape at shapeID, in insertion order.
func (q *Queries) ResolveShapeFieldIDAndNames(shapeID ids.ShapeId) []FieldIDName {
	shapeIdx, ok := q.graph.ShapeNode(shapeID)
	if !ok {
		fault.MustInvariant("shape %q does not exist", shapeID)
	}

	fields := q.graph.FieldsOf(shapeIdx)
	out := make([]FieldIDName, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldIDName{FieldID: f.FieldID, Name: f.Name})
	}
	return out
}

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapelang/shapecore/kind"
	"github.com/shapelang/shapecore/query"
	"github.com/shapelang/shapecore/trail"
)

func TestListTrailChoices_EmptyTrail_EnumeratesRootCoreShapeChildren(t *testing.T) {
	f := newFixture(t)
	f.addShape("string_shape_1", "$string")

	q := f.queries()
	choices := q.ListTrailChoices(trail.ShapeTrail{RootShapeID: "string_shape_1"})

	require.Len(t, choices, 1)
	assert.Equal(t, kind.String, choices[0].CoreShapeKind)
	assert.Equal(t, "string_shape_1", string(choices[0].ShapeID))
}

func TestListTrailChoices_PlainFieldNoWrappers(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addField("field_1", "object_shape_1", "name", "string_shape_1")

	tr := trail.ShapeTrail{RootShapeID: "object_shape_1"}.
		WithComponent(trail.ObjectFieldTrail{FieldID: "field_1", FieldShapeID: "string_shape_1", ParentObjectShapeID: "object_shape_1"})

	q := f.queries()
	choices := q.ListTrailChoices(tr)
	require.Len(t, choices, 1)
	assert.Equal(t, kind.String, choices[0].CoreShapeKind)
}

func TestListTrailChoices_NullableOfOptionalOfString(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.optionalWrapping("optional_shape_1", "string_shape_1")
	f.nullableWrapping("nullable_shape_1", "optional_shape_1")
	f.addField("field_1", "object_shape_1", "name", "nullable_shape_1")

	tr := trail.ShapeTrail{RootShapeID: "object_shape_1"}.
		WithComponent(trail.ObjectFieldTrail{FieldID: "field_1", FieldShapeID: "nullable_shape_1", ParentObjectShapeID: "object_shape_1"})

	q := f.queries()
	choices := q.ListTrailChoices(tr)
	require.Len(t, choices, 3)
	assert.Equal(t, kind.Nullable, choices[0].CoreShapeKind)
	assert.Equal(t, kind.Optional, choices[1].CoreShapeKind)
	assert.Equal(t, kind.String, choices[2].CoreShapeKind)
}

func TestListTrailChoices_OneOf_NoSentinelPerAlternativeOrder(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addShape("number_shape_1", "$number")
	f.addShape("one_of_shape_1", "$oneOf")
	f.bindOneOf("one_of_shape_1", "alt_1", "string_shape_1")
	f.bindOneOf("one_of_shape_1", "alt_2", "number_shape_1")
	f.addField("field_1", "object_shape_1", "value", "one_of_shape_1")

	tr := trail.ShapeTrail{RootShapeID: "object_shape_1"}.
		WithComponent(trail.ObjectFieldTrail{FieldID: "field_1", FieldShapeID: "one_of_shape_1", ParentObjectShapeID: "object_shape_1"})

	q := f.queries()
	choices := q.ListTrailChoices(tr)
	require.Len(t, choices, 2)
	assert.Equal(t, kind.String, choices[0].CoreShapeKind)
	assert.Equal(t, kind.Number, choices[1].CoreShapeKind)
}

func TestListTrailChoices_DeterministicAcrossCalls(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.optionalWrapping("optional_shape_1", "string_shape_1")
	f.addField("field_1", "object_shape_1", "name", "optional_shape_1")

	tr := trail.ShapeTrail{RootShapeID: "object_shape_1"}.
		WithComponent(trail.ObjectFieldTrail{FieldID: "field_1", FieldShapeID: "optional_shape_1", ParentObjectShapeID: "object_shape_1"})

	q := f.queries()
	first := q.ListTrailChoices(tr)
	second := q.ListTrailChoices(tr)
	assert.Equal(t, first, second)
}

func TestListKnownTrailChoices_FiltersUnknown(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addShape("unknown_shape_1", "$unknown")
	f.addShape("one_of_shape_1", "$oneOf")
	f.bindOneOf("one_of_shape_1", "alt_1", "string_shape_1")
	f.bindOneOf("one_of_shape_1", "alt_2", "unknown_shape_1")
	f.addField("field_1", "object_shape_1", "value", "one_of_shape_1")

	tr := trail.ShapeTrail{RootShapeID: "object_shape_1"}.
		WithComponent(trail.ObjectFieldTrail{FieldID: "field_1", FieldShapeID: "one_of_shape_1", ParentObjectShapeID: "object_shape_1"})

	q := f.queries()
	all := q.ListTrailChoices(tr)
	require.Len(t, all, 2)

	known := q.ListKnownTrailChoices(tr)
	require.Len(t, known, 1)
	assert.Equal(t, kind.String, known[0].CoreShapeKind)

	// ListKnownTrailChoices must be exactly ListTrailChoices filtered.
	var wantKnown []query.ChoiceOutput
	for _, c := range all {
		if c.CoreShapeKind != kind.Unknown {
			wantKnown = append(wantKnown, c)
		}
	}
	assert.Equal(t, wantKnown, known)
}

func TestChoiceOutput_ShapeTrail_Reconstructs(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.nullableWrapping("nullable_shape_1", "string_shape_1")
	f.addField("field_1", "object_shape_1", "name", "nullable_shape_1")

	tr := trail.ShapeTrail{RootShapeID: "object_shape_1"}.
		WithComponent(trail.ObjectFieldTrail{FieldID: "field_1", FieldShapeID: "nullable_shape_1", ParentObjectShapeID: "object_shape_1"})

	q := f.queries()
	choices := q.ListTrailChoices(tr)
	require.Len(t, choices, 2)

	innerTrail := choices[1].ShapeTrail()
	assert.Equal(t, "object_shape_1", string(innerTrail.RootShapeID))
	require.Len(t, innerTrail.Path, 3)
}

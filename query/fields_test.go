package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/query"
)

func TestResolveFieldID(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addField("field_1", "object_shape_1", "name", "string_shape_1")

	q := f.queries()
	id, ok := q.ResolveFieldID("object_shape_1", "name")
	require.True(t, ok)
	assert.Equal(t, ids.FieldId("field_1"), id)

	_, ok = q.ResolveFieldID("object_shape_1", "nonexistent")
	assert.False(t, ok)
}

func TestResolveFieldID_UnicodeNormalization(t *testing.T) {
	// "e" with acute accent as one precomposed code point (NFC).
	nfc := "caf\u00e9"
	// "e" followed by a combining acute accent (NFD) - a different byte
	// sequence spelling the same visible name.
	nfd := "cafe\u0301"

	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addField("field_1", "object_shape_1", nfc, "string_shape_1")

	q := f.queries()
	id, ok := q.ResolveFieldID("object_shape_1", nfd)
	require.True(t, ok, "NFD spelling of the same name should match the NFC-stored field")
	assert.Equal(t, ids.FieldId("field_1"), id)
}

func TestResolveFieldShapeNode(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addField("field_1", "object_shape_1", "name", "string_shape_1")

	q := f.queries()
	shapeID, ok := q.ResolveFieldShapeNode("field_1")
	require.True(t, ok)
	assert.Equal(t, ids.ShapeId("string_shape_1"), shapeID)
}

func TestResolveFieldShapeNode_UnknownField(t *testing.T) {
	f := newFixture(t)
	q := f.queries()
	_, ok := q.ResolveFieldShapeNode("does_not_exist")
	assert.False(t, ok)
}

func TestResolveShapeFieldIDAndNames_InsertionOrder(t *testing.T) {
	f := newFixture(t)
	f.addShape("object_shape_1", "$object")
	f.addShape("string_shape_1", "$string")
	f.addField("field_1", "object_shape_1", "a", "string_shape_1")
	f.addField("field_2", "object_shape_1", "b", "string_shape_1")

	q := f.queries()
	names := q.ResolveShapeFieldIDAndNames("object_shape_1")
	require.Len(t, names, 2)
	assert.Equal(t, []query.FieldIDName{
		{FieldID: "field_1", Name: "a"},
		{FieldID: "field_2", Name: "b"},
	}, names)
}

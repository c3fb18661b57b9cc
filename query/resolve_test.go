package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapelang/shapecore/kind"
)

func TestResolveToCoreShape(t *testing.T) {
	f := newFixture(t)
	f.addShape("string_shape_1", "$string")
	f.addShape("object_shape_1", "$object")

	q := f.queries()
	assert.Equal(t, kind.String, q.ResolveToCoreShape("string_shape_1"))
	assert.Equal(t, kind.Object, q.ResolveToCoreShape("object_shape_1"))
}

func TestResolveToCoreShape_UnknownShapePanics(t *testing.T) {
	f := newFixture(t)
	q := f.queries()
	assert.Panics(t, func() { q.ResolveToCoreShape("does_not_exist") })
}

package fakesmith

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_CatalogComplete(t *testing.T) {
	e, err := NewEngine(WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.ElementsMatch(t, AllTags, e.Tags())
}

func TestEngine_Tags_Sorted(t *testing.T) {
	e := newTestEngine(t)
	assert.True(t, slices.IsSorted(e.Tags()))
}

func TestDispatch_UnsupportedType(t *testing.T) {
	e := newTestEngine(t)
	v, err := e.Dispatch(FieldSpec{Name: "f", Type: "doesNotExist"})
	require.Error(t, err)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	var ute *UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "doesNotExist", ute.Tag)
}

func TestDispatch_RecoversGeneratorPanic(t *testing.T) {
	e := newTestEngine(t)
	e.catalog["boom"] = func(GenOptions) any { panic("exploded") }
	v, err := e.Dispatch(FieldSpec{Name: "f", Type: "boom"})
	require.Error(t, err)
	assert.Nil(t, v)
	assert.Contains(t, err.Error(), "exploded")
}

func TestGenerateFields_OneEntryPerFieldInOrder(t *testing.T) {
	e := newTestEngine(t)
	specs := []FieldSpec{
		{Name: "id", Type: "uuid"},
		{Name: "who", Type: "fullName"},
		{Name: "bogus", Type: "noSuchType"},
		{Name: "ok", Type: "boolean"},
	}
	rec := e.GenerateFields(specs)
	require.Equal(t, len(specs), rec.Len())
	assert.Equal(t, []string{"id", "who", "bogus", "ok"}, rec.Keys())

	v, present := rec.Get("bogus")
	assert.True(t, present, "failed field must still produce an entry")
	assert.Nil(t, v)

	who, _ := rec.Get("who")
	assert.NotNil(t, who, "failure must not leak into neighboring fields")
}

func TestGenerateFields_PanicIsolatedToField(t *testing.T) {
	e := newTestEngine(t)
	e.catalog["boom"] = func(GenOptions) any { panic("exploded") }
	rec := e.GenerateFields([]FieldSpec{
		{Name: "a", Type: "boom"},
		{Name: "b", Type: "uuid"},
	})
	require.Equal(t, 2, rec.Len())
	a, _ := rec.Get("a")
	assert.Nil(t, a)
	b, _ := rec.Get("b")
	assert.NotNil(t, b)
}

func TestGenerateFields_ShapeIdempotence(t *testing.T) {
	e := newTestEngine(t)
	specs := []FieldSpec{
		{Name: "n", Type: "number"},
		{Name: "f", Type: "float"},
		{Name: "s", Type: "sentence"},
		{Name: "b", Type: "boolean"},
		{Name: "x", Type: "unknownTag"},
	}
	first := e.GenerateFields(specs)
	second := e.GenerateFields(specs)
	require.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		v1, _ := first.Get(key)
		v2, _ := second.Get(key)
		assert.Equal(t, reflect.TypeOf(v1), reflect.TypeOf(v2), "value type for %q must be stable", key)
	}
}

func TestNewEngine_WithSourceOverridesSeed(t *testing.T) {
	src := NewSource(99)
	e, err := NewEngine(WithLogger(discardLogger()), WithSeed(1), WithSource(src))
	require.NoError(t, err)
	assert.Same(t, src, e.source)
}

func TestVerifyCatalog_ReportsMissingTags(t *testing.T) {
	e := newTestEngine(t)
	delete(e.catalog, "uuid")
	err := e.verifyCatalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid")
	assert.False(t, errors.Is(err, ErrUnknownTool))
}

package environment_test

import (
	"testing"

	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGetInSameScope(t *testing.T) {
	env := environment.New(nil)
	env.Set("x", &object.Integer{Value: 1})

	val, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*object.Integer).Value)
}

func TestGetRecursesToParent(t *testing.T) {
	parent := environment.New(nil)
	parent.Set("x", &object.Integer{Value: 7})
	child := environment.New(parent)

	val, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(7), val.(*object.Integer).Value)
}

func TestHasOnlyChecksCurrentScope(t *testing.T) {
	parent := environment.New(nil)
	parent.Set("x", &object.Integer{Value: 1})
	child := environment.New(parent)

	assert.False(t, child.Has("x"))
	assert.True(t, parent.Has("x"))
}

func TestGetMissingNameFails(t *testing.T) {
	env := environment.New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestDeleteRemovesBinding(t *testing.T) {
	env := environment.New(nil)
	env.Set("x", &object.Integer{Value: 1})
	env.Delete("x")

	_, ok := env.Get("x")
	assert.False(t, ok)
}

func TestNamesListsOnlyCurrentScope(t *testing.T) {
	parent := environment.New(nil)
	parent.Set("outer", object.NULL)
	child := environment.New(parent)
	child.Set("a", object.NULL)
	child.Set("b", object.NULL)

	assert.ElementsMatch(t, []string{"a", "b"}, child.Names())
}

package object_test

import (
	"testing"

	"github.com/sigmaf-lang/sigmaf/object"
	"github.com/stretchr/testify/assert"
)

func TestIntegerInspect(t *testing.T) {
	assert.Equal(t, "42", (&object.Integer{Value: 42}).Inspect())
}

func TestFloatInspectAlwaysHasDecimal(t *testing.T) {
	assert.Equal(t, "5.0", (&object.Float{Value: 5}).Inspect())
	assert.Equal(t, "5.5", (&object.Float{Value: 5.5}).Inspect())
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	assert.Same(t, object.TRUE, object.NativeBool(true))
	assert.Same(t, object.FALSE, object.NativeBool(false))
}

func TestListInspectQuotesNestedStrings(t *testing.T) {
	list := &object.List{Values: []object.Object{&object.String{Value: "a"}, &object.Integer{Value: 1}}}
	assert.Equal(t, `["a", 1]`, list.Inspect())
}

func TestTupleInspect(t *testing.T) {
	tuple := &object.Tuple{Values: []object.Object{&object.Integer{Value: 1}, &object.Boolean{Value: true}}}
	assert.Equal(t, "(1, true)", tuple.Inspect())
}

func TestIsError(t *testing.T) {
	assert.True(t, object.IsError(object.NewError("boom")))
	assert.False(t, object.IsError(object.NULL))
	assert.False(t, object.IsError(nil))
}

func TestFunctionInspectWithNilBodyDoesNotPanic(t *testing.T) {
	fn := &object.Function{Parameters: []string{"x"}, ParameterTypes: []string{"int"}, OutputType: "int"}
	assert.NotPanics(t, func() {
		assert.Contains(t, fn.Inspect(), "<composed>")
	})
}

func TestTypeOfScalarsAndAggregates(t *testing.T) {
	assert.Equal(t, "int", object.TypeOf(&object.Integer{Value: 1}))
	assert.Equal(t, "float", object.TypeOf(&object.Float{Value: 1.5}))
	assert.Equal(t, "str", object.TypeOf(&object.String{Value: "x"}))
	assert.Equal(t, "bool", object.TypeOf(object.TRUE))
	assert.Equal(t, "list", object.TypeOf(&object.List{}))
	assert.Equal(t, "[int]", object.TypeOf(&object.List{Values: []object.Object{&object.Integer{Value: 1}}}))
	assert.Equal(t, "(int, str)", object.TypeOf(&object.Tuple{Values: []object.Object{
		&object.Integer{Value: 1}, &object.String{Value: "x"},
	}}))
}

func TestMatchesDeclaredListLeniency(t *testing.T) {
	empty := &object.List{}
	assert.True(t, object.MatchesDeclared("[int]", empty))

	ints := &object.List{Values: []object.Object{&object.Integer{Value: 1}, &object.Integer{Value: 2}}}
	assert.True(t, object.MatchesDeclared("[int]", ints))
	assert.False(t, object.MatchesDeclared("[str]", ints))

	mixed := &object.List{Values: []object.Object{&object.Integer{Value: 1}, &object.String{Value: "x"}}}
	assert.False(t, object.MatchesDeclared("[int]", mixed))
}

func TestMatchesDeclaredScalar(t *testing.T) {
	assert.True(t, object.MatchesDeclared("int", &object.Integer{Value: 1}))
	assert.False(t, object.MatchesDeclared("str", &object.Integer{Value: 1}))
}

func TestSplitTupleType(t *testing.T) {
	parts, ok := object.SplitTupleType("(int, str)")
	assert.True(t, ok)
	assert.Equal(t, []string{"int", "str"}, parts)

	parts, ok = object.SplitTupleType("(int, [str])")
	assert.True(t, ok)
	assert.Equal(t, []string{"int", "[str]"}, parts)

	_, ok = object.SplitTupleType("int")
	assert.False(t, ok)
}

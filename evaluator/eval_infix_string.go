package evaluator

import "github.com/sigmaf-lang/sigmaf/object"

// evalStringInfix implements `+` concatenation and `==`/`!=`
// comparison for String operands; every other operator is undefined.
func evalStringInfix(op string, left, right *object.String) object.Object {
	switch op {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return object.NewError("Unknown Operator: The operator '%s' is unknown between %s", op, object.STRING_OBJ)
	}
}

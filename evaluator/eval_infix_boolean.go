package evaluator

import "github.com/sigmaf-lang/sigmaf/object"

// evalBooleanInfix implements `==`, `!=`, `&&`, `||` for Boolean
// operands; every other operator is undefined.
func evalBooleanInfix(op string, left, right *object.Boolean) object.Object {
	switch op {
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	case "&&":
		return object.NativeBool(left.Value && right.Value)
	case "||":
		return object.NativeBool(left.Value || right.Value)
	default:
		return object.NewError("Unknown Operator: The operator '%s' is unknown between %s", op, object.BOOLEAN_OBJ)
	}
}

package evaluator

import (
	"math"

	"github.com/sigmaf-lang/sigmaf/object"
)

// evalIntegerInfix implements +,-,*,**,/,%, and comparisons for two
// Integer operands. Division promotes to Float when it is not exact;
// division or modulus by zero is an Error.
func evalIntegerInfix(op string, left, right *object.Integer) object.Object {
	switch op {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "**":
		return &object.Integer{Value: intPow(left.Value, right.Value)}
	case "/":
		if right.Value == 0 {
			return object.NewError("Division by zero")
		}
		if left.Value%right.Value == 0 {
			return &object.Integer{Value: left.Value / right.Value}
		}
		return &object.Float{Value: float64(left.Value) / float64(right.Value)}
	case "%":
		if right.Value == 0 {
			return object.NewError("Division by zero")
		}
		return &object.Integer{Value: left.Value % right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "<=":
		return object.NativeBool(left.Value <= right.Value)
	case ">=":
		return object.NativeBool(left.Value >= right.Value)
	default:
		return object.NewError("Unknown Operator: %s for INTEGER", op)
	}
}

// intPow computes base**exp for non-negative integer exponents by
// repeated squaring; a negative exponent always yields zero since the
// result type is Integer.
func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	var result int64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// evalFloatInfix implements the same operator set as evalIntegerInfix
// for two Float operands. An Integer operand is never promoted: mixing
// an Integer with a Float is a Type Discrepancy in evalInfixExpression.
func evalFloatInfix(op string, left, right *object.Float) object.Object {
	switch op {
	case "+":
		return &object.Float{Value: left.Value + right.Value}
	case "-":
		return &object.Float{Value: left.Value - right.Value}
	case "*":
		return &object.Float{Value: left.Value * right.Value}
	case "**":
		return &object.Float{Value: math.Pow(left.Value, right.Value)}
	case "/":
		if right.Value == 0 {
			return object.NewError("Division by zero")
		}
		return &object.Float{Value: left.Value / right.Value}
	case "%":
		if right.Value == 0 {
			return object.NewError("Division by zero")
		}
		return &object.Float{Value: math.Mod(left.Value, right.Value)}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "<=":
		return object.NativeBool(left.Value <= right.Value)
	case ">=":
		return object.NativeBool(left.Value >= right.Value)
	default:
		return object.NewError("Unknown Operator: %s for FLOAT", op)
	}
}

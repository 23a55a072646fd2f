package evaluator

import "github.com/sigmaf-lang/sigmaf/object"

// evalListInfix implements `+` (concatenation, with an element-type
// check when both sides are non-empty) and `==`/`!=` (structural
// comparison) for List operands.
func evalListInfix(op string, left, right *object.List) object.Object {
	switch op {
	case "+":
		if len(left.Values) > 0 && len(right.Values) > 0 {
			if object.TypeOf(left.Values[0]) != object.TypeOf(right.Values[0]) {
				return object.NewError("Incompatible list operation: cannot concatenate %s and %s",
					object.TypeOf(left), object.TypeOf(right))
			}
		}
		combined := make([]object.Object, 0, len(left.Values)+len(right.Values))
		combined = append(combined, left.Values...)
		combined = append(combined, right.Values...)
		return &object.List{Values: combined}
	case "==":
		return object.NativeBool(listsEqual(left, right))
	case "!=":
		return object.NativeBool(!listsEqual(left, right))
	default:
		return object.NewError("Unknown Operator: %s for LIST", op)
	}
}

// evalTupleInfix implements `+` and `-` (element-wise, requiring equal
// length and element-wise equal types) and `==`/`!=` (structural
// comparison) for Tuple operands. Tuple subtraction has no practical
// use but spec.md §9 preserves it as an original-implementation quirk.
func evalTupleInfix(op string, left, right *object.Tuple) object.Object {
	switch op {
	case "+", "-":
		if len(left.Values) != len(right.Values) {
			return object.NewError("Incompatible tuple operation: tuples have different lengths")
		}
		result := make([]object.Object, len(left.Values))
		for i := range left.Values {
			if object.TypeOf(left.Values[i]) != object.TypeOf(right.Values[i]) {
				return object.NewError("Incompatible tuple operation: element %d types differ", i)
			}
			elem := evalElementArith(op, left.Values[i], right.Values[i])
			if object.IsError(elem) {
				return elem
			}
			result[i] = elem
		}
		return &object.Tuple{Values: result}
	case "==":
		return object.NativeBool(tuplesEqual(left, right))
	case "!=":
		return object.NativeBool(!tuplesEqual(left, right))
	default:
		return object.NewError("Unknown Operator: %s for TUPLE", op)
	}
}

// evalElementArith applies `+`/`-` to one pair of equal-typed tuple
// elements, reusing the scalar infix rules.
func evalElementArith(op string, left, right object.Object) object.Object {
	switch l := left.(type) {
	case *object.Integer:
		return evalIntegerInfix(op, l, right.(*object.Integer))
	case *object.Float:
		return evalFloatInfix(op, l, right.(*object.Float))
	case *object.String:
		if op == "+" {
			return evalStringInfix(op, l, right.(*object.String))
		}
		return object.NewError("Incompatible tuple operation: '-' is undefined for STRING")
	default:
		return object.NewError("Incompatible tuple operation: '%s' is undefined for %s", op, object.TypeOf(left))
	}
}

func listsEqual(a, b *object.List) bool {
	return sequenceEqual(a.Values, b.Values)
}

func tuplesEqual(a, b *object.Tuple) bool {
	return sequenceEqual(a.Values, b.Values)
}

func sequenceEqual(a, b []object.Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !objectsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// objectsEqual performs a structural equality comparison used by
// List/Tuple `==`/`!=`, recursing into nested lists and tuples.
func objectsEqual(a, b object.Object) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *object.Integer:
		return av.Value == b.(*object.Integer).Value
	case *object.Float:
		return av.Value == b.(*object.Float).Value
	case *object.String:
		return av.Value == b.(*object.String).Value
	case *object.Boolean:
		return av.Value == b.(*object.Boolean).Value
	case *object.Void:
		return true
	case *object.List:
		return listsEqual(av, b.(*object.List))
	case *object.Tuple:
		return tuplesEqual(av, b.(*object.Tuple))
	default:
		return a.Inspect() == b.Inspect()
	}
}

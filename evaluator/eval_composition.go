package evaluator

import "github.com/sigmaf-lang/sigmaf/object"

// evalComposition implements the `.` operator: given left L and right
// R, both Function values, the result is a Function whose parameters
// and input types equal R's, whose output type equals L's, and whose
// body (when called) evaluates to L(R(params...)) — per spec.md §4.4.
//
// Composition is rejected unless R's single output type unifies with
// L's parameter list: either it equals L's lone parameter type, or it
// is a tuple type whose elements match L's parameter list
// element-wise.
func (ev *Evaluator) evalComposition(left, right object.Object) object.Object {
	l, lok := left.(*object.Function)
	r, rok := right.(*object.Function)
	if !lok || !rok {
		return object.NewError("Incompatible Composition: both operands of '.' must be functions")
	}

	if !composable(l, r) {
		return object.NewError("Incompatible Composition")
	}

	composed := &object.Function{
		Parameters:     r.Parameters,
		ParameterTypes: r.ParameterTypes,
		OutputType:     l.OutputType,
	}
	composed.Native = func(args []object.Object) object.Object {
		inner := ev.applyFunction(r, args)
		if object.IsError(inner) {
			return inner
		}
		return ev.applyFunction(l, []object.Object{inner})
	}
	return composed
}

// composable checks R's output type against L's parameter list per
// the unification rule in spec.md §4.4.
func composable(l, r *object.Function) bool {
	if len(l.ParameterTypes) == 1 && r.OutputType == l.ParameterTypes[0] {
		return true
	}
	if elems, ok := object.SplitTupleType(r.OutputType); ok {
		if len(elems) != len(l.ParameterTypes) {
			return false
		}
		for i, e := range elems {
			if e != l.ParameterTypes[i] {
				return false
			}
		}
		return true
	}
	return false
}

package builtin

import (
	"math"

	"github.com/sigmaf-lang/sigmaf/object"
)

// builtinPow implements spec.md §4.6's pow: the N-th root of the
// first argument (x^(1/n)), not x**n. This non-obvious semantic is
// preserved from the original implementation's builtins.py.
func builtinPow(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount("pow", 2, len(args))
	}

	x, ok := asFloat(args[0])
	if !ok {
		return unsupportedArg("pow", args[0])
	}
	n, ok := asFloat(args[1])
	if !ok {
		return unsupportedArg("pow", args[1])
	}
	if n == 0 {
		return object.NewError("Argument to pow without support: root degree 0")
	}
	return &object.Float{Value: math.Pow(x, 1/n)}
}

func asFloat(obj object.Object) (float64, bool) {
	switch v := obj.(type) {
	case *object.Integer:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	default:
		return 0, false
	}
}

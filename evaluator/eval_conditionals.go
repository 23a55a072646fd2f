package evaluator

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// evalIfExpression evaluates Condition and runs Consequence only when
// it is exactly the boolean true singleton; no other value is coerced
// to truthy (spec.md §4.4). With no Alternative and a falsy
// condition, the result is the Void singleton.
func (ev *Evaluator) evalIfExpression(node *ast.IfExpression, env *environment.Environment) object.Object {
	condition := ev.Eval(node.Condition, env)
	if object.IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return ev.evalBlock(node.Consequence, env)
	}
	if node.Alternative != nil {
		return ev.evalBlock(node.Alternative, env)
	}
	return object.NULL
}

func isTruthy(obj object.Object) bool {
	b, ok := obj.(*object.Boolean)
	return ok && b.Value
}

package evaluator

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// evalInfixExpression evaluates both operands left-to-right,
// propagates the first Error, and otherwise dispatches on the
// (left, right) object types per spec.md §4.4.
func (ev *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *environment.Environment) object.Object {
	left := ev.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	right := ev.Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}

	if node.Operator == "." {
		return ev.evalComposition(left, right)
	}

	switch l := left.(type) {
	case *object.Integer:
		if r, ok := right.(*object.Integer); ok {
			return evalIntegerInfix(node.Operator, l, r)
		}
	case *object.Float:
		if r, ok := right.(*object.Float); ok {
			return evalFloatInfix(node.Operator, l, r)
		}
	case *object.String:
		if r, ok := right.(*object.String); ok {
			return evalStringInfix(node.Operator, l, r)
		}
	case *object.Boolean:
		if r, ok := right.(*object.Boolean); ok {
			return evalBooleanInfix(node.Operator, l, r)
		}
	case *object.List:
		if r, ok := right.(*object.List); ok {
			return evalListInfix(node.Operator, l, r)
		}
	case *object.Tuple:
		if r, ok := right.(*object.Tuple); ok {
			return evalTupleInfix(node.Operator, l, r)
		}
	}

	return object.NewError(
		"Type Discrepancy: It is not possible to do the operation '%s', for %s %s and %s %s",
		node.Operator, article(string(left.Type())), left.Type(), article(string(right.Type())), right.Type())
}

// article returns "an" before a vowel-leading word, "a" otherwise,
// matching the phrasing of spec.md's Type Discrepancy example.
func article(word string) string {
	if len(word) == 0 {
		return "a"
	}
	switch word[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	default:
		return "a"
	}
}

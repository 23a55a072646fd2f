package evaluator

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// evalIdentifier looks a name up in env, falling back to the builtin
// registry, and finally to an "Identifier not found" Error.
func (ev *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if b, ok := builtins[node.Value]; ok {
		return b
	}
	return object.NewError("Identifier not found: %s", node.Value)
}

// evalPrefixExpression implements unary minus; every other prefix
// operator is a parser bug since the grammar only registers `-`.
func (ev *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *environment.Environment) object.Object {
	right := ev.Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}

	if node.Operator != "-" {
		return object.NewError("Unknown Operator: %s%s", node.Operator, object.TypeOf(right))
	}

	switch v := right.(type) {
	case *object.Integer:
		return &object.Integer{Value: -v.Value}
	case *object.Float:
		return &object.Float{Value: -v.Value}
	default:
		return object.NewError("Unknown Operator: -%s", object.TypeOf(right))
	}
}

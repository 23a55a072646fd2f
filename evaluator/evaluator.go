/*
File    : sigmaf/evaluator/evaluator.go
Package : evaluator
*/

// Package evaluator implements the SigmaF tree-walking interpreter: a
// recursive Eval function that dispatches on ast.Node variants against
// an environment.Environment and produces object.Object values. It
// implements every operator's semantics, enforces the type contracts
// on function calls and returns, and builds function-composition
// values per spec.md §4.4.
package evaluator

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/builtin"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// maxCallDepth bounds recursive Call evaluation so that runaway
// recursion surfaces as a SigmaF-level Error instead of a Go stack
// overflow, per spec.md §5. The original Python implementation relied
// on sys.setrecursionlimit; we make the same ceiling an explicit
// counter.
const maxCallDepth = 1000

// Evaluator carries the one piece of state the tree walk needs beyond
// the environment it is handed: the current call-stack depth, so
// nested Call evaluation can detect runaway recursion.
type Evaluator struct {
	callDepth int
}

// New creates an Evaluator ready to walk a program.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval dispatches on the concrete type of node, walking it against env
// and returning the object.Object it produces. A LetStatement yields
// object.NULL; a node it does not handle yields an "Unknown Node" Error.
func (ev *Evaluator) Eval(node ast.Node, env *environment.Environment) object.Object {
	switch n := node.(type) {

	case *ast.Program:
		return ev.evalProgram(n, env)
	case *ast.Block:
		return ev.evalBlock(n, env)
	case *ast.ExpressionStatement:
		return ev.Eval(n.Expression, env)
	case *ast.LetStatement:
		return ev.evalLetStatement(n, env)
	case *ast.ReturnStatement:
		return ev.evalReturnStatement(n, env)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: n.Value}
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)
	case *ast.VoidLiteral:
		return object.NULL

	case *ast.Identifier:
		return ev.evalIdentifier(n, env)
	case *ast.PrefixExpression:
		return ev.evalPrefixExpression(n, env)
	case *ast.InfixExpression:
		return ev.evalInfixExpression(n, env)
	case *ast.IfExpression:
		return ev.evalIfExpression(n, env)
	case *ast.FunctionLiteral:
		return ev.evalFunctionLiteral(n, env)
	case *ast.CallExpression:
		return ev.evalCallExpression(n, env)
	case *ast.ListLiteral:
		return ev.evalListLiteral(n, env)
	case *ast.TupleLiteral:
		return ev.evalTupleLiteral(n, env)
	case *ast.CallListExpression:
		return ev.evalCallListExpression(n, env)
	}
	return object.NewError("Unknown Node: unable to evaluate %T", node)
}

// evalExpressions evaluates a left-to-right list of expressions,
// short-circuiting on the first Error per spec.md §5's ordering rule.
func (ev *Evaluator) evalExpressions(exprs []ast.Expression, env *environment.Environment) []object.Object {
	result := make([]object.Object, 0, len(exprs))
	for _, e := range exprs {
		val := ev.Eval(e, env)
		result = append(result, val)
		if object.IsError(val) {
			return result
		}
	}
	return result
}

// firstError returns the first Error object found in objs, or nil.
func firstError(objs []object.Object) *object.Error {
	for _, o := range objs {
		if err, ok := o.(*object.Error); ok {
			return err
		}
	}
	return nil
}

// builtins is the fixed registry consulted when an identifier is not
// found in the environment (spec.md §4.4 Identifier rule).
var builtins = builtin.Registry()

package evaluator

import (
	"strings"

	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// evalFunctionLiteral builds a Function value capturing env as its
// closure.
func (ev *Evaluator) evalFunctionLiteral(node *ast.FunctionLiteral, env *environment.Environment) object.Object {
	params := make([]string, len(node.Parameters))
	paramTypes := make([]string, len(node.Parameters))
	for i, p := range node.Parameters {
		params[i] = p.Value
		if i < len(node.TypeParameters) && node.TypeParameters[i] != nil {
			paramTypes[i] = node.TypeParameters[i].String()
		}
	}
	output := ""
	if node.TypeOutput != nil {
		output = node.TypeOutput.String()
	}
	return &object.Function{
		Parameters:     params,
		ParameterTypes: paramTypes,
		OutputType:     output,
		Body:           node.Body,
		Env:            env,
	}
}

// evalCallExpression evaluates the callee and arguments, unpacks a
// lone matching-arity Tuple argument into positional arguments, type
// checks against the declared signature, and dispatches to either a
// native Builtin or a user Function (extending its captured
// environment, not the caller's, per spec.md §3.3).
func (ev *Evaluator) evalCallExpression(node *ast.CallExpression, env *environment.Environment) object.Object {
	callee := ev.Eval(node.Function, env)
	if object.IsError(callee) {
		return callee
	}

	args := ev.evalExpressions(node.Arguments, env)
	if err := firstError(args); err != nil {
		return err
	}

	switch fn := callee.(type) {
	case *object.Builtin:
		return fn.Fn(args...)
	case *object.Function:
		return ev.applyFunction(fn, args)
	default:
		return object.NewError("Unknown Operator: %s is not callable", object.TypeOf(callee))
	}
}

// applyFunction unpacks a lone tuple argument when arity matches,
// type-checks arguments against the declared signature, runs the body
// in a fresh child of the function's closure, and verifies the output
// type.
func (ev *Evaluator) applyFunction(fn *object.Function, args []object.Object) object.Object {
	if len(args) == 1 && len(fn.Parameters) != 1 {
		if tuple, ok := args[0].(*object.Tuple); ok && len(tuple.Values) == len(fn.Parameters) {
			args = tuple.Values
		}
	}

	if len(args) != len(fn.Parameters) {
		return object.NewError("Arguments wrongs: expected %d argument(s), received %d", len(fn.Parameters), len(args))
	}

	for i, arg := range args {
		declared := fn.ParameterTypes[i]
		if declared != "" && !object.MatchesDeclared(declared, arg) {
			return object.NewError("Arguments wrongs: expected %s received %s",
				signatureString(fn.ParameterTypes), signatureString(actualTypes(args)))
		}
	}

	if ev.callDepth >= maxCallDepth {
		return object.NewError("Maximum recursion depth exceeded")
	}
	ev.callDepth++
	defer func() { ev.callDepth-- }()

	var result object.Object
	if fn.Native != nil {
		result = fn.Native(args)
	} else {
		parentEnv, _ := fn.Env.(*environment.Environment)
		callEnv := environment.New(parentEnv)
		for i, name := range fn.Parameters {
			callEnv.Set(name, args[i])
		}

		body, ok := fn.Body.(*ast.Block)
		if !ok {
			return object.NewError("Unknown Operator: malformed function body")
		}
		result = ev.evalBlock(body, callEnv)
	}
	if object.IsError(result) {
		return result
	}
	if rv, ok := result.(*object.ReturnValue); ok {
		result = rv.Value
	}

	if fn.OutputType != "" && !object.MatchesDeclared(fn.OutputType, result) {
		return object.NewError("Output wrongs: The function expected to return type %s and return %s",
			fn.OutputType, object.TypeOf(result))
	}
	return result
}

func actualTypes(args []object.Object) []string {
	types := make([]string, len(args))
	for i, a := range args {
		types[i] = object.TypeOf(a)
	}
	return types
}

func signatureString(types []string) string {
	return strings.Join(types, ", ")
}

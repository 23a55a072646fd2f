package evaluator

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// evalProgram runs every top-level statement in order. The first
// Error or Return terminates the program early; a top-level Return is
// unwrapped to its underlying value, since there is no enclosing call
// to do that unwrapping for it.
func (ev *Evaluator) evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = ev.Eval(stmt, env)

		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.Error:
			return r
		}
	}
	return result
}

// evalBlock runs statements in order, stopping early and returning on
// the first Return or Error so the caller (Call or another Block) can
// observe it. Unlike evalProgram, a ReturnValue here is returned still
// wrapped — only the Call boundary unwraps it.
func (ev *Evaluator) evalBlock(block *ast.Block, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = ev.Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == object.RETURN_VALUE_OBJ || kind == object.ERROR_OBJ {
				return result
			}
		}
	}
	return result
}

// evalLetStatement evaluates the bound expression, optionally checks
// it against a declared type, rejects rebinding within the current
// scope, and otherwise inserts the binding. A successful `let`
// produces no value (object.NULL): it is evaluated purely for its
// effect on env.
func (ev *Evaluator) evalLetStatement(stmt *ast.LetStatement, env *environment.Environment) object.Object {
	value := ev.Eval(stmt.Value, env)
	if object.IsError(value) {
		return value
	}

	if stmt.Name.DeclaredType != nil {
		declared := stmt.Name.DeclaredType.String()
		if !object.MatchesDeclared(declared, value) {
			return object.NewError(
				"Type Discrepancy: the variable %q expected %s got %s",
				stmt.Name.Value, declared, object.TypeOf(value))
		}
	}

	if env.Has(stmt.Name.Value) {
		return object.NewError("Non-modifiable Value: %q is already bound in this scope", stmt.Name.Value)
	}

	env.Set(stmt.Name.Value, value)
	return object.NULL
}

// evalReturnStatement evaluates Value and wraps it in a ReturnValue so
// enclosing Block/Call evaluation can unwrap it at the right boundary.
func (ev *Evaluator) evalReturnStatement(stmt *ast.ReturnStatement, env *environment.Environment) object.Object {
	value := ev.Eval(stmt.Value, env)
	if object.IsError(value) {
		return value
	}
	return &object.ReturnValue{Value: value}
}

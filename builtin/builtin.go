/*
File    : sigmaf/builtin/builtin.go
Package : builtin
*/

// Package builtin implements SigmaF's fixed registry of native
// callables: length, printLn, not, pow, parse, append, and type, each
// with the declared input/output type signature spec.md §4.6
// specifies. The evaluator consults this registry when an identifier
// is not found in the current environment.
package builtin

import (
	"fmt"

	"github.com/sigmaf-lang/sigmaf/object"
)

// Registry builds the fixed name-to-Builtin mapping. Called once by
// the evaluator package at init time.
func Registry() map[string]*object.Builtin {
	entries := []*object.Builtin{
		{Name: "length", IOType: "(list|tuple|str) -> int", Fn: builtinLength},
		{Name: "printLn", IOType: "(any) -> void", Fn: builtinPrintLn},
		{Name: "not", IOType: "(bool) -> bool", Fn: builtinNot},
		{Name: "pow", IOType: "(int|float, int|float) -> float", Fn: builtinPow},
		{Name: "parse", IOType: "(any, str) -> any", Fn: builtinParse},
		{Name: "append", IOType: "(list, any) -> list", Fn: builtinAppend},
		{Name: "type", IOType: "(any) -> str", Fn: builtinType},
	}

	registry := make(map[string]*object.Builtin, len(entries))
	for _, b := range entries {
		registry[b.Name] = b
	}
	return registry
}

// wrongArgCount builds the "Incorrect Number of arguments" Error the
// spec requires every builtin to raise on arity mismatch.
func wrongArgCount(name string, want, got int) *object.Error {
	return object.NewError("Incorrect Number of arguments to %s: expected %d, got %d", name, want, got)
}

// unsupportedArg builds the "Argument to X without support" Error for
// a builtin called with the right arity but the wrong operand type.
func unsupportedArg(name string, arg object.Object) *object.Error {
	return object.NewError("Argument to %s without support: %s", name, object.TypeOf(arg))
}

func builtinLength(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("length", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len([]rune(v.Value)))}
	case *object.List:
		return &object.Integer{Value: int64(len(v.Values))}
	case *object.Tuple:
		return &object.Integer{Value: int64(len(v.Values))}
	default:
		return unsupportedArg("length", args[0])
	}
}

func builtinNot(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("not", 1, len(args))
	}
	b, ok := args[0].(*object.Boolean)
	if !ok {
		return unsupportedArg("not", args[0])
	}
	return object.NativeBool(!b.Value)
}

func builtinType(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("type", 1, len(args))
	}
	return &object.String{Value: object.TypeOf(args[0])}
}

func builtinAppend(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount("append", 2, len(args))
	}
	list, ok := args[0].(*object.List)
	if !ok {
		return unsupportedArg("append", args[0])
	}
	if len(list.Values) > 0 && object.TypeOf(list.Values[0]) != object.TypeOf(args[1]) {
		return object.NewError("Incompatible list operation: cannot append %s to [%s]",
			object.TypeOf(args[1]), object.TypeOf(list.Values[0]))
	}
	values := make([]object.Object, len(list.Values), len(list.Values)+1)
	copy(values, list.Values)
	values = append(values, args[1])
	return &object.List{Values: values}
}

func builtinPrintLn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("printLn", 1, len(args))
	}
	parts := make([]string, len(args))
	for i, a := range args {
		if s, ok := a.(*object.String); ok {
			parts[i] = expandEscapes(s.Value)
		} else {
			parts[i] = a.Inspect()
		}
	}
	fmt.Println(joinSpace(parts))
	return object.NULL
}

func expandEscapes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				out = append(out, '\n')
				i++
				continue
			case 't':
				out = append(out, '\t')
				i++
				continue
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

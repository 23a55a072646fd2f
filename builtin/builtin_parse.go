package builtin

import (
	"strconv"

	"github.com/sigmaf-lang/sigmaf/object"
)

// builtinParse implements spec.md §4.6's parse: conversion among
// int/float/str, str to a list of single-character strings, and
// list/tuple interconversion. The round-trip property in spec.md §8
// (`parse(parse(n, "str"), "int") == n`) depends on the int<->str
// branches here being exact inverses.
func builtinParse(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount("parse", 2, len(args))
	}
	target, ok := args[1].(*object.String)
	if !ok {
		return unsupportedArg("parse", args[1])
	}

	from := object.TypeOf(args[0])
	to := target.Value

	switch v := args[0].(type) {
	case *object.Integer:
		switch to {
		case "int":
			return v
		case "float":
			return &object.Float{Value: float64(v.Value)}
		case "str":
			return &object.String{Value: strconv.FormatInt(v.Value, 10)}
		}
	case *object.Float:
		switch to {
		case "float":
			return v
		case "int":
			return &object.Integer{Value: int64(v.Value)}
		case "str":
			return &object.String{Value: strconv.FormatFloat(v.Value, 'g', -1, 64)}
		}
	case *object.String:
		switch to {
		case "str":
			return v
		case "int":
			n, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return object.NewError("It is not possible to parser since %s to %s", from, to)
			}
			return &object.Integer{Value: n}
		case "float":
			f, err := strconv.ParseFloat(v.Value, 64)
			if err != nil {
				return object.NewError("It is not possible to parser since %s to %s", from, to)
			}
			return &object.Float{Value: f}
		case "list":
			runes := []rune(v.Value)
			values := make([]object.Object, len(runes))
			for i, r := range runes {
				values[i] = &object.String{Value: string(r)}
			}
			return &object.List{Values: values}
		}
	case *object.List:
		if to == "tuple" {
			return &object.Tuple{Values: v.Values}
		}
	case *object.Tuple:
		if to == "list" {
			return &object.List{Values: v.Values}
		}
	}

	return object.NewError("It is not possible to parser since %s to %s", from, to)
}

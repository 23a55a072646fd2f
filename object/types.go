package object

import "strings"

// TypeDescriptor is the two-level type descriptor spec.md §4.5 calls
// get_types: a base Type plus, for LIST_OBJ, the element descriptor
// (nil for an empty list), and for TUPLE_OBJ, one descriptor per
// element.
type TypeDescriptor struct {
	Base     Type
	ElemType *TypeDescriptor   // set only when Base == LIST_OBJ and the list is non-empty
	Elements []*TypeDescriptor // set only when Base == TUPLE_OBJ
}

// GetTypes computes the TypeDescriptor of a runtime value.
func GetTypes(obj Object) *TypeDescriptor {
	switch v := obj.(type) {
	case *List:
		if len(v.Values) == 0 {
			return &TypeDescriptor{Base: LIST_OBJ}
		}
		return &TypeDescriptor{Base: LIST_OBJ, ElemType: GetTypes(v.Values[0])}
	case *Tuple:
		elems := make([]*TypeDescriptor, len(v.Values))
		for i, e := range v.Values {
			elems[i] = GetTypes(e)
		}
		return &TypeDescriptor{Base: TUPLE_OBJ, Elements: elems}
	default:
		return &TypeDescriptor{Base: obj.Type()}
	}
}

// baseClassName renders a bare object Type as its TypeValue spelling
// (`int`, `str`, ...).
func baseClassName(t Type) string {
	switch t {
	case INTEGER_OBJ:
		return "int"
	case FLOAT_OBJ:
		return "float"
	case STRING_OBJ:
		return "str"
	case BOOLEAN_OBJ:
		return "bool"
	case VOID_OBJ:
		return "void"
	case FUNCTION_OBJ, BUILTIN_OBJ:
		return "function"
	case LIST_OBJ:
		return "list"
	case TUPLE_OBJ:
		return "tuple"
	default:
		return strings.ToLower(string(t))
	}
}

// ToStrType renders a TypeDescriptor as its canonical comparison
// string: `int`, `[int]`, `(int, str)`, an empty list renders as
// `list` (no element type is known yet).
func ToStrType(d *TypeDescriptor) string {
	if d == nil {
		return ""
	}
	switch d.Base {
	case LIST_OBJ:
		if d.ElemType == nil {
			return "list"
		}
		return "[" + ToStrType(d.ElemType) + "]"
	case TUPLE_OBJ:
		parts := make([]string, len(d.Elements))
		for i, e := range d.Elements {
			parts[i] = ToStrType(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return baseClassName(d.Base)
	}
}

// TypeOf is shorthand for ToStrType(GetTypes(obj)), the form used at
// `let`, call, and return type-contract sites.
func TypeOf(obj Object) string {
	return ToStrType(GetTypes(obj))
}

// MatchesDeclared reports whether obj satisfies the declared type
// string. A declared `[elem]` parameter/output accepts an empty list
// or a list whose every element's type textually matches elem (the
// `[elem]` leniency rule from spec.md §4.4); any other declared type
// must equal TypeOf(obj).
func MatchesDeclared(declared string, obj Object) bool {
	if strings.HasPrefix(declared, "[") && strings.HasSuffix(declared, "]") {
		list, ok := obj.(*List)
		if !ok {
			return false
		}
		if len(list.Values) == 0 {
			return true
		}
		elemDeclared := declared[1 : len(declared)-1]
		return TypeOf(list.Values[0]) == elemDeclared && sameElemTypes(list, elemDeclared)
	}
	return TypeOf(obj) == declared
}

// sameElemTypes verifies every element of list matches elemDeclared,
// used once MatchesDeclared has already confirmed the first element
// matches.
func sameElemTypes(list *List, elemDeclared string) bool {
	for _, v := range list.Values {
		if TypeOf(v) != elemDeclared {
			return false
		}
	}
	return true
}

// SplitTupleType reports whether s is a rendered tuple type
// `(t1, t2, ...)` and, if so, returns its element type strings split
// at top-level commas (nested parens/brackets are not split on).
// Used by function composition to unify a tuple-typed output against
// a multi-parameter function's signature.
func SplitTupleType(s string) ([]string, bool) {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return []string{}, true
	}

	parts := []string{}
	depth := 0
	start := 0
	for i, ch := range inner {
		switch ch {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(inner[start:]))
	return parts, true
}

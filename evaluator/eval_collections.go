package evaluator

import (
	"github.com/sigmaf-lang/sigmaf/ast"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/object"
)

// evalListLiteral evaluates elements left to right; the first Error
// short-circuits the whole aggregate.
func (ev *Evaluator) evalListLiteral(node *ast.ListLiteral, env *environment.Environment) object.Object {
	values := ev.evalExpressions(node.Values, env)
	if err := firstError(values); err != nil {
		return err
	}
	return &object.List{Values: values}
}

// evalTupleLiteral evaluates elements left to right; the first Error
// short-circuits the whole aggregate.
func (ev *Evaluator) evalTupleLiteral(node *ast.TupleLiteral, env *environment.Environment) object.Object {
	values := ev.evalExpressions(node.Values, env)
	if err := firstError(values); err != nil {
		return err
	}
	return &object.Tuple{Values: values}
}

// evalCallListExpression evaluates the indexed expression and its 1-3
// range expressions, then performs item lookup or slicing depending on
// whether the base is a List or a Tuple, per spec.md §4.4.
func (ev *Evaluator) evalCallListExpression(node *ast.CallListExpression, env *environment.Environment) object.Object {
	base := ev.Eval(node.List, env)
	if object.IsError(base) {
		return base
	}

	indexes := ev.evalExpressions(node.Range, env)
	if err := firstError(indexes); err != nil {
		return err
	}

	ints := make([]int64, len(indexes))
	for i, idx := range indexes {
		n, ok := idx.(*object.Integer)
		if !ok {
			return object.NewError("Arguments wrongs: index %d expected int got %s", i, object.TypeOf(idx))
		}
		ints[i] = n.Value
	}

	switch v := base.(type) {
	case *object.Tuple:
		return evalTupleIndex(v, ints)
	case *object.List:
		return evalListIndex(v, ints)
	default:
		return object.NewError("Not an iterable: cannot index a %s", object.TypeOf(base))
	}
}

func evalTupleIndex(tuple *object.Tuple, idx []int64) object.Object {
	if len(idx) != 1 {
		return object.NewError("Wrong number of indexes (tuple): expected 1, got %d", len(idx))
	}
	i := idx[0]
	if i < 0 || i >= int64(len(tuple.Values)) {
		return object.NewError("Out range: The length of the tuple is %d", len(tuple.Values))
	}
	return tuple.Values[i]
}

func evalListIndex(list *object.List, idx []int64) object.Object {
	length := int64(len(list.Values))

	switch len(idx) {
	case 1:
		i := idx[0]
		if i < 0 || i >= length {
			return object.NewError("Out range: The length of the list is %d", length)
		}
		return list.Values[i]
	case 2, 3:
		start, end := idx[0], idx[1]
		step := int64(1)
		if len(idx) == 3 {
			step = idx[2]
		}
		if end > length {
			return object.NULL
		}
		return sliceList(list, start, end, step)
	default:
		return object.NewError("Wrong number of indexes: expected 1, 2, or 3, got %d", len(idx))
	}
}

// sliceList returns a new List over [start, end) stepping by step.
func sliceList(list *object.List, start, end, step int64) object.Object {
	if step == 0 {
		return object.NewError("Arguments wrongs: slice step must not be zero")
	}
	result := []object.Object{}
	if step > 0 {
		for i := start; i < end; i += step {
			if i < 0 || i >= int64(len(list.Values)) {
				continue
			}
			result = append(result, list.Values[i])
		}
	} else {
		for i := start; i > end; i += step {
			if i < 0 || i >= int64(len(list.Values)) {
				continue
			}
			result = append(result, list.Values[i])
		}
	}
	return &object.List{Values: result}
}

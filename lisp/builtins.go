package lisp

import (
	"math/big"

	lisptype "github.com/ian-bird/ish/lisp_type"
)

// Builtins is the table of primitives bound in every top level frame.
var Builtins = []lisptype.Value{
	lisptype.NewBuiltin("+", 2, add),
}

// adds two numbers. two symbols are joined end to end instead,
// and the result goes through the usual coercion.
func add(args []lisptype.Value) (any, error) {
	a, b := args[0], args[1]
	switch {
	case a.Type == lisptype.Number && b.Type == lisptype.Number:
		return new(big.Int).Add(a.Int(), b.Int()), nil
	case a.Type == lisptype.Symbol && b.Type == lisptype.Symbol:
		return a.Name() + b.Name(), nil
	default:
		return nil, lisptype.Errorf(lisptype.TypeError, "unsupported operand types for +: %s and %s", a.Type, b.Type)
	}
}

package lisp

import (
	"fmt"
	"strings"

	lisptype "github.com/ian-bird/ish/lisp_type"
)

// print out each element in the list, space separated
func printList(v lisptype.Value) string {
	items := v.Items()
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = printValue(item)
	}
	return strings.Join(parts, " ")
}

// converts a value to a string recursively,
// representing lists by wrapping them with parenthesis
func printValue(v lisptype.Value) string {
	switch v.Type {
	case lisptype.Symbol:
		return v.Name()
	case lisptype.Number:
		return v.Int().String()
	case lisptype.List:
		return "(" + printList(v) + ")"
	case lisptype.Closure:
		return fmt.Sprintf("#<procedure of %d arguments>", len(v.Lambda().Params))
	case lisptype.Builtin:
		return fmt.Sprintf("#<builtin %s>", v.Native().Name)
	default:
		return "#<unknown>"
	}
}

// Print renders v the way the reader would have to see it.
func Print(v lisptype.Value) string {
	return printValue(v)
}

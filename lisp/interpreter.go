package lisp

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	lisptype "github.com/ian-bird/ish/lisp_type"
)

// names handled by the evaluator itself rather than looked up
const (
	defineForm = "define"
	beginForm  = "begin"
	lambdaForm = "lambda"
)

// SpecialForms lists the operator names Eval handles itself.
var SpecialForms = []string{beginForm, defineForm, lambdaForm}

// MaxEvalDepth bounds how deeply evaluation may nest before it fails
// with a RecursionError instead of exhausting the goroutine stack.
const MaxEvalDepth = 1000

// Eval interprets expr in frame.
func Eval(toEvaluate lisptype.Value, frame *lisptype.Frame) (lisptype.Value, error) {
	return eval(toEvaluate, frame, 0)
}

func eval(toEvaluate lisptype.Value, frame *lisptype.Frame, depth int) (lisptype.Value, error) {
	if depth >= MaxEvalDepth {
		return lisptype.Nil, lisptype.Errorf(lisptype.RecursionError, "maximum recursion depth exceeded")
	}
	switch toEvaluate.Type {
	// symbols evaluate to their binding
	case lisptype.Symbol:
		return frame.Lookup(toEvaluate)
	// numbers are self-evaluating
	case lisptype.Number:
		return toEvaluate, nil
	// lists are special forms or procedure calls
	case lisptype.List:
		return evalList(toEvaluate, frame, depth)
	default:
		return lisptype.Nil, lisptype.Errorf(lisptype.TypeError, "unknown expression type: %s", printValue(toEvaluate))
	}
}

func evalList(toEvaluate lisptype.Value, frame *lisptype.Frame, depth int) (lisptype.Value, error) {
	listElements := toEvaluate.Items()
	if len(listElements) == 0 {
		return lisptype.Nil, lisptype.Errorf(lisptype.TypeError, "cannot evaluate empty list")
	}
	first, arguments := listElements[0], listElements[1:]

	if first.Type == lisptype.Symbol && !first.IsEOF() {
		switch first.Name() {
		// binds the second argument, unevaluated, in the current frame
		case defineForm:
			if len(arguments) != 2 {
				return lisptype.Nil, lisptype.Errorf(lisptype.ArityError, "define takes 2 arguments, got %d", len(arguments))
			}
			if err := frame.Define(arguments[0], arguments[1]); err != nil {
				return lisptype.Nil, err
			}
			return lisptype.Nil, nil
		// evaluates each argument in a fresh child frame, returning the last
		case beginForm:
			if len(arguments) == 0 {
				return lisptype.Nil, lisptype.Errorf(lisptype.ArityError, "begin needs at least 1 expression")
			}
			inner := lisptype.NewFrame(nil, nil, frame)
			if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
				slog.Debug("push begin frame", slog.Int("depth", inner.Depth()), slog.Int("forms", len(arguments)))
			}
			var result lisptype.Value
			for _, arg := range arguments {
				var err error
				result, err = eval(arg, inner, depth+1)
				if err != nil {
					return lisptype.Nil, err
				}
			}
			return result, nil
		// creates a new closure over the current frame
		case lambdaForm:
			if len(arguments) != 2 {
				return lisptype.Nil, lisptype.Errorf(lisptype.ArityError, "lambda takes a parameter list and a body, got %d arguments", len(arguments))
			}
			if arguments[0].Type != lisptype.List {
				return lisptype.Nil, lisptype.Errorf(lisptype.TypeError, "lambda parameters must be a list, got %s", printValue(arguments[0]))
			}
			return lisptype.NewClosure(arguments[0].Items(), arguments[1], frame)
		}
	}

	proc, err := eval(first, frame, depth+1)
	if err != nil {
		return lisptype.Nil, err
	}
	evaluatedArgs := make([]lisptype.Value, 0, len(arguments))
	for _, arg := range arguments {
		evaluatedArg, err := eval(arg, frame, depth+1)
		if err != nil {
			return lisptype.Nil, err
		}
		evaluatedArgs = append(evaluatedArgs, evaluatedArg)
	}
	return apply(proc, evaluatedArgs, depth+1)
}

// Apply calls a procedure with arguments that were already evaluated.
func Apply(proc lisptype.Value, args []lisptype.Value) (lisptype.Value, error) {
	return apply(proc, args, 0)
}

func apply(proc lisptype.Value, args []lisptype.Value, depth int) (lisptype.Value, error) {
	switch proc.Type {
	case lisptype.Closure:
		fn := proc.Lambda()
		slog.Debug("apply closure", slog.Int("params", len(fn.Params)), slog.Int("args", len(args)))
		argFrame := lisptype.NewFrame(fn.Params, args, fn.Env)
		return eval(fn.Body, argFrame, depth)
	case lisptype.Builtin:
		fn := proc.Native()
		slog.Debug("apply builtin", slog.String("name", fn.Name), slog.Int("args", len(args)))
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return lisptype.Nil, lisptype.Errorf(lisptype.TypeError, "%s takes %d arguments, got %d", fn.Name, fn.Arity, len(args))
		}
		raw, err := fn.Fn(args)
		if err != nil {
			return lisptype.Nil, err
		}
		return coerce(raw), nil
	default:
		return lisptype.Nil, lisptype.Errorf(lisptype.TypeError, "not a procedure: %s", printValue(proc))
	}
}

// coerce brings a builtin's raw result back into the value model by
// printing it and classifying the text like the reader would.
// Anything that doesn't print as an integer comes back as a symbol.
func coerce(raw any) lisptype.Value {
	switch r := raw.(type) {
	case lisptype.Value:
		return lisptype.Classify(printValue(r))
	case *big.Int:
		return lisptype.Classify(r.String())
	case string:
		return lisptype.Classify(r)
	default:
		return lisptype.Classify(fmt.Sprint(r))
	}
}

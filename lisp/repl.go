package lisp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	lisptype "github.com/ian-bird/ish/lisp_type"
)

// creates a new top level frame with the builtin table bound
func NewTopLevelFrame() *lisptype.Frame {
	frame := lisptype.NewFrame(nil, nil, nil)
	for _, builtin := range Builtins {
		frame.Bindings[builtin.Native().Name] = builtin
	}
	return frame
}

// evaluates every expression the tokenizer yields, returning the last result
func evalAll(tokens *Tokenizer, frame *lisptype.Frame) (lisptype.Value, int, error) {
	result := lisptype.Nil
	count := 0
	for {
		parsedExpression, err := Read(tokens)
		if err != nil {
			return lisptype.Nil, count, err
		}
		if parsedExpression.IsEOF() {
			return result, count, nil
		}
		result, err = Eval(parsedExpression, frame)
		if err != nil {
			return lisptype.Nil, count, err
		}
		count++
	}
}

// LoadFile evaluates every expression in a file, in order.
func LoadFile(fileName string, frame *lisptype.Frame) error {
	f, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("load %s: %w", fileName, err)
	}
	defer f.Close()

	_, count, err := evalAll(NewTokenizer(NewLineReader(f)), frame)
	if err != nil {
		return fmt.Errorf("load %s: %w", fileName, err)
	}
	slog.Debug("loaded file", slog.String("path", fileName), slog.Int("forms", count))
	return nil
}

// EvalString evaluates every expression in src and returns the last result.
func EvalString(src string, frame *lisptype.Frame) (lisptype.Value, error) {
	result, _, err := evalAll(NewStringTokenizer(src), frame)
	return result, err
}

// reports a failure as "<Kind>: <message>"
func report(out io.Writer, err error) {
	if _, ok := lisptype.KindOf(err); ok {
		fmt.Fprintln(out, err.Error())
		return
	}
	if errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(out, "Interrupt: input discarded")
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}

// Repl reads, evaluates and prints until the source runs out.
// Failures are reported and the loop carries on with the same frame.
func Repl(frame *lisptype.Frame, src LineReader, out io.Writer, prompt string) error {
	tokens := NewTokenizer(src)
	prompter, drawsPrompt := src.(Prompter)
	for {
		// a half-read line continues the previous input
		if !tokens.Pending() {
			if drawsPrompt {
				prompter.SetPrompt(prompt)
			} else if prompt != "" {
				fmt.Fprint(out, prompt)
			}
		}

		parsedExpression, err := Read(tokens)
		if err != nil {
			kind, isLispErr := lisptype.KindOf(err)
			if !isLispErr && !errors.Is(err, ErrInterrupted) {
				return err
			}
			if errors.Is(err, ErrInterrupted) || kind == lisptype.SyntaxError {
				tokens.Reset()
			}
			report(out, err)
			continue
		}
		if parsedExpression.IsEOF() {
			return nil
		}

		output, err := Eval(parsedExpression, frame)
		if err != nil {
			report(out, err)
			continue
		}
		fmt.Fprintln(out, Print(output))
	}
}

package lisptype

import (
	"errors"
	"fmt"
)

// the kinds of errors the language can raise
type ErrorKind int

const (
	SyntaxError     ErrorKind = iota // unbalanced parens, unterminated strings
	UndefinedSymbol                  // lookup ran off the root frame
	TypeError                        // wrong kind of value in some position
	ArityError                       // malformed special form
	RecursionError                   // evaluation nested too deeply
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UndefinedSymbol:
		return "UndefinedSymbol"
	case TypeError:
		return "TypeError"
	case ArityError:
		return "ArityError"
	case RecursionError:
		return "RecursionError"
	default:
		return "Error"
	}
}

// Error is a failure raised by the reader or the evaluator.
// It prints as "<Kind>: <message>".
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf digs a language error out of err.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

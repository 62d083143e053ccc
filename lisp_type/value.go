package lisptype

import (
	"math/big"
)

// this is the type enum for values
type ValueType int

// these are all the valid types for a value
const (
	Symbol  ValueType = iota // a name, looked up in the frame chain when evaluated
	Number                   // an arbitrary precision integer
	List                     // an ordered sequence of values
	Closure                  // a procedure written in lisp, with its captured frame
	Builtin                  // a procedure implemented in go
)

func (t ValueType) String() string {
	switch t {
	case Symbol:
		return "Symbol"
	case Number:
		return "Number"
	case List:
		return "List"
	case Closure:
		return "Closure"
	case Builtin:
		return "Builtin"
	default:
		return "Unknown"
	}
}

// this is a value struct.
// the payload depends on the type:
// string for symbols, *big.Int for numbers, []Value for lists,
// *Lambda for closures and *Native for builtins
type Value struct {
	Type  ValueType // the type of this value
	Value any       // the payload
}

// the payload of a closure
type Lambda struct {
	Params []string // parameter names, in call order
	Body   Value    // a single expression, wrap it in begin for more
	Env    *Frame   // the frame the closure was created in
}

// NativeFunc is the go side of a builtin. The raw result is turned back
// into a Value by the applier.
type NativeFunc func(args []Value) (any, error)

// the payload of a builtin
type Native struct {
	Name  string
	Arity int // -1 accepts any number of arguments
	Fn    NativeFunc
}

// eofMarker is never produced from user input, so the end-of-input
// symbol can't collide with a symbol spelled the same way.
type eofMarker string

var (
	// Nil is returned by define and alongside errors.
	Nil = NewSymbol("nil")
	// EOF is what the reader returns once the source runs dry.
	EOF = Value{Type: Symbol, Value: eofMarker("#<eof-object>")}
)

func NewSymbol(name string) Value {
	return Value{Type: Symbol, Value: name}
}

func NewNumber(n *big.Int) Value {
	return Value{Type: Number, Value: n}
}

func NewInt(n int64) Value {
	return NewNumber(big.NewInt(n))
}

func NewList(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Type: List, Value: items}
}

// NewClosure builds a closure over env. Every parameter must be a symbol.
func NewClosure(params []Value, body Value, env *Frame) (Value, error) {
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Type != Symbol || p.IsEOF() {
			return Nil, Errorf(TypeError, "closure parameter must be a symbol, got %v", p.Type)
		}
		names = append(names, p.Name())
	}
	return Value{Type: Closure, Value: &Lambda{Params: names, Body: body, Env: env}}, nil
}

func NewBuiltin(name string, arity int, fn NativeFunc) Value {
	return Value{Type: Builtin, Value: &Native{Name: name, Arity: arity, Fn: fn}}
}

// Classify turns literal text into an atom: anything that parses as an
// optionally signed decimal integer is a number, everything else a symbol.
func Classify(text string) Value {
	if n, ok := new(big.Int).SetString(text, 10); ok {
		return NewNumber(n)
	}
	return NewSymbol(text)
}

// Name returns the text of a symbol, or "" for anything else.
func (v Value) Name() string {
	switch name := v.Value.(type) {
	case string:
		return name
	case eofMarker:
		return string(name)
	default:
		return ""
	}
}

func (v Value) Int() *big.Int {
	n, _ := v.Value.(*big.Int)
	return n
}

func (v Value) Items() []Value {
	items, _ := v.Value.([]Value)
	return items
}

func (v Value) Lambda() *Lambda {
	l, _ := v.Value.(*Lambda)
	return l
}

func (v Value) Native() *Native {
	n, _ := v.Value.(*Native)
	return n
}

// IsEOF reports whether v is the end-of-input symbol.
func (v Value) IsEOF() bool {
	_, ok := v.Value.(eofMarker)
	return v.Type == Symbol && ok
}

func (v Value) IsAtom() bool {
	return v.Type == Symbol || v.Type == Number
}

func (v Value) IsProcedure() bool {
	return v.Type == Closure || v.Type == Builtin
}

// returns true if 2 values are equal, checks recursively.
// procedures are only equal to themselves.
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case Symbol:
		return a.Value == b.Value
	case Number:
		return a.Int().Cmp(b.Int()) == 0
	case List:
		as, bs := a.Items(), b.Items()
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	case Closure:
		return a.Lambda() == b.Lambda()
	case Builtin:
		return a.Native() == b.Native()
	}
	return false
}

package lisptype

import (
	"math/big"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text     string
		wantType ValueType
		wantText string
	}{
		{"42", Number, "42"},
		{"-7", Number, "-7"},
		{"+5", Number, "5"},
		{"123456789012345678901234567890", Number, "123456789012345678901234567890"},
		{"x", Symbol, "x"},
		{"+", Symbol, "+"},
		{"-", Symbol, "-"},
		{"1.5", Symbol, "1.5"},
		{"1_000", Symbol, "1_000"},
		{"0x10", Symbol, "0x10"},
		{`"hi"`, Symbol, `"hi"`},
	}
	for _, tt := range tests {
		got := Classify(tt.text)
		if got.Type != tt.wantType {
			t.Errorf("Classify(%q).Type = %v, want %v", tt.text, got.Type, tt.wantType)
			continue
		}
		var text string
		if got.Type == Number {
			text = got.Int().String()
		} else {
			text = got.Name()
		}
		if text != tt.wantText {
			t.Errorf("Classify(%q) text = %q, want %q", tt.text, text, tt.wantText)
		}
	}
}

func TestEOFIsNotAUserSymbol(t *testing.T) {
	lookalike := NewSymbol("#<eof-object>")
	if !EOF.IsEOF() {
		t.Fatal("EOF.IsEOF() = false")
	}
	if lookalike.IsEOF() {
		t.Error("user symbol spelled like EOF reports IsEOF")
	}
	if Equal(EOF, lookalike) {
		t.Error("EOF compares equal to a user symbol")
	}
	if EOF.Name() != lookalike.Name() {
		t.Errorf("EOF.Name() = %q, want %q", EOF.Name(), lookalike.Name())
	}
}

func TestEqual(t *testing.T) {
	a := NewList(NewSymbol("+"), NewInt(1), NewList(NewInt(2)))
	b := NewList(NewSymbol("+"), NewNumber(big.NewInt(1)), NewList(NewInt(2)))
	c := NewList(NewSymbol("+"), NewInt(1), NewList(NewInt(3)))

	if !Equal(a, b) {
		t.Error("structurally equal lists compare unequal")
	}
	if Equal(a, c) {
		t.Error("different lists compare equal")
	}
	if Equal(NewInt(1), NewSymbol("1")) {
		t.Error("number 1 equals symbol 1")
	}
	if !Equal(NewList(), NewList()) {
		t.Error("empty lists compare unequal")
	}
}

func TestNewClosure(t *testing.T) {
	env := NewFrame(nil, nil, nil)
	body := NewSymbol("x")
	proc, err := NewClosure([]Value{NewSymbol("x"), NewSymbol("y")}, body, env)
	if err != nil {
		t.Fatalf("NewClosure: %v", err)
	}
	if !proc.IsProcedure() || proc.Type != Closure {
		t.Fatalf("got type %v, want Closure", proc.Type)
	}
	fn := proc.Lambda()
	if len(fn.Params) != 2 || fn.Params[0] != "x" || fn.Params[1] != "y" {
		t.Errorf("params = %v", fn.Params)
	}
	if fn.Env != env {
		t.Error("closure does not share its defining frame")
	}

	_, err = NewClosure([]Value{NewInt(1)}, body, env)
	if kind, ok := KindOf(err); !ok || kind != TypeError {
		t.Errorf("numeric parameter: got %v, want TypeError", err)
	}
}

func TestErrorFormat(t *testing.T) {
	err := Errorf(ArityError, "define takes %d arguments", 2)
	if got, want := err.Error(), "ArityError: define takes 2 arguments"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := Errorf(RecursionError, "too deep").Error(); got != "RecursionError: too deep" {
		t.Errorf("Error() = %q", got)
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) reported a kind")
	}
}

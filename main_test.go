package main

import (
	"reflect"
	"testing"

	"github.com/ian-bird/ish/lisp"
	lisptype "github.com/ian-bird/ish/lisp_type"
)

func TestCompleter(t *testing.T) {
	frame := lisp.NewTopLevelFrame()
	_ = frame.Define(lisptype.NewSymbol("define-me"), lisptype.NewInt(1))
	complete := completer(frame)

	tests := []struct {
		line string
		want []string
	}{
		{"(def", []string{"(define", "(define-me"}},
		{"(+ 1 (be", []string{"(+ 1 (begin"}},
		{"(zz", nil},
		{"", append(append([]string{}, lisp.SpecialForms...), "+", "define-me")},
	}
	for _, tt := range tests {
		if got := complete(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("complete(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

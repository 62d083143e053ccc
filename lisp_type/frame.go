package lisptype

import "sort"

// a frame contains bindings that associate
// certain strings (the value of symbol Values)
// with other values
type Frame struct {
	Parent   *Frame           // the frame above this one
	Bindings map[string]Value // its bindings
}

// NewFrame binds params to args pairwise. Extra args are dropped and
// params without an arg are left unbound.
func NewFrame(params []string, args []Value, parent *Frame) *Frame {
	frame := &Frame{
		Parent:   parent,
		Bindings: make(map[string]Value, len(params)),
	}
	for i, name := range params {
		if i >= len(args) {
			break
		}
		frame.Bindings[name] = args[i]
	}
	return frame
}

// looks up the binding definition for a symbol,
// checking this frame first and then the ones above it
func (f *Frame) Lookup(sym Value) (Value, error) {
	if sym.Type != Symbol {
		return Nil, Errorf(TypeError, "cannot look up value for non-symbol %v", sym.Type)
	}
	if sym.IsEOF() {
		return Nil, Errorf(UndefinedSymbol, "no binding found for symbol '%s'", sym.Name())
	}
	name := sym.Name()
	for frame := f; frame != nil; frame = frame.Parent {
		if v, ok := frame.Bindings[name]; ok {
			return v, nil
		}
	}
	return Nil, Errorf(UndefinedSymbol, "no binding found for symbol '%s'", name)
}

// Define binds sym in this frame only, replacing any earlier binding.
func (f *Frame) Define(sym Value, v Value) error {
	if sym.Type != Symbol || sym.IsEOF() {
		return Errorf(TypeError, "cannot bind non-symbol %v", sym.Type)
	}
	f.Bindings[sym.Name()] = v
	return nil
}

// number of frames above this one
func (f *Frame) Depth() int {
	depth := 0
	for frame := f.Parent; frame != nil; frame = frame.Parent {
		depth++
	}
	return depth
}

// returns every name visible from this frame, sorted
func (f *Frame) Names() []string {
	seen := make(map[string]bool)
	for frame := f; frame != nil; frame = frame.Parent {
		for name := range frame.Bindings {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

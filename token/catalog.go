package token

import "fmt"

// catalog lists the standard regression operators by name.
// Arity and trig membership are fixed properties of the operator;
// which operators a task actually registers is decided by its
// function set (see NewRegressionLibrary).
var catalog = map[string]Token{
	"add":    {Name: "add", Arity: 2},
	"sub":    {Name: "sub", Arity: 2},
	"mul":    {Name: "mul", Arity: 2},
	"div":    {Name: "div", Arity: 2},
	"sin":    {Name: "sin", Arity: 1, Trig: true},
	"cos":    {Name: "cos", Arity: 1, Trig: true},
	"tan":    {Name: "tan", Arity: 1, Trig: true},
	"arcsin": {Name: "arcsin", Arity: 1},
	"arccos": {Name: "arccos", Arity: 1},
	"arctan": {Name: "arctan", Arity: 1},
	"exp":    {Name: "exp", Arity: 1},
	"log":    {Name: "log", Arity: 1},
	"sqrt":   {Name: "sqrt", Arity: 1},
	"n2":     {Name: "n2", Arity: 1},
	"neg":    {Name: "neg", Arity: 1},
	"inv":    {Name: "inv", Arity: 1},
	"abs":    {Name: "abs", Arity: 1},
	"tanh":   {Name: "tanh", Arity: 1},
}

// inversePairs lists the structural-inverse pairings among catalog
// operators. A pair is registered only when both members made it into
// the library's function set.
var inversePairs = [][2]string{
	{"exp", "log"},
	{"sqrt", "n2"},
	{"neg", "neg"},
	{"inv", "inv"},
	{"sin", "arcsin"},
	{"cos", "arccos"},
	{"tan", "arctan"},
}

// ConstName is the reserved function-set name that registers a mutable
// constant placeholder terminal.
const ConstName = "const"

// ErrUnknownFunction is returned by NewRegressionLibrary when the
// function set names an operator absent from the catalog.
var ErrUnknownFunction = fmt.Errorf("token: function not in catalog: %w", ErrUnknownToken)

// NewRegressionLibrary builds the task Library for a regression search:
// catalog operators named by functionSet (in the given order), then
// input variables x1…x⟨nInputVar⟩, then a mutable "const" placeholder
// when functionSet contains ConstName, then any fixed constants.
// Inverse pairs are wired for every pair fully present in the set.
//
// The first input variable doubles as the default padding terminal, so
// nInputVar must be ≥ 1.
func NewRegressionLibrary(functionSet []string, nInputVar int, fixedConsts []float64) (*Library, error) {
	if nInputVar < 1 {
		return nil, ErrNoTerminal
	}

	lib := NewLibrary()
	hasConst := false
	for _, name := range functionSet {
		if name == ConstName {
			hasConst = true
			continue // terminals are registered after operators
		}
		tok, ok := catalog[name]
		if !ok {
			return nil, ErrUnknownFunction
		}
		if _, err := lib.Register(tok); err != nil {
			return nil, err
		}
	}

	for i := 0; i < nInputVar; i++ {
		tok := Token{Name: fmt.Sprintf("x%d", i+1), InputVar: true, Var: i}
		if _, err := lib.Register(tok); err != nil {
			return nil, err
		}
	}

	if hasConst {
		if _, err := lib.Register(Token{Name: ConstName, Const: true}); err != nil {
			return nil, err
		}
	}

	for i, v := range fixedConsts {
		tok := Token{Name: fmt.Sprintf("c%d", i+1), Fixed: true, FixedValue: v}
		if _, err := lib.Register(tok); err != nil {
			return nil, err
		}
	}

	for _, pair := range inversePairs {
		if _, _, err := lib.LookupName(pair[0]); err != nil {
			continue
		}
		if _, _, err := lib.LookupName(pair[1]); err != nil {
			continue
		}
		if err := lib.PairInverse(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

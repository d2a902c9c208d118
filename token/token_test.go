package token_test

import (
	"testing"

	"github.com/katalvlaran/symexpr/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister_Validation verifies that bad registrations are rejected
// and leave the library unchanged.
func TestRegister_Validation(t *testing.T) {
	lib := token.NewLibrary()

	_, err := lib.Register(token.Token{Name: "", Arity: 1})
	assert.ErrorIs(t, err, token.ErrEmptyName, "empty name must error")

	_, err = lib.Register(token.Token{Name: "tern", Arity: 3})
	assert.ErrorIs(t, err, token.ErrBadArity, "arity 3 must error")

	_, err = lib.Register(token.Token{Name: "add", Arity: 2})
	require.NoError(t, err)
	_, err = lib.Register(token.Token{Name: "add", Arity: 2})
	assert.ErrorIs(t, err, token.ErrDuplicateName, "re-registering a name must error")

	assert.Equal(t, 1, lib.Len(), "failed registrations must not grow the library")
}

// TestRegister_IndexOrderAndSets verifies contiguous indices and the
// derived arity sets.
func TestRegister_IndexOrderAndSets(t *testing.T) {
	lib := token.NewLibrary()

	names := []token.Token{
		{Name: "add", Arity: 2},
		{Name: "sin", Arity: 1, Trig: true},
		{Name: "x1", InputVar: true, Var: 0},
		{Name: "x2", InputVar: true, Var: 1},
	}
	for want, tok := range names {
		idx, err := lib.Register(tok)
		require.NoError(t, err)
		assert.Equal(t, want, idx, "indices must follow insertion order")
	}

	assert.Equal(t, []int{2, 3}, lib.Terminals())
	assert.Equal(t, []int{1}, lib.Unaries())
	assert.Equal(t, []int{0}, lib.Binaries())
	assert.Equal(t, []int{1}, lib.Trigs())

	def, err := lib.DefaultTerminal()
	require.NoError(t, err)
	assert.Equal(t, 2, def, "default terminal is the first input variable")
}

// TestLookup_Misses verifies the unknown-token sentinels.
func TestLookup_Misses(t *testing.T) {
	lib := token.NewLibrary()
	_, err := lib.Register(token.Token{Name: "x1", InputVar: true})
	require.NoError(t, err)

	_, err = lib.Lookup(-1)
	assert.ErrorIs(t, err, token.ErrUnknownToken)
	_, err = lib.Lookup(1)
	assert.ErrorIs(t, err, token.ErrUnknownToken)
	_, _, err = lib.LookupName("nope")
	assert.ErrorIs(t, err, token.ErrUnknownToken)

	assert.Equal(t, -1, lib.ArityOf(7), "out-of-range ArityOf returns -1")
}

// TestPairInverse_Symmetry verifies that pairing writes both directions
// and that conflicting re-pairing is rejected.
func TestPairInverse_Symmetry(t *testing.T) {
	lib := token.NewLibrary()
	ie, err := lib.Register(token.Token{Name: "exp", Arity: 1})
	require.NoError(t, err)
	il, err := lib.Register(token.Token{Name: "log", Arity: 1})
	require.NoError(t, err)
	in, err := lib.Register(token.Token{Name: "neg", Arity: 1})
	require.NoError(t, err)

	require.NoError(t, lib.PairInverse("exp", "log"))
	require.NoError(t, lib.PairInverse("neg", "neg"), "self-inverse pairing is allowed")

	inv, ok := lib.Inverse(ie)
	assert.True(t, ok)
	assert.Equal(t, il, inv)
	inv, ok = lib.Inverse(il)
	assert.True(t, ok)
	assert.Equal(t, ie, inv)
	inv, ok = lib.Inverse(in)
	assert.True(t, ok)
	assert.Equal(t, in, inv, "neg is its own inverse")

	assert.NoError(t, lib.PairInverse("exp", "log"), "re-pairing the same partner is a no-op")
	assert.ErrorIs(t, lib.PairInverse("exp", "neg"), token.ErrInverseAsymmetry,
		"re-pairing to a different partner must error")
	assert.ErrorIs(t, lib.PairInverse("exp", "nope"), token.ErrUnknownToken)
}

// TestNewRegressionLibrary_Layout verifies the registration order:
// operators, input variables, mutable const, fixed constants.
func TestNewRegressionLibrary_Layout(t *testing.T) {
	lib, err := token.NewRegressionLibrary([]string{"add", "sin", "const"}, 2, []float64{3.14})
	require.NoError(t, err)
	require.Equal(t, 6, lib.Len())

	wantNames := []string{"add", "sin", "x1", "x2", "const", "c1"}
	for i, name := range wantNames {
		tok, lerr := lib.Lookup(i)
		require.NoError(t, lerr)
		assert.Equal(t, name, tok.Name, "index %d", i)
	}

	_, x1, err := lib.LookupName("x1")
	require.NoError(t, err)
	assert.True(t, x1.InputVar)
	assert.Equal(t, 0, x1.Var)

	_, c, err := lib.LookupName("const")
	require.NoError(t, err)
	assert.True(t, c.Const)

	_, c1, err := lib.LookupName("c1")
	require.NoError(t, err)
	assert.True(t, c1.Fixed)
	assert.Equal(t, 3.14, c1.FixedValue)

	def, err := lib.DefaultTerminal()
	require.NoError(t, err)
	assert.Equal(t, 2, def, "x1 is the padding terminal")
}

// TestNewRegressionLibrary_InversePairs verifies that inverse pairs are
// wired only when both members are in the function set.
func TestNewRegressionLibrary_InversePairs(t *testing.T) {
	lib, err := token.NewRegressionLibrary([]string{"exp", "log", "sin"}, 1, nil)
	require.NoError(t, err)

	ie, _, err := lib.LookupName("exp")
	require.NoError(t, err)
	il, _, err := lib.LookupName("log")
	require.NoError(t, err)

	inv, ok := lib.Inverse(ie)
	assert.True(t, ok)
	assert.Equal(t, il, inv)

	// sin's partner arcsin is absent, so sin stays unpaired.
	is, _, err := lib.LookupName("sin")
	require.NoError(t, err)
	_, ok = lib.Inverse(is)
	assert.False(t, ok, "sin must stay unpaired without arcsin")
}

// TestNewRegressionLibrary_Errors verifies catalog and input-variable
// preconditions.
func TestNewRegressionLibrary_Errors(t *testing.T) {
	_, err := token.NewRegressionLibrary([]string{"frobnicate"}, 1, nil)
	assert.ErrorIs(t, err, token.ErrUnknownToken, "unknown function must error")

	_, err = token.NewRegressionLibrary([]string{"add"}, 0, nil)
	assert.ErrorIs(t, err, token.ErrNoTerminal, "at least one input variable is required")
}

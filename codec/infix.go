package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/symexpr/token"
)

// binarySymbols maps catalog binary operators to their infix spelling.
// Operators outside this map render in function form, e.g. f(a, b).
var binarySymbols = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"div": "/",
}

// Infix renders the subtree rooted at root as a fully parenthesized
// human-readable expression: binary catalog operators as (a op b),
// other operators as name(args…), input variables by name, and
// constants by their current value.
//
// Complexity: O(n) over the subtree.
func Infix(root *Node, lib *token.Library) (string, error) {
	if root == nil {
		return "", ErrNilNode
	}
	if lib == nil {
		return "", ErrNilLibrary
	}

	tok, err := lib.Lookup(root.Index)
	if err != nil {
		return "", ErrUnknownIndex
	}

	switch {
	case tok.Const, tok.Fixed:
		return strconv.FormatFloat(root.Value, 'g', -1, 64), nil
	case tok.Terminal():
		return tok.Name, nil
	}

	args := make([]string, len(root.Children))
	for i, c := range root.Children {
		if args[i], err = Infix(c, lib); err != nil {
			return "", err
		}
	}

	if sym, ok := binarySymbols[tok.Name]; ok && tok.Binary() {
		return fmt.Sprintf("(%s %s %s)", args[0], sym, args[1]), nil
	}

	return fmt.Sprintf("%s(%s)", tok.Name, strings.Join(args, ", ")), nil
}

package codec_test

import (
	"fmt"

	"github.com/katalvlaran/symexpr/codec"
	"github.com/katalvlaran/symexpr/token"
)

// ExampleComplete demonstrates closing a dangling sequence and parsing
// it into a readable expression.
//
// Scenario:
//
//	The sampler emitted [add, sin] and stopped; two operand slots are
//	still open. Complete pads them with the default terminal x1, giving
//	the pre-order sequence of add(sin(x1), x1).
func ExampleComplete() {
	lib, err := token.NewRegressionLibrary([]string{"add", "sin"}, 1, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	add, _, _ := lib.LookupName("add")
	sin, _, _ := lib.LookupName("sin")

	seq, n, err := codec.Complete([]int{add, sin}, lib, 30)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	tree, err := codec.ToTree(seq[:n], lib)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	expr, _ := codec.Infix(tree, lib)
	fmt.Printf("length=%d\nexpr=%s\n", n, expr)
	// Output:
	// length=4
	// expr=(sin(x1) + x1)
}

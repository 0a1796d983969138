package poly

import "fmt"

// ExampleMultiplyByLinear builds (x - 1)(x - 2) from the empty polynomial.
func ExampleMultiplyByLinear() {
	var p Polynomial
	p = MultiplyByLinear(p, 1, -1)
	p = MultiplyByLinear(p, 1, -2)
	fmt.Println([]float64(p))
	fmt.Println(Format(p))
	// Output:
	// [1 -3 2]
	// y = + 1.0000*x^2 - 3.0000*x + 2.0000
}

// ExampleEvaluate evaluates 2x - 3 at x = 1.
func ExampleEvaluate() {
	y, err := Evaluate(Polynomial{2, -3}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	// Output:
	// -1
}

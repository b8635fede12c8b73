package bqm_test

import (
	"fmt"

	"github.com/kevinchern/dimod/bqm"
)

// ExampleBinaryQuadraticModel demonstrates building a small spin model
// and evaluating its energy.
func ExampleBinaryQuadraticModel() {
	// 1) Two coupled spins with a field on the first:
	model := bqm.New(bqm.Spin)
	model.AddLinear(0, -1)
	model.AddQuadratic(0, 1, 2) // auto-grows the model to 2 variables

	// 2) Inspect the structure:
	fmt.Println("variables:", model.NumVariables())
	fmt.Println("interactions:", model.NumInteractions())

	// 3) Evaluate both aligned assignments:
	fmt.Println("upup:", model.Energy([]float64{1, 1}))
	fmt.Println("downdown:", model.Energy([]float64{-1, -1}))

	// Output:
	// variables: 2
	// interactions: 1
	// upup: 1
	// downdown: 3
}

// ExampleBinaryQuadraticModel_changeVartype shows that domain
// conversion preserves energies for corresponding samples.
func ExampleBinaryQuadraticModel_changeVartype() {
	model := bqm.New(bqm.Binary)
	model.AddLinear(0, 0.5)
	model.AddQuadratic(0, 1, -2)

	// x_binary = (1, 1) corresponds to x_spin = (1, 1).
	before := model.Energy([]float64{1, 1})
	_ = model.ChangeVartype(bqm.Spin)
	after := model.Energy([]float64{1, 1})

	fmt.Println(before == after)
	// Output:
	// true
}

// ExampleNewFromCOO ingests coordinate triples; self-loops are routed
// per vartype, here (spin) into the offset.
func ExampleNewFromCOO() {
	model, _ := bqm.NewFromCOO(
		[]int{0, 2, 0, 1},
		[]int{0, 2, 1, 2},
		[]float64{.5, -2, 2, -3},
		bqm.Spin,
	)

	fmt.Println("variables:", model.NumVariables())
	fmt.Println("offset:", model.Offset())
	fmt.Println("q01:", model.Quadratic(0, 1))

	// Output:
	// variables: 3
	// offset: -1.5
	// q01: 2
}

// ExampleNeighborhood_Do iterates one variable's sparse row in
// ascending neighbor order.
func ExampleNeighborhood_Do() {
	model, _ := bqm.NewSized(4, bqm.Binary)
	_ = model.SetQuadratic(1, 3, -1)
	_ = model.SetQuadratic(1, 0, 2.5)
	_ = model.SetQuadratic(1, 2, 4)

	model.Neighborhood(1).Do(func(v int, bias float64) bool {
		fmt.Println(v, bias)
		return true
	})

	// Output:
	// 0 2.5
	// 2 4
	// 3 -1
}

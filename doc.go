// Package dimod is an in-memory representation of binary quadratic
// models (BQMs): quadratic polynomial objectives over binary {0,1} or
// spin {-1,+1} variables, the canonical problem form consumed by
// discrete-optimization samplers and solvers.
//
// 🚀 What is dimod?
//
//	A small, deterministic library built around a sparse symmetric
//	adjacency structure:
//		• bqm.Neighborhood — one sorted, unique-keyed sparse row per variable
//		• bqm.QuadraticModelBase — linear biases + adjacency + offset,
//		  with O(n+m) energy evaluation
//		• bqm.BinaryQuadraticModel — vartype-aware mutation: quadratic
//		  add/set, dense and COO bulk ingestion, model merging, resizing,
//		  and exact BINARY↔SPIN conversion
//
// ✨ Why choose dimod?
//
//   - Exact arithmetic – domain conversion follows fixed multiplier
//     tables with no drift; round trips restore the original model
//   - Rock-solid invariants – every public operation leaves each row
//     sorted, unique and symmetric
//   - Pure Go core – plain integer indices, no pointer graphs, no cgo
//   - Plays well with gonum – build models from any mat.Matrix and
//     export the canonical symmetric form back out
//
// Everything lives under a single subpackage:
//
//	bqm/ — Vartype, Neighborhood, QuadraticModelBase, BinaryQuadraticModel
//
// Quick example:
//
//	model := bqm.New(bqm.Spin)
//	model.AddQuadratic(0, 1, -1)     // ferromagnetic coupling
//	model.AddLinear(0, 0.5)
//	e := model.Energy([]float64{1, -1})
//
// See bqm's package documentation for the full surface, complexity
// notes and the ownership/iteration rules.
//
//	go get github.com/kevinchern/dimod/bqm
package dimod

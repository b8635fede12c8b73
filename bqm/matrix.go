// Package bqm: gonum interop. Upstream layers often hold quadratic
// coefficients as gonum matrices; these adapters ingest any mat.Matrix
// the same way the dense-slice path does, and export the canonical
// symmetric form for downstream numeric code.

package bqm

import "gonum.org/v1/gonum/mat"

// NewFromMatrix builds a model from a square gonum coefficient matrix.
// Semantics match NewFromDense: off-diagonal entries (i,j) and (j,i)
// are summed into one canonical interaction, the diagonal is routed per
// vartype.
//
// Errors: ErrNonSquare.
// Complexity: O(n²)
func NewFromMatrix(m mat.Matrix, vartype Vartype) (*BinaryQuadraticModel, error) {
	b := New(vartype)
	if err := b.AddQuadraticMatrix(m); err != nil {
		return nil, err
	}

	return b, nil
}

// AddQuadraticMatrix adds quadratic biases from a square gonum
// coefficient matrix, growing the model to at least its order. The
// folding and diagonal routing are identical to AddQuadraticDense, and
// rows are normalized with SortAndSum when the model already held
// interactions.
//
// Errors: ErrNonSquare.
// Complexity: O(n²)
func (b *BinaryQuadraticModel) AddQuadraticMatrix(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return ErrNonSquare
	}
	if r == 0 {
		return nil
	}
	b.ensure(r - 1)

	sortNeeded := !b.IsLinear()

	for u := 0; u < r; u++ {
		for v := u + 1; v < r; v++ {
			qbias := m.At(u, v) + m.At(v, u)
			if qbias != 0 {
				b.adj[u].Append(v, qbias)
				b.adj[v].Append(u, qbias)
			}
		}
	}

	if sortNeeded {
		for u := 0; u < r; u++ {
			b.adj[u].SortAndSum()
		}
	}

	for v := 0; v < r; v++ {
		b.addSelfLoop(v, m.At(v, v))
	}

	return nil
}

// SymDense exports the quadratic biases as a gonum symmetric matrix:
// entry (u,v) holds Quadratic(u,v) and the diagonal is zero, since
// self-interactions are never stored (they are routed to the linear
// biases or the offset on ingestion). Returns nil when the model has no
// variables, as gonum forbids zero-sized matrices.
// Complexity: O(n²) allocation, O(m) fill
func (b *BinaryQuadraticModel) SymDense() *mat.SymDense {
	n := b.NumVariables()
	if n == 0 {
		return nil
	}

	s := mat.NewSymDense(n, nil)
	for u := range b.adj {
		row := &b.adj[u]
		for i := 0; i < len(row.neighbors); i++ {
			if v := row.neighbors[i]; v > u {
				s.SetSym(u, v, row.biases[i])
			}
		}
	}

	return s
}

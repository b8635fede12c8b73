package bqm

import (
	"fmt"
	"strings"
)

// BinaryQuadraticModel is a quadratic polynomial over binary or spin
// variables: the shared QuadraticModelBase representation plus the
// single model-wide Vartype, and the domain-aware mutation that depends
// on it.
//
// Mutators auto-grow the model: writing to a variable index at or past
// the current size first appends zero-bias variables with empty rows up
// to that index. Accessors never grow and panic on out-of-range indices
// (slice semantics).
type BinaryQuadraticModel struct {
	QuadraticModelBase

	vartype Vartype
}

// New returns an empty model of the given vartype.
// Complexity: O(1)
func New(vartype Vartype) *BinaryQuadraticModel {
	return &BinaryQuadraticModel{vartype: vartype}
}

// NewSized returns a model with n variables of the given vartype, all
// with zero bias and empty rows.
//
// Errors: ErrInvalidSize when n < 0.
// Complexity: O(n)
func NewSized(n int, vartype Vartype) (*BinaryQuadraticModel, error) {
	b := New(vartype)
	if err := b.Resize(n); err != nil {
		return nil, err
	}

	return b, nil
}

// NewFromDense builds a model from a row-major dense square matrix of
// length n². Off-diagonal entries (i,j) and (j,i) are summed into one
// canonical interaction; diagonal entries are routed per vartype (see
// AddQuadratic).
//
// Errors: ErrInvalidSize, ErrDimensionMismatch.
// Complexity: O(n²)
func NewFromDense(dense []float64, n int, vartype Vartype) (*BinaryQuadraticModel, error) {
	b, err := NewSized(n, vartype)
	if err != nil {
		return nil, err
	}
	if err = b.AddQuadraticDense(dense, n); err != nil {
		return nil, err
	}

	return b, nil
}

// NewFromCOO builds a model from coordinate-list (row, column, bias)
// triples. See AddQuadraticCOO for the ingestion contract.
//
// Errors: ErrLengthMismatch, ErrNegativeIndex.
// Complexity: O(L + Σ d log d)
func NewFromCOO(rows, cols []int, biases []float64, vartype Vartype) (*BinaryQuadraticModel, error) {
	b := New(vartype)
	if err := b.AddQuadraticCOO(rows, cols, biases); err != nil {
		return nil, err
	}

	return b, nil
}

// Vartype returns the model-wide domain tag.
// Complexity: O(1)
func (b *BinaryQuadraticModel) Vartype() Vartype { return b.vartype }

// VartypeOf returns the domain tag of variable v. The model has a
// single global vartype, so this always returns the same value as
// Vartype(); the per-variable form exists for interface symmetry with
// heterogeneous-domain models. Panics when v is out of range.
// Complexity: O(1)
func (b *BinaryQuadraticModel) VartypeOf(v int) Vartype {
	if v < 0 || v >= b.NumVariables() {
		panic(fmt.Sprintf("bqm: variable %d out of range [0,%d)", v, b.NumVariables()))
	}

	return b.vartype
}

// AddLinear adds bias to the linear bias of variable v, growing the
// model when v is past the current size.
// Complexity: O(1) amortized
func (b *BinaryQuadraticModel) AddLinear(v int, bias float64) {
	b.ensure(v)
	b.linear[v] += bias
}

// AddQuadratic adds bias to interaction {u,v} in both rows, growing the
// model as needed. A self-loop (u == v) is routed per vartype: for Spin
// the term is a constant (x·x == 1) and goes to the offset; for Binary
// it is linear (x·x == x) and goes to linear(u). A vartype without
// arithmetic support reaching this routing panics — it is a broken
// internal invariant, not a recoverable state.
// Complexity: O(d)
func (b *BinaryQuadraticModel) AddQuadratic(u, v int, bias float64) {
	b.ensure(max(u, v))
	if u == v {
		b.addSelfLoop(u, bias)
		return
	}
	*b.adj[u].Upsert(v) += bias
	*b.adj[v].Upsert(u) += bias
}

// SetQuadratic overwrites the bias of interaction {u,v} in both rows,
// growing the model as needed.
//
// Errors: ErrSelfLoop when u == v — unlike AddQuadratic there is no
// well-defined overwrite semantics relative to an existing linear bias.
// Complexity: O(d)
func (b *BinaryQuadraticModel) SetQuadratic(u, v int, bias float64) error {
	if u == v {
		return ErrSelfLoop
	}
	b.ensure(max(u, v))
	*b.adj[u].Upsert(v) = bias
	*b.adj[v].Upsert(u) = bias

	return nil
}

// AddQuadraticDense adds quadratic biases from a row-major dense square
// matrix of length n², growing the model to at least n variables.
// Off-diagonal entries (u,v) and (v,u) are summed into one canonical
// interaction (zero sums are skipped); the diagonal is handled last,
// routed per vartype like AddQuadratic self-loops.
//
// When the model already holds interactions the freshly appended
// entries land unsorted, and every row in [0,n) is normalized with
// SortAndSum before the diagonal pass.
//
// Errors: ErrInvalidSize, ErrDimensionMismatch.
// Complexity: O(n²)
func (b *BinaryQuadraticModel) AddQuadraticDense(dense []float64, n int) error {
	if n < 0 {
		return ErrInvalidSize
	}
	if len(dense) != n*n {
		return ErrDimensionMismatch
	}
	if n == 0 {
		return nil
	}
	b.ensure(n - 1)

	sortNeeded := !b.IsLinear()

	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			qbias := dense[u*n+v] + dense[v*n+u]
			if qbias != 0 {
				b.adj[u].Append(v, qbias)
				b.adj[v].Append(u, qbias)
			}
		}
	}

	if sortNeeded {
		for u := 0; u < n; u++ {
			b.adj[u].SortAndSum()
		}
	}

	// Diagonal last, routed by vartype.
	for v := 0; v < n; v++ {
		b.addSelfLoop(v, dense[v*(n+1)])
	}

	return nil
}

// AddQuadraticCOO adds quadratic biases from coordinate-list triples
// (rows[i], cols[i], biases[i]). The model grows to cover the maximum
// referenced index. A first pass counts the off-diagonal entries per
// variable to pre-reserve row capacity; a second pass appends all
// off-diagonal entries unsorted on both endpoints, routing self-loops
// immediately per vartype; a final pass runs SortAndSum on every
// touched row, merging duplicate coordinates by summing their biases.
//
// Errors: ErrLengthMismatch when the three slices differ in length,
// ErrNegativeIndex when any coordinate is negative. Nothing is mutated
// on failure.
// Complexity: O(L + Σ d log d) over touched rows
func (b *BinaryQuadraticModel) AddQuadraticCOO(rows, cols []int, biases []float64) error {
	if len(rows) != len(cols) || len(rows) != len(biases) {
		return ErrLengthMismatch
	}
	if len(rows) == 0 {
		return nil
	}

	// Validate coordinates and find the largest referenced index before
	// any mutation.
	maxIdx := 0
	for i := range rows {
		if rows[i] < 0 || cols[i] < 0 {
			return ErrNegativeIndex
		}
		if rows[i] > maxIdx {
			maxIdx = rows[i]
		}
		if cols[i] > maxIdx {
			maxIdx = cols[i]
		}
	}
	b.ensure(maxIdx)

	// Count off-diagonal insertions per variable and reserve capacity, so
	// the append pass never reallocates row storage.
	counts := make([]int, b.NumVariables())
	for i := range rows {
		if rows[i] != cols[i] {
			counts[rows[i]]++
			counts[cols[i]]++
		}
	}
	for v, c := range counts {
		if c > 0 {
			b.adj[v].Reserve(b.adj[v].Size() + c)
		}
	}

	// Append without worrying about order; self-loops are routed by
	// vartype right away.
	for i := range rows {
		u, v := rows[i], cols[i]
		if u == v {
			b.addSelfLoop(u, biases[i])
		} else {
			b.adj[u].Append(v, biases[i])
			b.adj[v].Append(u, biases[i])
		}
	}

	// Restore the sort invariant on every touched row.
	for v, c := range counts {
		if c > 0 {
			b.adj[v].SortAndSum()
		}
	}

	return nil
}

// AddBQM adds the variables, interactions, offset and biases of other
// into b, growing b when other has more variables. When the vartypes
// differ, a deep copy of other is converted to b's vartype first; the
// caller's other is never mutated.
//
// Errors: ErrVartypeUnsupported when the required conversion has no
// arithmetic support.
// Complexity: O(n + m log m)
func (b *BinaryQuadraticModel) AddBQM(other *BinaryQuadraticModel) error {
	if other.vartype != b.vartype {
		cp := other.Copy()
		if err := cp.ChangeVartype(b.vartype); err != nil {
			return err
		}

		return b.AddBQM(cp)
	}

	b.offset += other.offset

	if other.NumVariables() > b.NumVariables() {
		if err := b.Resize(other.NumVariables()); err != nil {
			return err
		}
	}
	for v := 0; v < other.NumVariables(); v++ {
		b.linear[v] += other.linear[v]
	}

	for v := 0; v < other.NumVariables(); v++ {
		src := &other.adj[v]
		if src.Size() == 0 {
			continue
		}

		dst := &b.adj[v]
		// Capture the size first: when other aliases b, dst and src are
		// the same row and appending would move the goalposts.
		size := src.Size()
		dst.Reserve(dst.Size() + size)
		for i := 0; i < size; i++ {
			dst.Append(src.neighbors[i], src.biases[i])
		}
		dst.SortAndSum()
	}

	return nil
}

// AddBQMMapped is AddBQM with relabeling: every variable index of other
// is translated through mapping before being applied to b, so variable
// i of other lands on variable mapping[i] of b. mapping must be
// injective and exactly other.NumVariables() long; b grows to
// max(mapping)+1 when needed.
//
// Errors: ErrMappingLength, ErrNegativeIndex, ErrVartypeUnsupported.
// Complexity: O(n + m log m)
func (b *BinaryQuadraticModel) AddBQMMapped(other *BinaryQuadraticModel, mapping []int) error {
	if other.vartype != b.vartype {
		cp := other.Copy()
		if err := cp.ChangeVartype(b.vartype); err != nil {
			return err
		}

		return b.AddBQMMapped(cp, mapping)
	}

	if len(mapping) != other.NumVariables() {
		return ErrMappingLength
	}

	maxLabel := -1
	for _, label := range mapping {
		if label < 0 {
			return ErrNegativeIndex
		}
		if label > maxLabel {
			maxLabel = label
		}
	}
	if maxLabel >= b.NumVariables() {
		if err := b.Resize(maxLabel + 1); err != nil {
			return err
		}
	}

	b.offset += other.offset

	for oldU := 0; oldU < other.NumVariables(); oldU++ {
		newU := mapping[oldU]
		b.linear[newU] += other.linear[oldU]

		src := &other.adj[oldU]
		dst := &b.adj[newU]
		size := src.Size()
		dst.Reserve(dst.Size() + size)
		for i := 0; i < size; i++ {
			dst.Append(mapping[src.neighbors[i]], src.biases[i])
		}
	}

	// Relabeling does not preserve key order, so every row that received
	// entries is normalized afterwards.
	for oldU := 0; oldU < other.NumVariables(); oldU++ {
		if other.adj[oldU].Size() > 0 {
			b.adj[mapping[oldU]].SortAndSum()
		}
	}

	return nil
}

// ChangeVartype converts the model to the target domain in place using
// the identity x_spin = 2·x_binary - 1; a no-op when target already
// matches. For every variable the original linear bias is captured
// before mutation, then scaled and folded into the offset; for every
// stored half-edge (each interaction is visited once from each
// endpoint) the original bias is scaled and contributes to the owning
// variable's linear bias and to the offset. The per-visit multipliers
// are calibrated for exactly this doubled iteration:
//
//	target  linear×  offset+=×lin  quad×  linear+=×quad  offset+=×quad
//	Binary     2         -1          4         -2             0.5
//	Spin       0.5        0.5        0.25       0.25          0.125
//
// Energies are preserved exactly: for corresponding samples the
// converted model evaluates to the same values as the original.
//
// Errors: ErrVartypeUnsupported for any target other than Binary or
// Spin.
// Complexity: O(n+m)
func (b *BinaryQuadraticModel) ChangeVartype(target Vartype) error {
	if target == b.vartype {
		return nil
	}

	var linMul, linOff, quadMul, quadLin, quadOff float64
	switch target {
	case Binary:
		linMul, linOff, quadMul, quadLin, quadOff = 2, -1, 4, -2, 0.5
	case Spin:
		linMul, linOff, quadMul, quadLin, quadOff = 0.5, 0.5, 0.25, 0.25, 0.125
	default:
		return fmt.Errorf("change vartype to %s: %w", target, ErrVartypeUnsupported)
	}

	for u := range b.adj {
		lbias := b.linear[u]

		b.linear[u] *= linMul
		b.offset += linOff * lbias

		row := &b.adj[u]
		for i := range row.biases {
			qbias := row.biases[i]

			row.biases[i] *= quadMul
			b.linear[u] += quadLin * qbias
			b.offset += quadOff * qbias
		}
	}
	b.vartype = target

	return nil
}

// Resize changes the model to contain exactly n variables. Growing
// appends zero-bias variables with empty rows. Shrinking first erases,
// from every surviving row, the sorted suffix of neighbors >= n, then
// truncates the linear-bias and row vectors — so no surviving row keeps
// a reference to a removed index.
//
// Errors: ErrInvalidSize when n < 0.
// Complexity: O(n + m) when shrinking, O(n) when growing
func (b *BinaryQuadraticModel) Resize(n int) error {
	if n < 0 {
		return ErrInvalidSize
	}

	if n < b.NumVariables() {
		for v := 0; v < n; v++ {
			row := &b.adj[v]
			row.EraseRange(row.LowerBound(n), row.Size())
		}
		b.linear = b.linear[:n]
		b.adj = b.adj[:n]

		return nil
	}

	for len(b.linear) < n {
		b.linear = append(b.linear, 0)
		b.adj = append(b.adj, Neighborhood{})
	}

	return nil
}

// Copy returns an independent deep copy of the model.
// Complexity: O(n+m)
func (b *BinaryQuadraticModel) Copy() *BinaryQuadraticModel {
	cp := &BinaryQuadraticModel{vartype: b.vartype}
	cp.offset = b.offset
	cp.linear = append([]float64(nil), b.linear...)
	cp.adj = make([]Neighborhood, len(b.adj))
	for i := range b.adj {
		cp.adj[i] = b.adj[i].clone()
	}

	return cp
}

// String renders a diagnostic dump: vartype, offset, non-zero linear
// biases in index order and each interaction once in canonical u > v
// order. Not for hot paths.
// Complexity: O(n+m)
func (b *BinaryQuadraticModel) String() string {
	var sb strings.Builder
	sb.WriteString("BinaryQuadraticModel\n")
	fmt.Fprintf(&sb, "  vartype: %s\n", b.vartype)
	fmt.Fprintf(&sb, "  offset: %g\n", b.offset)

	fmt.Fprintf(&sb, "  linear (%d variables):\n", b.NumVariables())
	for v, bias := range b.linear {
		if bias != 0 {
			fmt.Fprintf(&sb, "    %d %g\n", v, bias)
		}
	}

	fmt.Fprintf(&sb, "  quadratic (%d interactions):\n", b.NumInteractions())
	for u := range b.adj {
		row := &b.adj[u]
		for i := 0; i < len(row.neighbors) && row.neighbors[i] < u; i++ {
			fmt.Fprintf(&sb, "    %d %d %g\n", u, row.neighbors[i], row.biases[i])
		}
	}

	return sb.String()
}

// ensure grows the model to cover variable index v.
func (b *BinaryQuadraticModel) ensure(v int) {
	if v >= b.NumVariables() {
		// Growth cannot fail: v+1 > NumVariables() >= 0.
		_ = b.Resize(v + 1)
	}
}

// addSelfLoop routes a self-interaction term per vartype: constant for
// Spin (x·x == 1), linear for Binary (x·x == x). Any other vartype
// reaching this dispatch is a broken internal invariant and panics.
func (b *BinaryQuadraticModel) addSelfLoop(u int, bias float64) {
	switch b.vartype {
	case Binary:
		b.linear[u] += bias
	case Spin:
		b.offset += bias
	default:
		panic("bqm: vartype " + b.vartype.String() + " has no self-interaction rule")
	}
}

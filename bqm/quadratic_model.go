package bqm

// QuadraticModelBase holds the shared representation of a quadratic
// model: one linear bias per variable, one Neighborhood per variable
// and a scalar offset. It exposes the vartype-agnostic accessors and
// energy evaluation; domain-aware mutation lives on
// BinaryQuadraticModel, which embeds it.
//
// Index accessors follow slice semantics: an out-of-range variable
// index panics. The zero value is an empty model with no variables.
type QuadraticModelBase struct {
	linear []float64
	adj    []Neighborhood
	offset float64
}

// NumVariables returns the number of variables in the model.
// Complexity: O(1)
func (q *QuadraticModelBase) NumVariables() int { return len(q.linear) }

// Linear returns the linear bias of variable v.
// Complexity: O(1)
func (q *QuadraticModelBase) Linear(v int) float64 { return q.linear[v] }

// SetLinear overwrites the linear bias of variable v.
// Complexity: O(1)
func (q *QuadraticModelBase) SetLinear(v int, bias float64) { q.linear[v] = bias }

// Quadratic returns the bias of interaction {u,v}, or 0 when the pair
// has no stored interaction. Symmetric: Quadratic(u,v)==Quadratic(v,u).
// Never inserts.
// Complexity: O(log d)
func (q *QuadraticModelBase) Quadratic(u, v int) float64 {
	return q.adj[u].Get(v, 0)
}

// QuadraticAt returns the bias of interaction {u,v}, or
// ErrInteractionNotFound when the pair has no stored interaction.
// Complexity: O(log d)
func (q *QuadraticModelBase) QuadraticAt(u, v int) (float64, error) {
	return q.adj[u].At(v)
}

// Neighborhood returns variable u's row. The pointer borrows into the
// model: it stays valid until the model is resized, and the entries it
// yields reflect subsequent mutation. Iterating with Do yields pairs in
// ascending neighbor order.
// Complexity: O(1)
func (q *QuadraticModelBase) Neighborhood(u int) *Neighborhood {
	return &q.adj[u]
}

// NumInteractions returns the number of distinct interactions {u,v} in
// the model. Every interaction is stored twice, so this is half the sum
// of all row sizes.
// Complexity: O(n)
func (q *QuadraticModelBase) NumInteractions() int {
	count := 0
	for i := range q.adj {
		count += q.adj[i].Size()
	}

	return count / 2
}

// Degree returns the number of variables v interacts with (the size of
// its row).
// Complexity: O(1)
func (q *QuadraticModelBase) Degree(v int) int { return q.adj[v].Size() }

// IsLinear reports whether the model has no quadratic biases at all.
// Complexity: O(n)
func (q *QuadraticModelBase) IsLinear() bool {
	for i := range q.adj {
		if q.adj[i].Size() > 0 {
			return false
		}
	}

	return true
}

// Offset returns the constant term of the model.
// Complexity: O(1)
func (q *QuadraticModelBase) Offset() float64 { return q.offset }

// SetOffset overwrites the constant term.
// Complexity: O(1)
func (q *QuadraticModelBase) SetOffset(offset float64) { q.offset = offset }

// AddOffset adds delta to the constant term.
// Complexity: O(1)
func (q *QuadraticModelBase) AddOffset(delta float64) { q.offset += delta }

// RemoveInteraction deletes interaction {u,v} from both rows,
// reporting whether it was present. When absent nothing is mutated.
// Complexity: O(d)
func (q *QuadraticModelBase) RemoveInteraction(u, v int) bool {
	if q.adj[u].Erase(v) {
		// Symmetric storage: the mirror entry must exist too.
		return q.adj[v].Erase(u)
	}

	return false
}

// Energy evaluates the model at the given assignment:
//
//	offset + Σ_u linear(u)·x_u + Σ_{u<v} quadratic(u,v)·x_u·x_v
//
// sample must be exactly NumVariables() long, aligned with variable
// indices; a mismatched length panics. Each row is walked only over
// neighbors below its owner, so the doubly-stored interactions are
// counted once.
// Complexity: O(n+m)
func (q *QuadraticModelBase) Energy(sample []float64) float64 {
	if len(sample) != q.NumVariables() {
		panic("bqm: sample length does not match the number of variables")
	}

	en := q.offset
	for u := range q.adj {
		uVal := sample[u]
		en += uVal * q.linear[u]

		row := &q.adj[u]
		for i := 0; i < len(row.neighbors) && row.neighbors[i] < u; i++ {
			en += uVal * sample[row.neighbors[i]] * row.biases[i]
		}
	}

	return en
}

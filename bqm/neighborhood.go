package bqm

import "sort"

// Neighborhood is the sparse row of one variable: the (neighbor, bias)
// pairs for every interaction incident to it, with neighbor keys kept
// strictly ascending and unique.
//
// Internally a Neighborhood keeps two parallel slices, one of neighbor
// indices and one of biases, and offers map-like access on top of them.
// Rows are owned by their enclosing model and share its lifetime;
// pointers returned by Upsert and positions returned by LowerBound are
// invalidated by any subsequent mutating call on the same row.
//
// The zero value is an empty row, ready to use.
type Neighborhood struct {
	neighbors []int
	biases    []float64
}

// Size returns the number of entries in the row.
// Complexity: O(1)
func (n *Neighborhood) Size() int { return len(n.neighbors) }

// At returns the bias stored for neighbor v, or ErrInteractionNotFound
// if v is not in the row. Never mutates.
// Complexity: O(log d)
func (n *Neighborhood) At(v int) (float64, error) {
	i := sort.SearchInts(n.neighbors, v)
	if i < len(n.neighbors) && n.neighbors[i] == v {
		return n.biases[i], nil
	}

	return 0, ErrInteractionNotFound
}

// Get returns the bias stored for neighbor v, or def if v is not in the
// row. Never mutates, never inserts.
// Complexity: O(log d)
func (n *Neighborhood) Get(v int, def float64) float64 {
	i := sort.SearchInts(n.neighbors, v)
	if i < len(n.neighbors) && n.neighbors[i] == v {
		return n.biases[i]
	}

	return def
}

// Upsert returns a pointer to the bias of neighbor v, inserting a
// zero-bias entry at the correct sorted position when v is absent.
// The pointer stays valid only until the next mutating call on this
// row.
// Complexity: O(d) due to ordered insertion
func (n *Neighborhood) Upsert(v int) *float64 {
	i := sort.SearchInts(n.neighbors, v)
	if i == len(n.neighbors) || n.neighbors[i] != v {
		n.neighbors = append(n.neighbors, 0)
		copy(n.neighbors[i+1:], n.neighbors[i:])
		n.neighbors[i] = v

		n.biases = append(n.biases, 0)
		copy(n.biases[i+1:], n.biases[i:])
		n.biases[i] = 0
	}

	return &n.biases[i]
}

// Append adds (v, bias) unconditionally at the end of the row without
// re-sorting. Caller contract: only valid when v is strictly greater
// than every existing key — otherwise the sort invariant is broken
// until SortAndSum is called.
// Complexity: O(1) amortized
func (n *Neighborhood) Append(v int, bias float64) {
	n.neighbors = append(n.neighbors, v)
	n.biases = append(n.biases, bias)
}

// Erase removes the entry for neighbor v if present, reporting whether
// anything was removed.
// Complexity: O(d)
func (n *Neighborhood) Erase(v int) bool {
	i := sort.SearchInts(n.neighbors, v)
	if i == len(n.neighbors) || n.neighbors[i] != v {
		return false
	}
	n.neighbors = append(n.neighbors[:i], n.neighbors[i+1:]...)
	n.biases = append(n.biases[:i], n.biases[i+1:]...)

	return true
}

// EraseRange removes the entries at positions [i, j).
// Complexity: O(d)
func (n *Neighborhood) EraseRange(i, j int) {
	n.neighbors = append(n.neighbors[:i], n.neighbors[j:]...)
	n.biases = append(n.biases[:i], n.biases[j:]...)
}

// LowerBound returns the position of the first entry whose key is >= v,
// or Size() when every key is smaller. Positions index into the row in
// ascending key order and are invalidated by mutation.
// Complexity: O(log d)
func (n *Neighborhood) LowerBound(v int) int {
	return sort.SearchInts(n.neighbors, v)
}

// Entry returns the (neighbor, bias) pair at position i.
// Complexity: O(1)
func (n *Neighborhood) Entry(i int) (int, float64) {
	return n.neighbors[i], n.biases[i]
}

// Reserve grows the row's capacity to hold at least c entries.
// Complexity: O(d) when reallocation occurs
func (n *Neighborhood) Reserve(c int) {
	if cap(n.neighbors) < c {
		neighbors := make([]int, len(n.neighbors), c)
		copy(neighbors, n.neighbors)
		n.neighbors = neighbors

		biases := make([]float64, len(n.biases), c)
		copy(biases, n.biases)
		n.biases = biases
	}
}

// Do visits every (neighbor, bias) pair in ascending key order and
// calls f on it; it stops early when f returns false. Read-only with
// respect to the row; f must not mutate it.
// Complexity: O(d)
func (n *Neighborhood) Do(f func(v int, bias float64) bool) {
	for i := range n.neighbors {
		if !f(n.neighbors[i], n.biases[i]) {
			return
		}
	}
}

// SortAndSum restores the sort invariant after a sequence of unordered
// Append calls: it sorts the row (when needed) and then merges
// consecutive duplicate keys by summing their biases, shrinking the
// row.
// Complexity: O(d log d)
func (n *Neighborhood) SortAndSum() {
	if !sort.IntsAreSorted(n.neighbors) {
		sort.Sort((*byNeighbor)(n))
	}

	// Walk quickly until the first duplicate; most rows have none.
	i, j := 0, 1
	for j < len(n.neighbors) && n.neighbors[i] != n.neighbors[j] {
		i++
		j++
	}
	if j >= len(n.neighbors) {
		return
	}

	// De-duplicate in place, summing the biases of equal keys.
	for ; j < len(n.neighbors); j++ {
		if n.neighbors[i] == n.neighbors[j] {
			n.biases[i] += n.biases[j]
		} else {
			i++
			n.neighbors[i] = n.neighbors[j]
			n.biases[i] = n.biases[j]
		}
	}
	n.neighbors = n.neighbors[:i+1]
	n.biases = n.biases[:i+1]
}

// clone returns an independent deep copy of the row.
func (n *Neighborhood) clone() Neighborhood {
	return Neighborhood{
		neighbors: append([]int(nil), n.neighbors...),
		biases:    append([]float64(nil), n.biases...),
	}
}

// byNeighbor co-sorts the two parallel slices by neighbor key.
type byNeighbor Neighborhood

func (z *byNeighbor) Len() int           { return len(z.neighbors) }
func (z *byNeighbor) Less(i, j int) bool { return z.neighbors[i] < z.neighbors[j] }
func (z *byNeighbor) Swap(i, j int) {
	z.neighbors[i], z.neighbors[j] = z.neighbors[j], z.neighbors[i]
	z.biases[i], z.biases[j] = z.biases[j], z.biases[i]
}

// Package bqm implements the binary quadratic model core: a quadratic
// polynomial objective
//
//	E(x) = offset + Σ_v linear(v)·x_v + Σ_{u<v} quadratic(u,v)·x_u·x_v
//
// over variables drawn from a single domain (Vartype): Binary {0,1} or
// Spin {-1,+1}.
//
// Variables are dense integer indices in [0, NumVariables()); there is
// no separate variable object. Interactions are stored redundantly in a
// vector-of-rows adjacency: each variable owns a Neighborhood, a sorted
// unique-keyed sparse row of (neighbor, bias) pairs, and every
// interaction {u,v} appears in both u's and v's row with the same bias.
// All relationships are plain integer indices — never pointers — so
// models have no internal reference cycles and a single owner.
//
// Structural invariants, restored by every public operation:
//
//  1. Each Neighborhood's keys are strictly ascending and unique.
//  2. Symmetric storage: quadratic(u,v) == quadratic(v,u), always.
//  3. NumVariables() == number of linear biases == number of rows.
//  4. Indices are contiguous; variables are created by Resize or by
//     any mutator that writes past the current size (auto-grow), and
//     destroyed only by shrinking Resize, which first excises every
//     surviving reference to the removed indices.
//  5. Exactly one Vartype applies to the whole model.
//
// Complexity quicksheet:
//
//	Quadratic/QuadraticAt/RemoveInteraction: O(log d)
//	AddQuadratic/SetQuadratic:               O(d) (ordered insert)
//	Energy:                                  O(n+m)
//	AddQuadraticDense/AddQuadraticMatrix:    O(n²)
//	AddQuadraticCOO:                         O(L + Σ d log d) over touched rows
//	ChangeVartype:                           O(n+m), exact multiplier tables
//
// Error discipline follows the package-wide convention: sentinel errors
// (errors.go) matched via errors.Is for user-triggered conditions;
// panics are reserved for programmer errors — out-of-range accessor
// indices (slice semantics), sample-length mismatch in Energy, and an
// unknown Vartype reaching arithmetic dispatch (a broken internal
// invariant, not a recoverable state).
//
// Concurrency: none. All operations are synchronous, in-place and
// single-threaded; callers supply their own locking if a model is
// shared. Pointers obtained from Neighborhood.Upsert and positions from
// LowerBound borrow into the row and are invalidated by the next
// mutating call on that row.
package bqm

// Package bqm: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// bqm package. Public operations return these sentinels and tests check
// them via errors.Is. User-triggered conditions never panic; panics are
// reserved for programmer errors (out-of-range indices, broken internal
// invariants such as an unknown Vartype reaching arithmetic dispatch).

package bqm

import "errors"

// Every message is prefixed with "bqm: ..." for consistency and easy
// grepping. Wrap with fmt.Errorf("ctx: %w", ErrX) when callsite context
// is essential; errors.Is still matches.

var (
	// ErrInteractionNotFound is returned by strict lookups (Neighborhood.At,
	// QuadraticAt) when the requested pair has no stored interaction.
	ErrInteractionNotFound = errors.New("bqm: given variables have no interaction")

	// ErrLengthMismatch indicates COO ingestion slices of unequal length.
	ErrLengthMismatch = errors.New("bqm: row, column and bias slices must have the same length")

	// ErrMappingLength indicates a relabeling slice whose length differs
	// from the source model's variable count.
	ErrMappingLength = errors.New("bqm: model and mapping must have the same length")

	// ErrNegativeIndex indicates a negative variable index in bulk-ingestion
	// data or in a relabeling slice. Variable indices are dense and
	// non-negative.
	ErrNegativeIndex = errors.New("bqm: variable index is negative")

	// ErrSelfLoop is returned by SetQuadratic when both endpoints are the
	// same variable: overwriting a self-interaction has no well-defined
	// meaning relative to the existing linear bias.
	ErrSelfLoop = errors.New("bqm: cannot set the quadratic bias of a variable with itself")

	// ErrVartypeUnsupported marks a conversion or merge that requires
	// vartype arithmetic for a Vartype that has none (Integer is declared
	// but carries no arithmetic support).
	ErrVartypeUnsupported = errors.New("bqm: vartype has no arithmetic support")

	// ErrDimensionMismatch indicates a dense coefficient slice whose length
	// is not num_variables².
	ErrDimensionMismatch = errors.New("bqm: dense matrix length must be num_variables squared")

	// ErrNonSquare signals a non-square coefficient matrix.
	ErrNonSquare = errors.New("bqm: coefficient matrix is not square")

	// ErrInvalidSize indicates a negative variable count passed to a
	// constructor, Resize or dense ingestion.
	ErrInvalidSize = errors.New("bqm: size must be non-negative")
)

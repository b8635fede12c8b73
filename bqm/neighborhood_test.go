package bqm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kevinchern/dimod/bqm"
)

// collect flattens a row into parallel slices for order assertions.
func collect(n *bqm.Neighborhood) ([]int, []float64) {
	var keys []int
	var biases []float64
	n.Do(func(v int, bias float64) bool {
		keys = append(keys, v)
		biases = append(biases, bias)
		return true
	})

	return keys, biases
}

type NeighborhoodSuite struct {
	suite.Suite
	n *bqm.Neighborhood
}

func (s *NeighborhoodSuite) SetupTest() {
	// Three entries appended in ascending key order, per the Append
	// caller contract; individual tests may break and restore the sort
	// invariant explicitly.
	s.n = &bqm.Neighborhood{}
	s.n.Append(0, .5)
	s.n.Append(1, 1.5)
	s.n.Append(3, -3)
}

func (s *NeighborhoodSuite) TestAt() {
	require := require.New(s.T())
	require.Equal(3, s.n.Size())

	for _, tc := range []struct {
		key  int
		bias float64
	}{{0, .5}, {1, 1.5}, {3, -3}} {
		got, err := s.n.At(tc.key)
		require.NoError(err)
		require.Equal(tc.bias, got)
	}

	// Strict lookup on an absent key fails and never inserts.
	_, err := s.n.At(2)
	require.ErrorIs(err, bqm.ErrInteractionNotFound)
	require.Equal(3, s.n.Size(), "At must not insert")
}

func (s *NeighborhoodSuite) TestGet() {
	require := require.New(s.T())
	require.Equal(.5, s.n.Get(0, 0))
	require.Equal(1.5, s.n.Get(1, 2), "real value wins over the default")
	require.Equal(0.0, s.n.Get(2, 0))
	require.Equal(1.5, s.n.Get(2, 1.5), "default used for an absent key")
	require.Equal(3, s.n.Size(), "Get must not insert")
}

func (s *NeighborhoodSuite) TestUpsertInsertsAtSortedPosition() {
	require := require.New(s.T())

	// Absent key 2 is created with a zero bias between 1 and 3.
	require.Equal(0.0, *s.n.Upsert(2))
	require.Equal(4, s.n.Size())

	keys, biases := collect(s.n)
	require.Equal([]int{0, 1, 2, 3}, keys)
	require.Equal([]float64{.5, 1.5, 0, -3}, biases)
}

func (s *NeighborhoodSuite) TestUpsertMutatesThroughPointer() {
	require := require.New(s.T())
	*s.n.Upsert(0) += 7
	*s.n.Upsert(2) -= 3

	require.Equal(7.5, s.n.Get(0, 0))
	require.Equal(-3.0, s.n.Get(2, 0))
}

func (s *NeighborhoodSuite) TestErase() {
	require := require.New(s.T())
	require.True(s.n.Erase(1))
	require.False(s.n.Erase(1), "second erase of the same key removes nothing")
	require.False(s.n.Erase(2), "absent key removes nothing")
	require.Equal(2, s.n.Size())

	keys, _ := collect(s.n)
	require.Equal([]int{0, 3}, keys)
}

func (s *NeighborhoodSuite) TestEraseRangeWithLowerBound() {
	require := require.New(s.T())

	// Drop the suffix of keys >= 1, the shrinking-resize primitive.
	s.n.EraseRange(s.n.LowerBound(1), s.n.Size())
	require.Equal(1, s.n.Size())

	keys, biases := collect(s.n)
	require.Equal([]int{0}, keys)
	require.Equal([]float64{.5}, biases)
}

func (s *NeighborhoodSuite) TestLowerBound() {
	require := require.New(s.T())
	require.Equal(0, s.n.LowerBound(0))
	require.Equal(1, s.n.LowerBound(1))
	require.Equal(2, s.n.LowerBound(2), "absent key maps to its insertion point")
	require.Equal(2, s.n.LowerBound(3))
	require.Equal(3, s.n.LowerBound(4), "past-the-end when every key is smaller")
}

func (s *NeighborhoodSuite) TestDoOrderAndEarlyStop() {
	require := require.New(s.T())

	keys, biases := collect(s.n)
	require.Equal([]int{0, 1, 3}, keys)
	require.Equal([]float64{.5, 1.5, -3}, biases)

	visits := 0
	s.n.Do(func(int, float64) bool {
		visits++
		return false
	})
	require.Equal(1, visits, "Do stops when the visitor returns false")
}

func (s *NeighborhoodSuite) TestEntry() {
	require := require.New(s.T())
	v, bias := s.n.Entry(1)
	require.Equal(1, v)
	require.Equal(1.5, bias)
}

func TestNeighborhoodSuite(t *testing.T) {
	suite.Run(t, new(NeighborhoodSuite))
}

func TestNeighborhoodSortAndSum(t *testing.T) {
	t.Run("unsorted appends with duplicates", func(t *testing.T) {
		n := &bqm.Neighborhood{}
		keys := []int{0, 2, 0, 1}
		biases := []float64{.5, -2, 2, -3}
		for i := range keys {
			n.Append(keys[i], biases[i])
		}
		n.SortAndSum()

		gotKeys, gotBiases := collect(n)
		require.Equal(t, []int{0, 1, 2}, gotKeys)
		require.Equal(t, []float64{2.5, -3, -2}, gotBiases)
	})

	t.Run("already sorted with adjacent duplicates", func(t *testing.T) {
		n := &bqm.Neighborhood{}
		n.Append(1, 1)
		n.Append(1, 2)
		n.Append(4, -1)
		n.Append(4, -1)
		n.Append(5, 3)
		n.SortAndSum()

		keys, biases := collect(n)
		require.Equal(t, []int{1, 4, 5}, keys)
		require.Equal(t, []float64{3, -2, 3}, biases)
	})

	t.Run("no duplicates is a no-op", func(t *testing.T) {
		n := &bqm.Neighborhood{}
		n.Append(2, 1)
		n.Append(0, -1)
		n.SortAndSum()

		keys, biases := collect(n)
		require.Equal(t, []int{0, 2}, keys)
		require.Equal(t, []float64{-1, 1}, biases)
	})

	t.Run("empty row", func(t *testing.T) {
		n := &bqm.Neighborhood{}
		n.SortAndSum()
		require.Equal(t, 0, n.Size())
	})
}

func TestNeighborhoodReserve(t *testing.T) {
	n := &bqm.Neighborhood{}
	n.Append(0, 1)
	n.Reserve(16)

	// Content survives the reallocation.
	require.Equal(t, 1, n.Size())
	require.Equal(t, 1.0, n.Get(0, 0))
}

func TestNeighborhoodZeroValue(t *testing.T) {
	var n bqm.Neighborhood
	require.Equal(t, 0, n.Size())
	_, err := n.At(0)
	require.True(t, errors.Is(err, bqm.ErrInteractionNotFound))
	require.Equal(t, 7.0, n.Get(3, 7))
}

package bitmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavelang/wavelang/bitmatrix"
)

func TestPredecessorResolver_TransitiveClosure(t *testing.T) {
	// chain: 0 -> 1 -> 2 -> 3
	r := bitmatrix.NewPredecessorResolver(4)
	require.NoError(t, r.AddEdge(0, 1))
	require.NoError(t, r.AddEdge(1, 2))
	require.NoError(t, r.AddEdge(2, 3))
	r.Resolve()

	require.True(t, r.Precedes(0, 3))
	require.True(t, r.Precedes(0, 1))
	require.True(t, r.Precedes(1, 3))
	require.False(t, r.Precedes(3, 0))
	require.False(t, r.Concurrent(0, 3))
}

func TestPredecessorResolver_DiamondGraph(t *testing.T) {
	// spec §8 diamond seed: a->b, a->c, b->d, c->d
	const a, b, c, d = 0, 1, 2, 3
	r := bitmatrix.NewPredecessorResolver(4)
	require.NoError(t, r.AddEdge(a, b))
	require.NoError(t, r.AddEdge(a, c))
	require.NoError(t, r.AddEdge(b, d))
	require.NoError(t, r.AddEdge(c, d))
	r.Resolve()

	require.True(t, r.Precedes(a, d))
	require.True(t, r.Concurrent(b, c))
	require.False(t, r.Precedes(b, c))
	require.False(t, r.Precedes(c, b))

	estimate := bitmatrix.EstimateMaxConcurrency(4, r.Concurrent)
	require.Equal(t, uint32(2), estimate)
}

func TestPredecessorResolver_UnrelatedNodesAreConcurrent(t *testing.T) {
	r := bitmatrix.NewPredecessorResolver(2)
	r.Resolve()
	require.True(t, r.Concurrent(0, 1))
	require.True(t, r.Concurrent(0, 0))
}

func TestPredecessorResolver_IndexOutOfRange(t *testing.T) {
	r := bitmatrix.NewPredecessorResolver(2)
	require.ErrorIs(t, r.AddEdge(0, 5), bitmatrix.ErrIndexOutOfRange)
}

func TestEstimateMaxConcurrency_AllConcurrent(t *testing.T) {
	always := func(a, b int) bool { return true }
	require.Equal(t, uint32(4), bitmatrix.EstimateMaxConcurrency(4, always))
}

func TestEstimateMaxConcurrency_NoneConcurrent(t *testing.T) {
	never := func(a, b int) bool { return a == b }
	require.Equal(t, uint32(1), bitmatrix.EstimateMaxConcurrency(4, never))
}

func TestEstimateMaxConcurrency_Empty(t *testing.T) {
	require.Equal(t, uint32(0), bitmatrix.EstimateMaxConcurrency(0, nil))
}

package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoruvkaCandidate_Less(t *testing.T) {
	tests := []struct {
		name string
		a, b boruvkaCandidate
		want bool
	}{
		{"lighter wins", boruvkaCandidate{0, 1, 1}, boruvkaCandidate{0, 1, 2}, true},
		{"heavier loses", boruvkaCandidate{0, 1, 2}, boruvkaCandidate{0, 1, 1}, false},
		{"tie: lower min endpoint", boruvkaCandidate{3, 1, 1}, boruvkaCandidate{2, 4, 1}, true},
		{"tie: direction ignored", boruvkaCandidate{1, 0, 1}, boruvkaCandidate{0, 1, 1}, false},
		{"tie: lower max endpoint", boruvkaCandidate{0, 2, 1}, boruvkaCandidate{3, 0, 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.less(tc.b))
		})
	}
}

func TestBoruvkaMST_PathGraph(t *testing.T) {
	// Points on a line at 0, 1, 3, 6, 10: the MST is the chain of neighbours.
	pos := []float64{0, 1, 3, 6, 10}
	n := len(pos)
	dist := ComputePairwiseDistances(pos, n, 1, EuclideanMetric{})

	edges, err := BoruvkaMST(dist, n)
	require.NoError(t, err)
	require.Len(t, edges, n-1)
	assert.InDelta(t, 10.0, totalMSTWeight(edges), 1e-10)

	for _, e := range edges {
		lo, hi := min(e[0], e[1]), max(e[0], e[1])
		assert.Equal(t, lo+1, hi, "edge %v must join neighbours", e)
	}
}

func TestBoruvkaMST_ReturnsMatrixWeights(t *testing.T) {
	dist := flatMatrix([][]float64{
		{0, 7, 2},
		{7, 0, 3},
		{2, 3, 0},
	})
	edges, err := BoruvkaMST(dist, 3)
	require.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, dist[int(e[0])*3+int(e[1])], e[2])
	}
	assert.InDelta(t, 5.0, totalMSTWeight(edges), 1e-10)
}

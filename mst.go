package disjointset

import (
	"math"
	"sort"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// edgeEndpoints decodes the endpoint indices of a [from, to, weight] edge.
// Range checking is left to the Forest that consumes them.
func edgeEndpoints(edge [3]float64) (int, int, error) {
	a, b := edge[0], edge[1]
	if !isIndex(a) || !isIndex(b) {
		return 0, 0, errors.Errorf("disjointset: edge endpoints must be whole numbers, got (%g, %g)", a, b)
	}
	return int(a), int(b), nil
}

func isIndex(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// sortedByWeight returns a copy of edges sorted by ascending weight.
// Equal weights keep their input order.
func sortedByWeight(edges [][3]float64) [][3]float64 {
	sorted := make([][3]float64, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})
	return sorted
}

// checkMatrix reports a dist that is not a flat n×n matrix.
func checkMatrix(dist []float64, n int) error {
	if n < 0 || len(dist) != n*n {
		return errors.Errorf("disjointset: dist length %d does not match n*n = %d (n=%d)", len(dist), n*n, n)
	}
	return nil
}

// MatrixEdges lists the edges {i, j, dist[i*n+j]} for every i < j of a
// symmetric n×n row-major matrix. +Inf and NaN entries mean "no edge".
// A dist whose length is not n*n fails with an error.
func MatrixEdges(dist []float64, n int) ([][3]float64, error) {
	if err := checkMatrix(dist, n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, nil
	}
	edges := make([][3]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist[i*n+j]
			if math.IsInf(d, 1) || math.IsNaN(d) {
				continue
			}
			edges = append(edges, [3]float64{float64(i), float64(j), d})
		}
	}
	return edges, nil
}

// KruskalMST computes a minimum spanning tree over n points from a list of
// weighted edges [from, to, weight]. Edges are considered in ascending weight
// order and kept when they join two different components.
//
// Returns at most n-1 edges. A disconnected input yields a spanning forest
// and a logged warning. An endpoint outside [0, n) fails with an error caused
// by ErrOutOfBounds.
func KruskalMST(edges [][3]float64, n int) ([][3]float64, error) {
	return kruskalMST(edges, n, log.L())
}

func kruskalMST(edges [][3]float64, n int, lg *zap.Logger) ([][3]float64, error) {
	f := New(n)
	tree := make([][3]float64, 0, max(n-1, 0))
	for _, edge := range sortedByWeight(edges) {
		a, b, err := edgeEndpoints(edge)
		if err != nil {
			return nil, err
		}
		_, merged, err := f.Merge(a, b)
		if err != nil {
			return nil, errors.Annotatef(err, "edge %v", edge)
		}
		if !merged {
			continue
		}
		tree = append(tree, edge)
		if f.Sets() == 1 {
			break
		}
	}

	if len(tree) < n-1 {
		warnSpanningForest(lg, AlgorithmKruskal, n, len(tree))
	}
	return tree, nil
}

// PrimMST computes a minimum spanning tree using Prim's algorithm on a dense
// distance matrix. dist is flat []float64, n×n row-major.
// Returns at most n-1 edges as [from, to, weight], where from is the tree
// node nearest to the newly added node to. +Inf entries mean "no edge"; a
// disconnected input yields a spanning forest and a logged warning. A dist
// whose length is not n*n fails with an error.
func PrimMST(dist []float64, n int) ([][3]float64, error) {
	return primMST(dist, n, log.L())
}

func primMST(dist []float64, n int, lg *zap.Logger) ([][3]float64, error) {
	if err := checkMatrix(dist, n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)
	nearest := make([]int, n)
	for j := range currentDistances {
		currentDistances[j] = math.Inf(1)
		nearest[j] = -1
	}

	edges := make([][3]float64, 0, n-1)
	for added := 0; added < n; added++ {
		// Find the nearest node not yet in the tree.
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && (minNode == -1 || currentDistances[j] < minDist) {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// An unreachable node starts a new tree of the forest.
		if nearest[minNode] >= 0 {
			edges = append(edges, [3]float64{
				float64(nearest[minNode]),
				float64(minNode),
				minDist,
			})
		}
		inTree[minNode] = true

		// Update distances for remaining non-tree nodes.
		for k := 0; k < n; k++ {
			if inTree[k] {
				continue
			}
			if d := dist[minNode*n+k]; d < currentDistances[k] {
				currentDistances[k] = d
				nearest[k] = minNode
			}
		}
	}

	if len(edges) < n-1 {
		warnSpanningForest(lg, AlgorithmPrim, n, len(edges))
	}
	return edges, nil
}

package disjointset

import "github.com/pingcap/errors"

// Label converts MST edges into a single-linkage dendrogram in scipy
// format. mstEdges is [][3]float64 where each edge is [from, to, weight].
// Returns [][4]float64 dendrogram rows: [left, right, distance, mergedSize].
// New cluster IDs start at n and increment, the same cluster-ID scheme as
// scipy's linkage output.
//
// Edges are processed in ascending weight order; an edge whose endpoints are
// already joined contributes no row. An endpoint outside [0, n) fails with an
// error caused by ErrOutOfBounds.
func Label(mstEdges [][3]float64, n int) ([][4]float64, error) {
	if len(mstEdges) == 0 {
		return nil, nil
	}

	n = max(n, 0)
	f := New(n)
	// clusterID maps each forest root to the dendrogram ID of its set.
	clusterID := make([]int, n)
	for i := range clusterID {
		clusterID[i] = i
	}
	nextLabel := n

	result := make([][4]float64, 0, len(mstEdges))
	for _, edge := range sortedByWeight(mstEdges) {
		a, b, err := edgeEndpoints(edge)
		if err != nil {
			return nil, err
		}
		rootA, err := f.FindRoot(a)
		if err != nil {
			return nil, errors.Annotatef(err, "edge %v", edge)
		}
		rootB, err := f.FindRoot(b)
		if err != nil {
			return nil, errors.Annotatef(err, "edge %v", edge)
		}
		if rootA == rootB {
			continue
		}

		newSize := f.rootSize(rootA) + f.rootSize(rootB)
		result = append(result, [4]float64{
			float64(clusterID[rootA]),
			float64(clusterID[rootB]),
			edge[2],
			float64(newSize),
		})

		root, _, err := f.Merge(rootA, rootB)
		if err != nil {
			return nil, errors.Trace(err)
		}
		clusterID[root] = nextLabel
		nextLabel++
	}

	return result, nil
}

// CutTree flattens a single-linkage hierarchy at a distance threshold: two
// points share a cluster when a chain of MST edges of weight <= threshold
// connects them. Clusters are numbered 0..count-1 in order of their lowest
// point.
func CutTree(mstEdges [][3]float64, n int, threshold float64) (labels []int, count int, err error) {
	f := New(n)
	for _, edge := range mstEdges {
		if !(edge[2] <= threshold) {
			continue
		}
		a, b, err := edgeEndpoints(edge)
		if err != nil {
			return nil, 0, err
		}
		if err := f.Union(a, b); err != nil {
			return nil, 0, errors.Annotatef(err, "edge %v", edge)
		}
	}
	return componentLabels(f)
}

// CutTreeK flattens a single-linkage hierarchy into k clusters by merging
// along the lightest MST edges until k components remain. k is clamped to
// [1, n]; a disconnected MST may leave more than k clusters.
func CutTreeK(mstEdges [][3]float64, n, k int) (labels []int, count int, err error) {
	f := New(n)
	k = max(min(k, n), 1)
	for _, edge := range sortedByWeight(mstEdges) {
		if f.Sets() <= k {
			break
		}
		a, b, err := edgeEndpoints(edge)
		if err != nil {
			return nil, 0, err
		}
		if err := f.Union(a, b); err != nil {
			return nil, 0, errors.Annotatef(err, "edge %v", edge)
		}
	}
	return componentLabels(f)
}

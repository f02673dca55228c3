// Package disjointset implements a disjoint-set (union-find) forest and the
// graph algorithms built on it: minimum spanning trees, connected components,
// and single-linkage clustering.
//
// A Forest partitions the element indices 0..Size()-1 into disjoint sets.
// Sets are merged with Union and identified by the root returned from
// FindRoot; path compression and union by size keep both near constant time
// amortized. Indices outside [0, Size()) are reported as errors caused by
// ErrOutOfBounds, never as panics:
//
//	f := disjointset.New(10)
//	if err := f.Union(0, 9); err != nil {
//		// handle err
//	}
//	root, err := f.FindRoot(9) // root == 0
//	f.Grow(5)                  // elements 10..14 are new singletons
//
// A Forest is not safe for concurrent use; serialize access externally.
//
// # Graph algorithms
//
// KruskalMST and BoruvkaMST build spanning trees with a Forest, PrimMST scans
// a dense matrix directly, and ConnectedComponents labels the components of
// an edge list. Label turns a spanning tree into a scipy-format
// single-linkage dendrogram, and CutTree / CutTreeK flatten it.
//
// # Clustering
//
// Cluster and ClusterPrecomputed run the whole single-linkage pipeline:
//
//	cfg := disjointset.DefaultConfig()
//	cfg.Threshold = 1.5
//	result, err := disjointset.Cluster(data, cfg)
//	// result.Labels[i] is the cluster ID for point i (-1 = noise)
package disjointset

package disjointset

import (
	"math"
	"runtime"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Config controls single-linkage clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the distance function used to measure point similarity.
	// Built-in: EuclideanMetric, ManhattanMetric, CosineMetric, ChebyshevMetric,
	// MinkowskiMetric. Use DistanceFunc to wrap a custom function.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Algorithm selects the spanning tree construction strategy.
	// "kruskal" and "boruvka" build the tree with a Forest; "prim" scans the
	// dense matrix directly. All three yield the same clustering.
	// Default: "auto" (kruskal).
	Algorithm Algorithm

	// Threshold is the linkage distance at which the hierarchy is cut: points
	// joined by a chain of links no longer than Threshold share a cluster.
	// Ignored when NumClusters > 0. Must be >= 0. Default: 0.
	Threshold float64

	// NumClusters, when > 0, cuts the hierarchy into exactly this many
	// clusters instead of using Threshold (fewer if n is smaller, more if the
	// data is disconnected). Must be >= 0. Default: 0.
	NumClusters int

	// MinClusterSize relabels clusters with fewer members as noise (-1).
	// Must be >= 1. Default: 1 (no noise).
	MinClusterSize int

	// Workers controls the number of goroutines computing pairwise distances.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Logger receives warnings, e.g. for disconnected input.
	// Default: the process-wide logger from github.com/pingcap/log.
	Logger *zap.Logger
}

// Result contains the output of single-linkage clustering.
type Result struct {
	// Labels assigns each point to a cluster (0-indexed cluster ID) or -1 for
	// noise. Clusters are numbered in order of their lowest point.
	Labels []int

	// NumClusters is the number of non-noise clusters.
	NumClusters int

	// SpanningTree is the minimum spanning tree (or forest) of the distance
	// graph, as [from, to, weight] edges.
	SpanningTree [][3]float64

	// SingleLinkageTree is the full single-linkage dendrogram in scipy format:
	// each row is [left, right, distance, size]. Internal cluster IDs start at n.
	SingleLinkageTree [][4]float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric:         EuclideanMetric{},
		Algorithm:      AlgorithmAuto,
		MinClusterSize: 1,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Threshold < 0 || math.IsNaN(cfg.Threshold) {
		return errors.Errorf("disjointset: Threshold must be >= 0, got %f", cfg.Threshold)
	}
	if cfg.NumClusters < 0 {
		return errors.Errorf("disjointset: NumClusters must be >= 0, got %d", cfg.NumClusters)
	}
	if cfg.MinClusterSize < 1 {
		return errors.Errorf("disjointset: MinClusterSize must be >= 1, got %d", cfg.MinClusterSize)
	}
	if cfg.Workers < 1 {
		return errors.Errorf("disjointset: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	switch cfg.Algorithm {
	case AlgorithmAuto, AlgorithmKruskal, AlgorithmBoruvka, AlgorithmPrim:
		// valid
	default:
		return errors.Errorf("disjointset: invalid Algorithm %q", cfg.Algorithm)
	}
	if m, ok := cfg.Metric.(MinkowskiMetric); ok && m.P < 1 {
		return errors.Errorf("disjointset: MinkowskiMetric P must be >= 1, got %f", m.P)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.MinClusterSize == 0 {
		cfg.MinClusterSize = 1
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// Cluster performs single-linkage clustering on the given data.
// Each element is a point (float64 slice); all points must have the same
// dimensionality. Returns an error if the config or the data is invalid.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return &Result{Labels: []int{}}, nil
	}

	dims := len(data[0])
	flatData := make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, errors.Errorf("disjointset: point %d has %d dimensions, want %d", i, len(row), dims)
		}
		copy(flatData[i*dims:], row)
	}

	distMatrix := ComputePairwiseDistancesParallel(flatData, n, dims, cfg.Metric, cfg.Workers)
	return clusterFromDistMatrix(distMatrix, n, cfg)
}

// ClusterPrecomputed performs single-linkage clustering on a precomputed
// distance matrix. distMatrix is a flat []float64 of length n*n in row-major
// order, where distMatrix[i*n+j] is the distance between points i and j; +Inf
// marks a missing link. The Config.Metric field is ignored since distances
// are already computed.
func ClusterPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if n < 0 || len(distMatrix) != n*n {
		return nil, errors.Errorf("disjointset: distMatrix length %d does not match n*n = %d (n=%d)", len(distMatrix), n*n, n)
	}

	if n == 0 {
		return &Result{Labels: []int{}}, nil
	}

	return clusterFromDistMatrix(distMatrix, n, cfg)
}

// clusterFromDistMatrix runs the pipeline from a distance matrix onward
// (spanning tree → dendrogram → flat cut → noise filtering).
func clusterFromDistMatrix(distMatrix []float64, n int, cfg Config) (*Result, error) {
	mstEdges, err := spanningTree(distMatrix, n, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}

	dendrogram, err := Label(mstEdges, n)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var labels []int
	var count int
	if cfg.NumClusters > 0 {
		labels, count, err = CutTreeK(mstEdges, n, cfg.NumClusters)
	} else {
		labels, count, err = CutTree(mstEdges, n, cfg.Threshold)
	}
	if err != nil {
		return nil, errors.Trace(err)
	}

	labels, count = dropSmallClusters(labels, count, cfg.MinClusterSize)

	return &Result{
		Labels:            labels,
		NumClusters:       count,
		SpanningTree:      mstEdges,
		SingleLinkageTree: dendrogram,
	}, nil
}

// dropSmallClusters relabels members of clusters smaller than minSize as -1
// and renumbers the survivors densely, preserving their order.
func dropSmallClusters(labels []int, count, minSize int) ([]int, int) {
	if minSize <= 1 {
		return labels, count
	}

	sizes := ComponentSizes(labels, count)
	remap := make([]int, count)
	kept := 0
	for c, size := range sizes {
		if size >= minSize {
			remap[c] = kept
			kept++
		} else {
			remap[c] = -1
		}
	}

	for i, l := range labels {
		if l >= 0 {
			labels[i] = remap[l]
		}
	}
	return labels, kept
}

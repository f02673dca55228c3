package disjointset

import "github.com/pingcap/errors"

// Algorithm selects the spanning tree construction strategy.
type Algorithm string

const (
	AlgorithmAuto    Algorithm = "auto"
	AlgorithmKruskal Algorithm = "kruskal"
	AlgorithmBoruvka Algorithm = "boruvka"
	AlgorithmPrim    Algorithm = "prim"
)

// selectAlgorithm resolves AlgorithmAuto into a concrete algorithm choice.
func selectAlgorithm(algo Algorithm) Algorithm {
	if algo == AlgorithmAuto {
		return AlgorithmKruskal
	}
	return algo
}

// spanningTree builds a minimum spanning tree (or forest, for disconnected
// input) of the dense n×n matrix dist with cfg.Algorithm.
func spanningTree(dist []float64, n int, cfg Config) ([][3]float64, error) {
	lg := loggerOrDefault(cfg.Logger)
	switch selectAlgorithm(cfg.Algorithm) {
	case AlgorithmKruskal:
		edges, err := MatrixEdges(dist, n)
		if err != nil {
			return nil, err
		}
		return kruskalMST(edges, n, lg)
	case AlgorithmBoruvka:
		return boruvkaMST(dist, n, lg)
	case AlgorithmPrim:
		return primMST(dist, n, lg)
	default:
		return nil, errors.Errorf("disjointset: invalid Algorithm %q", cfg.Algorithm)
	}
}

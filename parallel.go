package disjointset

import "sync"

// ComputePairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. data is flat row-major with n rows and dims columns.
// numWorkers controls the degree of parallelism; if <= 1, it falls back to
// single-threaded ComputePairwiseDistances.
//
// The result is bitwise identical to ComputePairwiseDistances.
func ComputePairwiseDistancesParallel(data []float64, n, dims int, metric DistanceMetric, numWorkers int) []float64 {
	if numWorkers <= 1 || n <= 1 {
		return ComputePairwiseDistances(data, n, dims, metric)
	}
	numWorkers = min(numWorkers, n)

	result := make([]float64, n*n)

	// Row i costs n-i-1 distance evaluations, so rows are dealt out
	// round-robin instead of in contiguous blocks. Each worker writes only
	// cells (i, j) and (j, i) for its own rows i < j, so writes never overlap.
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += numWorkers {
				fillDistanceRow(result, data, i, n, dims, metric)
			}
		}(w)
	}

	wg.Wait()
	return result
}

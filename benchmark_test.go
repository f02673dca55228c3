package disjointset

import (
	"math/rand"
	"testing"
)

func generateBenchData(n, dims int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, dims)
		for j := range data[i] {
			data[i][j] = rng.Float64() * 100
		}
	}
	return data
}

func generateFlatData(n, dims int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	return data
}

// --- Forest ---

func benchForestUnionFind(b *testing.B, n int) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := New(n)
		for _, p := range pairs {
			if err := f.Union(p[0], p[1]); err != nil {
				b.Fatal(err)
			}
		}
		for e := 0; e < n; e++ {
			if _, err := f.FindRoot(e); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkForest_1000(b *testing.B)    { benchForestUnionFind(b, 1000) }
func BenchmarkForest_100000(b *testing.B)  { benchForestUnionFind(b, 100000) }
func BenchmarkForest_1000000(b *testing.B) { benchForestUnionFind(b, 1000000) }

func BenchmarkForest_Grow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := New(0)
		for k := 0; k < 1000; k++ {
			f.Grow(16)
		}
	}
}

// --- Pairwise Distances ---

func benchPairwiseDistances(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ComputePairwiseDistances(data, n, dims, metric)
	}
}

func BenchmarkPairwiseDistances_100(b *testing.B)  { benchPairwiseDistances(b, 100) }
func BenchmarkPairwiseDistances_500(b *testing.B)  { benchPairwiseDistances(b, 500) }
func BenchmarkPairwiseDistances_1000(b *testing.B) { benchPairwiseDistances(b, 1000) }

// --- Spanning Trees ---

func benchSpanningTree(b *testing.B, n int, algo Algorithm) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	distMatrix := ComputePairwiseDistances(data, n, dims, EuclideanMetric{})
	cfg := DefaultConfig()
	cfg.Algorithm = algo
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spanningTree(distMatrix, n, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKruskalMST_100(b *testing.B) { benchSpanningTree(b, 100, AlgorithmKruskal) }
func BenchmarkKruskalMST_500(b *testing.B) { benchSpanningTree(b, 500, AlgorithmKruskal) }
func BenchmarkBoruvkaMST_100(b *testing.B) { benchSpanningTree(b, 100, AlgorithmBoruvka) }
func BenchmarkBoruvkaMST_500(b *testing.B) { benchSpanningTree(b, 500, AlgorithmBoruvka) }
func BenchmarkPrimMST_100(b *testing.B)    { benchSpanningTree(b, 100, AlgorithmPrim) }
func BenchmarkPrimMST_500(b *testing.B)    { benchSpanningTree(b, 500, AlgorithmPrim) }

// --- Label ---

func benchLabel(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	distMatrix := ComputePairwiseDistances(data, n, dims, EuclideanMetric{})
	mstEdges, err := PrimMST(distMatrix, n)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Label(mstEdges, n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLabel_1000(b *testing.B) { benchLabel(b, 1000) }

// --- Full Pipeline ---

func benchFullPipeline(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateBenchData(n, dims)
	cfg := DefaultConfig()
	cfg.NumClusters = 5
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Cluster(data, cfg)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFullPipeline_100(b *testing.B)  { benchFullPipeline(b, 100) }
func BenchmarkFullPipeline_500(b *testing.B)  { benchFullPipeline(b, 500) }
func BenchmarkFullPipeline_1000(b *testing.B) { benchFullPipeline(b, 1000) }

package disjointset

import (
	"math"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// boruvkaCandidate is the cheapest known edge leaving one component.
type boruvkaCandidate struct {
	from, to int
	weight   float64
}

// less orders edges by weight, then by their endpoint pair. The total order
// keeps simultaneous merges within a round from closing a cycle.
func (c boruvkaCandidate) less(o boruvkaCandidate) bool {
	if c.weight != o.weight {
		return c.weight < o.weight
	}
	cLo, cHi := min(c.from, c.to), max(c.from, c.to)
	oLo, oHi := min(o.from, o.to), max(o.from, o.to)
	if cLo != oLo {
		return cLo < oLo
	}
	return cHi < oHi
}

// BoruvkaMST computes a minimum spanning tree using Borůvka's algorithm on a
// dense, symmetric distance matrix. dist is flat []float64, n×n row-major.
//
// Each round finds the cheapest edge leaving every component and merges along
// all of them, so at most log2(n) rounds are needed. Components are tracked
// with a Forest. +Inf and NaN entries mean "no edge"; a disconnected input
// yields a spanning forest and a logged warning.
func BoruvkaMST(dist []float64, n int) ([][3]float64, error) {
	return boruvkaMST(dist, n, log.L())
}

func boruvkaMST(dist []float64, n int, lg *zap.Logger) ([][3]float64, error) {
	if err := checkMatrix(dist, n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, nil
	}

	f := New(n)
	edges := make([][3]float64, 0, n-1)
	component := make([]int, n)
	cheapest := make([]boruvkaCandidate, n)

	for f.Sets() > 1 {
		for i := range component {
			root, err := f.FindRoot(i)
			if err != nil {
				return nil, errors.Trace(err)
			}
			component[i] = root
			cheapest[i] = boruvkaCandidate{from: -1}
		}

		for i := 0; i < n; i++ {
			ci := component[i]
			for j := 0; j < n; j++ {
				if component[j] == ci {
					continue
				}
				d := dist[i*n+j]
				if math.IsInf(d, 1) || math.IsNaN(d) {
					continue
				}
				c := boruvkaCandidate{from: i, to: j, weight: d}
				if cheapest[ci].from < 0 || c.less(cheapest[ci]) {
					cheapest[ci] = c
				}
			}
		}

		added := 0
		for _, c := range cheapest {
			if c.from < 0 {
				continue
			}
			// Two components may have picked the same edge.
			_, merged, err := f.Merge(c.from, c.to)
			if err != nil {
				return nil, errors.Trace(err)
			}
			if merged {
				edges = append(edges, [3]float64{float64(c.from), float64(c.to), c.weight})
				added++
			}
		}
		if added == 0 {
			break
		}
	}

	if len(edges) < n-1 {
		warnSpanningForest(lg, AlgorithmBoruvka, n, len(edges))
	}
	return edges, nil
}

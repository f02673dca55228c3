package disjointset

import "github.com/pingcap/errors"

// ConnectedComponents labels the n vertices of an undirected graph given as
// index pairs. Components are numbered 0..count-1 in order of their lowest
// vertex, so vertex 0 is always in component 0.
//
// A pair with an endpoint outside [0, n) fails with an error caused by
// ErrOutOfBounds.
func ConnectedComponents(n int, pairs [][2]int) (labels []int, count int, err error) {
	f := New(n)
	for _, p := range pairs {
		if err := f.Union(p[0], p[1]); err != nil {
			return nil, 0, errors.Annotatef(err, "pair %v", p)
		}
	}
	return componentLabels(f)
}

// componentLabels numbers the sets of f densely, in order of their lowest
// element.
func componentLabels(f *Forest) ([]int, int, error) {
	n := f.Size()
	labels := make([]int, n)
	labelOfRoot := make([]int, n)
	for i := range labelOfRoot {
		labelOfRoot[i] = -1
	}

	count := 0
	for i := 0; i < n; i++ {
		root, err := f.FindRoot(i)
		if err != nil {
			return nil, 0, errors.Trace(err)
		}
		if labelOfRoot[root] < 0 {
			labelOfRoot[root] = count
			count++
		}
		labels[i] = labelOfRoot[root]
	}
	return labels, count, nil
}

// ComponentSizes counts the members of each label in 0..count-1.
// Negative (noise) labels are ignored, and a negative count is treated as 0.
func ComponentSizes(labels []int, count int) []int {
	sizes := make([]int, max(count, 0))
	for _, l := range labels {
		if l >= 0 && l < count {
			sizes[l]++
		}
	}
	return sizes
}

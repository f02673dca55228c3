package disjointset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
)

// Forest is a disjoint-set (union-find) forest over the element indices
// 0..Size()-1, with path compression and union by size.
//
// Every element owns one slot. A negative slot marks a root and holds the
// negated number of elements in its tree; a non-negative slot holds the
// index of the element's parent. Indices are permanent: the forest only
// grows.
//
// A Forest is not safe for concurrent use.
type Forest struct {
	slots []int
	// sets is the number of roots.
	sets int
}

// New returns a forest of n elements, each in its own singleton set.
// A non-positive n yields an empty forest.
func New(n int) *Forest {
	n = max(n, 0)
	slots := make([]int, n)
	for i := range slots {
		slots[i] = -1 // singleton root
	}
	return &Forest{slots: slots, sets: n}
}

// Grow appends k new singleton elements. Existing indices and their set
// memberships are unaffected. A non-positive k is a no-op.
func (f *Forest) Grow(k int) {
	if k <= 0 {
		return
	}
	f.slots = slices.Grow(f.slots, k)
	for i := 0; i < k; i++ {
		f.slots = append(f.slots, -1)
	}
	f.sets += k
}

// Size returns the number of elements in the forest.
func (f *Forest) Size() int {
	return len(f.slots)
}

// Sets returns the number of disjoint sets.
func (f *Forest) Sets() int {
	return f.sets
}

func (f *Forest) checkIndex(element int) error {
	if element < 0 || element >= len(f.slots) {
		return outOfBounds(element, len(f.slots))
	}
	return nil
}

// FindRoot returns the root of the tree containing element, pointing every
// node visited on the way directly at that root. It returns -1 and an error
// caused by ErrOutOfBounds when element is not in [0, Size()).
func (f *Forest) FindRoot(element int) (int, error) {
	if err := f.checkIndex(element); err != nil {
		return -1, err
	}

	// Walk to the root.
	root := element
	for f.slots[root] >= 0 {
		root = f.slots[root]
	}
	// Path compression. Root slots are left alone.
	for f.slots[element] >= 0 {
		element, f.slots[element] = f.slots[element], root
	}
	return root, nil
}

// Union merges the sets containing a and b. It fails with an error caused by
// ErrOutOfBounds, leaving the partition untouched, if either index is invalid.
func (f *Forest) Union(a, b int) error {
	_, _, err := f.Merge(a, b)
	return err
}

// Merge is Union that also reports the root of the combined set and whether
// two distinct sets were joined.
//
// The root of the larger tree survives. On equal sizes the root of a's tree
// survives.
func (f *Forest) Merge(a, b int) (root int, merged bool, err error) {
	// Check both before compressing either path.
	if err := f.checkIndex(a); err != nil {
		return -1, false, errors.Trace(err)
	}
	if err := f.checkIndex(b); err != nil {
		return -1, false, errors.Trace(err)
	}
	rootA, err := f.FindRoot(a)
	if err != nil {
		return -1, false, errors.Trace(err)
	}
	rootB, err := f.FindRoot(b)
	if err != nil {
		return -1, false, errors.Trace(err)
	}
	if rootA == rootB {
		return rootA, false, nil
	}

	// Root slots hold negated sizes: the smaller slot is the larger tree.
	if f.slots[rootA] > f.slots[rootB] {
		rootA, rootB = rootB, rootA
	}
	f.slots[rootA] += f.slots[rootB]
	f.slots[rootB] = rootA
	f.sets--
	return rootA, true, nil
}

// Connected reports whether a and b belong to the same set.
func (f *Forest) Connected(a, b int) (bool, error) {
	rootA, err := f.FindRoot(a)
	if err != nil {
		return false, errors.Trace(err)
	}
	rootB, err := f.FindRoot(b)
	if err != nil {
		return false, errors.Trace(err)
	}
	return rootA == rootB, nil
}

// SetSize returns the number of elements in the set containing element.
func (f *Forest) SetSize(element int) (int, error) {
	root, err := f.FindRoot(element)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return f.rootSize(root), nil
}

// rootSize decodes the size stored at a root slot.
func (f *Forest) rootSize(root int) int {
	return -f.slots[root]
}

// String renders the raw slot encoding, e.g. "Forest[-3 0 0 -1]".
func (f *Forest) String() string {
	var sb strings.Builder
	sb.WriteString("Forest[")
	for i, s := range f.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(s))
	}
	sb.WriteByte(']')
	return sb.String()
}

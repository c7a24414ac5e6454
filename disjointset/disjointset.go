package disjointset

// DisjointSet partitions the IDs 0..n-1 into mergeable sets.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// New creates a DisjointSet of n singleton sets with IDs 0..n-1.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the canonical representative of x's set, halving the path
// along the way so later finds get shorter.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b, attaching the smaller root
// under the larger. It returns false when they already share a set.
func (d *DisjointSet) Union(a, b int) bool {
	rootA, rootB := d.Find(a), d.Find(b)
	if rootA == rootB {
		return false
	}
	if d.size[rootA] < d.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootB] = rootA
	d.size[rootA] += d.size[rootB]
	d.count--
	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Count returns the current number of sets.
func (d *DisjointSet) Count() int {
	return d.count
}

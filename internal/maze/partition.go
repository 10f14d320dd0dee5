package maze

// Partition tracks which cells are already connected during generation.
// Elements are linear cell indices; each starts in its own set.
type Partition interface {
	// Find returns the set id of element i.
	Find(i int) int
	// Union merges the sets of a and b. It reports false when they were
	// already the same set.
	Union(a, b int) bool
	// Count returns the number of disjoint sets.
	Count() int
}

// DisjointSet is a union-find forest with union by rank and path halving.
type DisjointSet struct {
	parent []int
	rank   []uint8
	count  int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *DisjointSet) Find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		ra, rb = rb, ra
	case d.rank[ra] == d.rank[rb]:
		d.rank[ra]++
	}
	d.parent[rb] = ra
	d.count--
	return true
}

func (d *DisjointSet) Count() int { return d.count }

// LinearSets stores a set label per element and relabels the whole
// secondary set on every union. O(n) per union; kept as the reference
// behaviour for differential tests.
type LinearSets struct {
	set   []int
	count int
}

// NewLinearSets returns n singleton sets labelled by index.
func NewLinearSets(n int) *LinearSets {
	l := &LinearSets{set: make([]int, n), count: n}
	for i := range l.set {
		l.set[i] = i
	}
	return l
}

func (l *LinearSets) Find(i int) int { return l.set[i] }

func (l *LinearSets) Union(a, b int) bool {
	primary, secondary := l.set[a], l.set[b]
	if primary == secondary {
		return false
	}
	for i, s := range l.set {
		if s == secondary {
			l.set[i] = primary
		}
	}
	l.count--
	return true
}

func (l *LinearSets) Count() int { return l.count }

var (
	_ Partition = (*DisjointSet)(nil)
	_ Partition = (*LinearSets)(nil)
)

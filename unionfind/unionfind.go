package unionfind

// UnionFind is a disjoint-set forest with union by size and path compression.
type UnionFind struct {
	parent     []int // parent[i] == i iff i is a root
	size       []int // size[r] is meaningful only for roots r
	components int   // number of distinct components
}

// New returns a UnionFind with n singleton components {0}, {1}, …, {n-1}.
// A negative n is treated as zero.
//
// Complexity: O(n) time and space.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}

	var i int
	for i = 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len returns the size of the universe the set was created with.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Components returns the current number of disjoint components.
func (uf *UnionFind) Components() int { return uf.components }

// Root returns the representative of i's component. Every node visited on the
// way up is re-parented directly under the root.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Root(i int) int {
	// Pass 1: climb to the root.
	r := i
	for uf.parent[r] != r {
		r = uf.parent[r]
	}

	// Pass 2: rewrite the whole chain to point at r.
	var next int
	for uf.parent[i] != r {
		next = uf.parent[i]
		uf.parent[i] = r
		i = next
	}

	return r
}

// Unite merges the components containing a and b, attaching the root of the
// smaller component under the root of the larger one. On equal sizes a's root
// stays the representative. It reports whether a merge happened; uniting two
// members of the same component is a no-op.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Unite(a, b int) bool {
	ra := uf.Root(a)
	rb := uf.Root(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.components--

	return true
}

// Same reports whether a and b are in the same component.
func (uf *UnionFind) Same(a, b int) bool {
	return uf.Root(a) == uf.Root(b)
}

// Size returns the number of elements in i's component.
func (uf *UnionFind) Size(i int) int {
	return uf.size[uf.Root(i)]
}

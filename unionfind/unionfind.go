// Package unionfind provides a disjoint-set (union-find) structure over a
// dense index range [0, n), used by the Kruskal and Eller maze generators
// to answer "are these two cells already connected" in near-constant
// amortized time.
//
// The implementation is an index arena: parents are slice indices rather
// than pointers, so there is no cyclic ownership and no allocation per
// element. Find applies path compression; Union links by rank.
//
// Complexity: Find and Union run in O(α(n)) amortized (inverse Ackermann,
// effectively constant); New is O(n).
package unionfind

// DSU is a disjoint-set forest over the elements 0..n-1.
// The zero value is an empty structure; use New.
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU with n singleton sets, one per element of [0, n).
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements the structure covers.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative of x's set, compressing the visited path
// so subsequent lookups are direct.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// second pass: re-parent everything on the path directly to the root
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Union merges the sets containing x and y, linking the lower-rank root
// under the higher. It reports whether a merge happened; false means the
// two were already in the same set.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

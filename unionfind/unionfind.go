// Package unionfind implements a disjoint-set structure with path halving,
// used by the DFA minimizer to turn a pairwise "these two states may be
// merged" relation into concrete equivalence classes.
package unionfind

import "fmt"

// UnionFind is a disjoint-set structure over the integers [0, n).
type UnionFind struct {
	parent []int
}

// New returns a UnionFind over n elements, each initially its own
// representative.
func New(n int) *UnionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{parent: parent}
}

// Find returns the representative of i's set, halving the path to the root
// as it walks (arr[i] <- arr[arr[i]]).
func (u *UnionFind) Find(i int) int {
	u.mustHave(i)
	for u.parent[i] != u.parent[u.parent[i]] {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return u.parent[i]
}

// Union merges the sets containing i and j by attaching the representative
// of i under the representative of j.
func (u *UnionFind) Union(i, j int) {
	ri, rj := u.Find(i), u.Find(j)
	u.parent[ri] = rj
}

// Closure returns, for every element, the full set of elements sharing its
// root — elements in the same class share the identical map value.
func (u *UnionFind) Closure() []map[int]struct{} {
	closure := make([]map[int]struct{}, len(u.parent))
	byRoot := make(map[int]map[int]struct{})

	for i := range u.parent {
		root := u.Find(i)
		set, ok := byRoot[root]
		if !ok {
			set = make(map[int]struct{})
			byRoot[root] = set
		}
		set[i] = struct{}{}
		closure[i] = set
	}

	return closure
}

func (u *UnionFind) mustHave(i int) {
	if i < 0 || i >= len(u.parent) {
		panic(fmt.Sprintf("unionfind: index %d out of range [0, %d)", i, len(u.parent)))
	}
}

package henkin

// unionFind is an index-based disjoint-set forest with path compression and
// union by rank. Indices refer into the constant table of the term model.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return
	}
	if u.rank[ri] < u.rank[rj] {
		ri, rj = rj, ri
	}
	u.parent[rj] = ri
	if u.rank[ri] == u.rank[rj] {
		u.rank[ri]++
	}
}

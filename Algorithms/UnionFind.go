package Algorithms

// UnionFind is the C4 family: classical union-find with weighted union by
// subtree size and 2-pass path compression, carrying a succ field per root.
// Delete(i) is Union(i, i+1); Successor(i) is succ[Find(i)].
type UnionFind struct {
	parent, weight, succ []int64
	n                    int64
}

func NewUnionFind(maxN int64) *UnionFind {
	sz := maxN + 2
	return &UnionFind{
		parent: make([]int64, sz),
		weight: make([]int64, sz),
		succ:   make([]int64, sz),
	}
}

func (u *UnionFind) Name() string { return "union find" }

func (u *UnionFind) Init(n int64) {
	u.n = n
	for i := int64(0); i < n+2; i++ {
		u.parent[i] = i
		u.weight[i] = 1
		u.succ[i] = i
	}
}

// Find locates the root of i with 2-pass path compression.
func (u *UnionFind) Find(i int64) int64 {
	r := i
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for i != r {
		p := u.parent[i]
		u.parent[i] = r
		i = p
	}
	return r
}

// Union merges the sets containing i and j by weight. When j's subtree loses,
// its succ is propagated to the winner, since j = i+1 lies to the right of the
// merged range and its succ is the one relevant to the whole range.
func (u *UnionFind) Union(i, j int64) {
	r1, r2 := u.Find(i), u.Find(j)
	if r1 == r2 {
		return
	}
	if u.weight[r1] <= u.weight[r2] {
		u.weight[r2] += u.weight[r1]
		u.parent[r1] = r2
	} else {
		u.weight[r1] += u.weight[r2]
		u.parent[r2] = r1
		u.succ[r1] = u.succ[r2]
	}
}

func (u *UnionFind) Successor(i int64) int64 {
	return u.succ[u.Find(i)]
}

func (u *UnionFind) Delete(i int64) {
	u.Union(i, i+1)
}

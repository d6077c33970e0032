// Package Forest implements the C6 height-tracking forest: a successor-delete
// structure that additionally tracks, for every node, its height and a
// doubly-linked list of all nodes sharing that height, so the node of maximum
// depth in the current forest can be located in O(current max height). The
// worst-case workload generator (Workload) relies on exactly this capability
// to synthesize long compression chains.
package Forest

import (
	"fmt"

	"github.com/google/btree"
)

const noChild = -1

// Forest is both a plain successor-delete structure (same operations as the
// array-parent 2-pass variant) and the oracle the worst-case generator uses
// to find a deepest live node.
type Forest struct {
	parent, height      []int64
	next, prev          []int64
	left, right         []int64
	child               []int64
	rootsOfHeight       []int64 // rootsOfHeight[h] = any node of height h, or -1
	maxHeight           int64
	n                   int64
}

func New(maxN int64) *Forest {
	sz := maxN + 2
	return &Forest{
		parent:        make([]int64, sz),
		height:        make([]int64, sz),
		next:          make([]int64, sz),
		prev:          make([]int64, sz),
		left:          make([]int64, sz),
		right:         make([]int64, sz),
		child:         make([]int64, sz),
		rootsOfHeight: make([]int64, sz),
	}
}

func (u *Forest) Name() string { return "height-tracking forest" }

func (u *Forest) Init(n int64) {
	u.n = n
	for i := int64(0); i < n+2; i++ {
		u.parent[i] = i
		u.height[i] = 0
		u.left[i] = i
		u.right[i] = i
		u.child[i] = noChild
		u.next[i] = i + 1
		u.prev[i] = i - 1
		u.rootsOfHeight[i] = noChild
	}
	u.prev[0] = n + 1
	u.next[n+1] = 0
	u.maxHeight = 0
	u.rootsOfHeight[0] = 0
}

// subtreeHeight recomputes the height of the subtree rooted at i from its children's
// already-known heights.
func (u *Forest) subtreeHeight(i int64) int64 {
	c := u.child[i]
	if c == noChild {
		return 0
	}
	ch := u.height[c]
	for u.right[c] != u.child[i] {
		c = u.right[c]
		if u.height[c] > ch {
			ch = u.height[c]
		}
	}
	return 1 + ch
}

// fixHeight recomputes the height of i and re-splices it into the equal
// height list for its new height.
func (u *Forest) fixHeight(i int64) {
	h := u.height[i]
	next, prev := u.next[i], u.prev[i]
	if u.rootsOfHeight[h] == i {
		if next != i {
			u.rootsOfHeight[h] = next
		} else {
			u.rootsOfHeight[h] = noChild
		}
	}
	if next != i {
		u.next[prev] = next
		u.prev[next] = prev
		u.next[i] = i
		u.prev[i] = i
	}
	h = u.subtreeHeight(i)
	u.height[i] = h
	if u.rootsOfHeight[h] != noChild {
		next = u.rootsOfHeight[h]
		prev = u.prev[next]
		u.next[i] = next
		u.prev[i] = prev
		u.prev[next] = i
		u.next[prev] = i
	}
	u.rootsOfHeight[h] = i
}

// link makes i the leftmost child of j. Precondition: parent[i] == i, j > i.
func (u *Forest) link(i, j int64) {
	right := u.child[j]
	u.child[j] = i
	u.parent[i] = j
	if right >= 0 {
		left := u.left[right]
		u.right[i] = right
		u.left[i] = left
		u.left[right] = i
		u.right[left] = i
	}
}

// unlink removes i from the sibling list of its parent. Must not be called on
// a root.
func (u *Forest) unlink(i int64) {
	j := u.parent[i]
	left, right := u.left[i], u.right[i]
	if u.child[j] == i {
		if right != i {
			u.child[j] = right
		} else {
			u.child[j] = noChild
		}
	}
	u.right[left] = right
	u.left[right] = left
	u.parent[i] = i
	u.left[i] = i
	u.right[i] = i
}

func (u *Forest) Delete(i int64) {
	j := u.parent[i]
	if j > i {
		u.unlink(i)
		u.fixHeight(j)
		for u.parent[j] != j {
			j = u.parent[j]
			u.fixHeight(j)
		}
	}
	j = i + 1
	u.link(i, j)
	u.fixHeight(j)
	for u.parent[j] != j {
		j = u.parent[j]
		u.fixHeight(j)
	}
	if u.height[j] > u.maxHeight {
		u.maxHeight = u.height[j]
	}
}

// Successor finds the root reachable from i, path-compressing every original
// ancestor directly onto it, and returns the root.
func (u *Forest) Successor(i int64) int64 {
	root := i
	for root < u.parent[root] {
		root = u.parent[root]
	}
	for i < root {
		p := u.parent[i]
		u.unlink(i)
		u.link(i, root)
		u.fixHeight(i)
		i = p
	}
	u.fixHeight(root)
	for u.rootsOfHeight[u.maxHeight] == noChild {
		u.maxHeight--
	}
	return root
}

// deepestLeaf finds a deepest node in the tree rooted at i.
func (u *Forest) deepestLeaf(i int64) int64 {
	h := u.height[i]
	for h > 0 {
		h--
		i = u.child[i]
		for u.height[i] != h {
			i = u.right[i]
		}
	}
	return i
}

// DeepestNode returns a node of maximum depth across the whole forest.
func (u *Forest) DeepestNode() int64 {
	return u.deepestLeaf(u.rootsOfHeight[u.maxHeight])
}

// Validate checks the seven structural invariants of the forest (see
// spec §3/§8), plus an independent max-height cross-check built on
// google/btree: every height up to maxHeight whose roots-of-height list is
// non-empty is inserted into a BTreeG[int64], and the tree's own Max() must
// agree with maxHeight. This catches a bookkeeping bug the linked-list walk
// alone could miss (a maxHeight left above the highest non-empty list); a
// maxHeight below a non-empty list is caught by the node count instead.
func (u *Forest) Validate() error {
	n := u.n
	uncountedChildren := int64(0)
	for i := int64(0); i < n+2; i++ {
		parent, child := u.parent[i], u.child[i]
		next, prev := u.next[i], u.prev[i]
		left, right := u.left[i], u.right[i]
		height := u.height[i]
		if i > parent || parent >= n+2 {
			return fmt.Errorf("Forest: node %d has out-of-range parent %d", i, parent)
		}
		if parent != i {
			uncountedChildren++
		}
		if height == 0 {
			if child != noChild {
				return fmt.Errorf("Forest: node %d has height 0 but a child", i)
			}
		} else {
			if child < 0 || child >= i {
				return fmt.Errorf("Forest: node %d has invalid child %d", i, child)
			}
			c := child
			ch := u.height[c]
			if u.parent[c] != i {
				return fmt.Errorf("Forest: child %d of %d has wrong parent %d", c, i, u.parent[c])
			}
			uncountedChildren--
			for u.right[c] != child {
				c = u.right[c]
				if u.parent[c] != i {
					return fmt.Errorf("Forest: child %d of %d has wrong parent %d", c, i, u.parent[c])
				}
				uncountedChildren--
				if u.height[c] > ch {
					ch = u.height[c]
				}
			}
			if height != ch+1 {
				return fmt.Errorf("Forest: node %d has height %d, want %d", i, height, ch+1)
			}
		}
		if next < 0 || next >= n+2 || prev < 0 || prev >= n+2 {
			return fmt.Errorf("Forest: node %d has out-of-range next/prev", i)
		}
		if u.prev[next] != i || u.next[prev] != i {
			return fmt.Errorf("Forest: node %d's equal-height list is broken", i)
		}
		if u.height[next] != height || u.height[prev] != height {
			return fmt.Errorf("Forest: node %d's equal-height list mixes heights", i)
		}
		if left < 0 || left >= n+2 || right < 0 || right >= n+2 {
			return fmt.Errorf("Forest: node %d has out-of-range sibling links", i)
		}
		if u.left[right] != i || u.right[left] != i {
			return fmt.Errorf("Forest: node %d's sibling list is broken", i)
		}
		if u.parent[right] != parent || u.parent[left] != parent {
			return fmt.Errorf("Forest: node %d's sibling has a different parent", i)
		}
	}

	heights := btree.NewG(32, func(a, b int64) bool { return a < b })
	nodesFound := int64(0)
	for h := int64(0); h <= u.maxHeight; h++ {
		root := u.rootsOfHeight[h]
		if root < 0 || root >= n+2 {
			continue
		}
		if u.height[root] != h {
			return fmt.Errorf("Forest: rootsOfHeight[%d] = %d has height %d", h, root, u.height[root])
		}
		heights.ReplaceOrInsert(h)
		nodesFound++
		for r := u.next[root]; r != root; r = u.next[r] {
			if u.height[r] != h {
				return fmt.Errorf("Forest: node %d in equal-height list %d has height %d", r, h, u.height[r])
			}
			nodesFound++
		}
	}
	if uncountedChildren != 0 {
		return fmt.Errorf("Forest: %d children not reachable from any parent's child list", uncountedChildren)
	}
	if nodesFound != n+2 {
		return fmt.Errorf("Forest: roots-of-height lists cover %d nodes, want %d", nodesFound, n+2)
	}
	if maxSeen, ok := heights.Max(); ok && maxSeen != u.maxHeight {
		return fmt.Errorf("Forest: btree cross-check says max height %d, maxHeight field says %d", maxSeen, u.maxHeight)
	}
	return nil
}

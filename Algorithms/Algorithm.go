// Package Algorithms implements the family of successor-delete data structures:
// the direct array-parent variants, the weighted quick-find, and the classical
// union-find with path compression. Every structure here maintains a subset S of
// {0, ..., n+1}, initialised full, supporting Delete and Successor; indices 0 and
// n+1 are sentinels and are never deleted.
package Algorithms

// Algorithm is the capability set shared by every successor-delete structure:
// allocate once to a maximum size, reset in O(n), delete, and query a successor.
// A tagged-variant dispatch table (see cmd/succdel) is used to pick among
// concrete implementations instead of an interface hierarchy with behavioral
// differences baked into subtypes.
type Algorithm interface {
	// Name is a stable display name used in CSV rows and progress output.
	Name() string
	// Init resets the structure to the universe {0, ..., n+1}, every element
	// live. Must be called after allocation and before any Delete/Successor.
	// Init is O(n) and performs no allocation; capacity up to the maximum size
	// given at construction is assumed.
	Init(n int64)
	// Delete removes i from the live set. Precondition: 1 <= i <= n.
	Delete(i int64)
	// Successor returns the smallest live j >= i. Precondition: 0 <= i <= n+1.
	Successor(i int64) int64
}

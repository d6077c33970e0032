// Package Microset implements the C5 micro-set composite: a bit-packed array
// of 64-bit words, one bit per element, layered over any Algorithms-family
// macro structure operating at bucket granularity. A bucket is live in the
// macro structure iff its word is non-zero.
package Microset

import (
	"math/bits"

	"github.com/brodal/succdel/Algorithms"
)

const wordBits = 64

// Microset is a builder-constructed composite: it is parameterised by
// whichever macro structure it should delegate bucket-level successor/delete
// to, rather than binding to one globally. Only one macro structure is bound
// per instance, for its whole lifetime.
type Microset struct {
	macro    Algorithms.Algorithm
	words    []uint64
	n        int64
	nBuckets int64
	name     string
}

// New builds a Microset composite over macro, which must already be
// constructed with a maxN of at least ceil((maxN+2)/64): Init passes that
// bucket count to macro.Init.
func New(maxN int64, macro Algorithms.Algorithm) *Microset {
	maxBuckets := (maxN + 2 + wordBits - 1) / wordBits
	return &Microset{
		macro: macro,
		words: make([]uint64, maxBuckets),
		name:  macro.Name() + ", microset",
	}
}

func (u *Microset) Name() string { return u.name }

func (u *Microset) Init(n int64) {
	u.n = n
	u.nBuckets = (n + 2 + wordBits - 1) / wordBits
	u.macro.Init(u.nBuckets)
	words := u.words[:u.nBuckets]
	for i := range words {
		words[i] = ^uint64(0)
	}
}

func (u *Microset) Delete(i int64) {
	bucket := i / wordBits
	mask := uint64(1) << uint(i%wordBits)
	if u.words[bucket]&mask == 0 {
		return
	}
	u.words[bucket] &^= mask
	if u.words[bucket] == 0 {
		u.macro.Delete(bucket)
	}
}

func (u *Microset) Successor(i int64) int64 {
	bucket := i / wordBits
	bit := uint(i % wordBits)
	w := u.words[bucket]
	highBits := w &^ (uint64(1)<<bit - 1)
	if highBits != 0 {
		return bucket*wordBits + int64(bits.TrailingZeros64(highBits))
	}
	succBucket := u.macro.Successor(bucket + 1)
	return succBucket*wordBits + int64(bits.TrailingZeros64(u.words[succBucket]))
}

package coloring

import "math/bits"

// wordBits is the machine word width backing the packed adjacency
// matrix (spec.md §3, "W is the machine word width"). 64 is preferred
// on 64-bit hosts per spec.md §9.
const wordBits = 64

type bitrow []uint64

func newBitrow(n int) bitrow {
	return make(bitrow, (n+wordBits-1)/wordBits)
}

func (r bitrow) set(i int) {
	r[i/wordBits] |= 1 << uint(i%wordBits)
}

func (r bitrow) get(i int) bool {
	return r[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// popcount returns the number of set bits in the row, used by the
// easy-segment peeler's degree computation.
func (r bitrow) popcount() int {
	c := 0
	for _, w := range r {
		c += bits.OnesCount64(w)
	}
	return c
}

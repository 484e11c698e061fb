package board

import "math/bits"

// Bits iterates over the set bits of a bitboard, lowest index first. The
// same trick (isolate lowest bit, clear, repeat) recurs in move enumeration,
// ordering, evaluation and hashing; this keeps it in one place. Assigning a
// new mask restarts the iterator.
type Bits uint64

// Next clears the lowest set bit and returns its square. ok is false once
// the mask is exhausted.
func (b *Bits) Next() (Square, bool) {
	if *b == 0 {
		return 0, false
	}
	idx := bits.TrailingZeros64(uint64(*b))
	*b &= *b - 1
	return Square(idx), true
}

// Count returns the number of bits remaining.
func (b Bits) Count() int { return bits.OnesCount64(uint64(b)) }

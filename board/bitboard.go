package board

import "math/bits"

// Bitboard is a 64-bit occupancy mask. Bit i (LSB first) corresponds to
// square i, so bit 0 is a1 and bit 63 is h8. The LSB0 layout is fixed;
// every consumer of the board state depends on it.
type Bitboard uint64

// Get reports whether bit sq is set. Out-of-range squares report false
// rather than panicking so that generation code stays branch-free.
func (b Bitboard) Get(sq Square) bool {
	if sq < 0 || sq >= NumSquares {
		return false
	}
	return b>>uint(sq)&1 == 1
}

// Set sets or clears bit sq. Out-of-range squares are a no-op.
func (b *Bitboard) Set(sq Square, v bool) {
	if sq < 0 || sq >= NumSquares {
		return
	}
	if v {
		*b |= 1 << uint(sq)
	} else {
		*b &^= 1 << uint(sq)
	}
}

// PopLSB removes and returns the lowest set square, or NoSquare when the
// board is empty. Repeated calls walk the set bits in ascending order.
func (b *Bitboard) PopLSB() Square {
	if *b == 0 {
		return NoSquare
	}
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// IsEmpty reports whether no squares are set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// Squares returns the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for bb := b; bb != 0; {
		out = append(out, bb.PopLSB())
	}
	return out
}

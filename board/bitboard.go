// Package board holds the bit-level primitives for the 7x7 board: squares,
// occupancy sets, and the ring-expansion operation that move generation,
// capture resolution, and mobility detection are all built on.
package board

import (
	"math/bits"
	"strings"
)

// A Bitboard is a set of squares over the 8x8 backing grid, one bit per
// square, with a1 at bit 0 and h8 at bit 63. Rank 8 and file H are walled
// off permanently; masking them away after every shift is what carves a
// 7x7 board out of a 64-bit word.
type Bitboard uint64

const (
	rank8 Bitboard = 0xFF00_0000_0000_0000
	fileH Bitboard = 0x8080_8080_8080_8080

	// Playable is the 7x7 playable region.
	Playable Bitboard = ^(rank8 | fileH)
)

func (b Bitboard) north() Bitboard { return (b << 8) & Playable }
func (b Bitboard) south() Bitboard { return (b >> 8) & Playable }
func (b Bitboard) east() Bitboard  { return (b << 1) & Playable }
func (b Bitboard) west() Bitboard  { return (b >> 1) & Playable }

// Expand dilates b by one ring: every square of b together with all of its
// in-bounds king-move neighbors. The vertical shift-union followed by a
// horizontal shift-union of the result covers the diagonals too.
func (b Bitboard) Expand() Bitboard {
	vert := b | b.north() | b.south()
	return (vert | vert.east() | vert.west()) & Playable
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Occupied reports whether sq is in the set.
func (b Bitboard) Occupied(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// Low returns the lowest-index square of the set. The set must not be empty.
func (b Bitboard) Low() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// String draws the backing grid with rank 8 on top, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Occupied(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if rank > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

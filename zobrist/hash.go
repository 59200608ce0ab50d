// Package zobrist hashes positions for transposition detection.
// https://en.wikipedia.org/wiki/Zobrist_hashing
package zobrist

import (
	"lukechampine.com/frand"

	"github.com/kapell/ataxx/board"
	"github.com/kapell/ataxx/game"
)

const bignum = 1<<63 - 2

// Zobrist holds random tables covering the full rules-relevant state: both
// occupancy sets, interior walls, the side to move, and the quiet-halfmove
// counter (it feeds the draw rule, so positions differing only there must
// hash apart).
type Zobrist struct {
	theirTurn uint64

	posTable      [64][2]uint64
	wallTable     [64]uint64
	halfmoveTable [game.MaxQuietHalfmoves + 1]uint64
}

// New returns a Zobrist with freshly drawn tables. Hashes from different
// instances are not comparable.
func New() *Zobrist {
	z := &Zobrist{}
	for sq := 0; sq < 64; sq++ {
		z.posTable[sq][0] = frand.Uint64n(bignum) + 1
		z.posTable[sq][1] = frand.Uint64n(bignum) + 1
		z.wallTable[sq] = frand.Uint64n(bignum) + 1
	}
	for i := range z.halfmoveTable {
		z.halfmoveTable[i] = frand.Uint64n(bignum) + 1
	}
	z.theirTurn = frand.Uint64n(bignum) + 1
	return z
}

// Hash returns the key for p.
func (z *Zobrist) Hash(p *game.Position) uint64 {
	var key uint64
	for bb := p.Occupancy(board.X); bb != 0; bb &= bb - 1 {
		key ^= z.posTable[bb.Low()][board.X]
	}
	for bb := p.Occupancy(board.O); bb != 0; bb &= bb - 1 {
		key ^= z.posTable[bb.Low()][board.O]
	}
	for bb := p.Blocked(); bb != 0; bb &= bb - 1 {
		key ^= z.wallTable[bb.Low()]
	}
	if p.Turn() == board.O {
		key ^= z.theirTurn
	}
	hm := p.QuietHalfmoves()
	if hm > game.MaxQuietHalfmoves {
		hm = game.MaxQuietHalfmoves
	}
	key ^= z.halfmoveTable[hm]
	return key
}

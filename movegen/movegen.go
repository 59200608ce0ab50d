// Package movegen enumerates the legal moves of a position through a
// push-style listener, which keeps the hot perft path free of allocations.
package movegen

import (
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
)

// A Listener receives generated moves. Returning true stops the enumeration
// early.
type Listener func(move.Move) bool

// GenerateMoves calls listener for every legal move of the side to move,
// without duplicates and in a fixed order: growth moves by increasing
// destination, then jumps by increasing origin and, within an origin,
// increasing destination. A side with no playable move gets exactly one
// pass. A terminal position generates nothing.
func GenerateMoves(p *game.Position, listener Listener) {
	if p.GameOver() {
		return
	}

	us := p.Occupancy(p.Turn())
	empty := p.Empty()

	singles := us.Expand() & empty
	generated := singles != 0
	for bb := singles; bb != 0; bb &= bb - 1 {
		if listener(move.NewSingle(bb.Low())) {
			return
		}
	}

	// Jump targets are source-specific: two rings out from one origin,
	// minus that origin's own ring. A bulk two-ring expansion over the
	// whole occupancy would conflate jumps with growths next to another
	// piece, so each origin is expanded on its own.
	for src := us; src != 0; src &= src - 1 {
		from := src.Low()
		ring := from.Bitboard().Expand()
		targets := ring.Expand() & empty &^ ring
		generated = generated || targets != 0
		for bb := targets; bb != 0; bb &= bb - 1 {
			if listener(move.NewDouble(from, bb.Low())) {
				return
			}
		}
	}

	if !generated {
		listener(move.NewPass())
	}
}

// Moves materializes the full move list in generation order.
func Moves(p *game.Position) []move.Move {
	var moves []move.Move
	GenerateMoves(p, func(m move.Move) bool {
		moves = append(moves, m)
		return false
	})
	return moves
}

// CountMoves returns the number of legal moves without materializing them.
func CountMoves(p *game.Position) int {
	n := 0
	GenerateMoves(p, func(move.Move) bool {
		n++
		return false
	})
	return n
}

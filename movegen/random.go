package movegen

import (
	"lukechampine.com/frand"

	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
)

// SelectMove returns the i-th move of the enumeration without materializing
// the move list. ok is false when i is out of range.
func SelectMove(p *game.Position, i int) (move.Move, bool) {
	var selected move.Move
	found := false
	n := 0
	GenerateMoves(p, func(m move.Move) bool {
		if n == i {
			selected = m
			found = true
			return true
		}
		n++
		return false
	})
	return selected, found
}

// RandomMove picks a uniformly random legal move. Selection happens by index
// into the deterministic enumeration order, so the result for a given index
// always agrees with Moves. ok is false only for terminal positions.
func RandomMove(p *game.Position) (move.Move, bool) {
	n := CountMoves(p)
	if n == 0 {
		return move.Move{}, false
	}
	return SelectMove(p, frand.Intn(n))
}

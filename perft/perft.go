// Package perft counts move-tree nodes to a fixed depth. It is the
// correctness oracle for the generator and move application combined, and
// doubles as the throughput benchmark.
package perft

import (
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
	"github.com/kapell/ataxx/movegen"
)

// Perft returns the number of nodes in the legal move tree exactly depth
// half-moves below p. Every branch recurses on its own copy; the caller's
// position is never modified.
func Perft(p *game.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		var count uint64
		movegen.GenerateMoves(p, func(move.Move) bool {
			count++
			return false
		})
		return count
	}
	var count uint64
	movegen.GenerateMoves(p, func(m move.Move) bool {
		child := *p
		child.ApplyMove(m)
		count += Perft(&child, depth-1)
		return false
	})
	return count
}

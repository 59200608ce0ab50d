package perft

import (
	"github.com/cespare/xxhash"

	"github.com/kapell/ataxx/fen"
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
	"github.com/kapell/ataxx/movegen"
)

// Records calls visit with the encoded record of every position exactly
// depth half-moves below p, once per tree path.
func Records(p *game.Position, depth int, visit func(record string)) {
	if depth == 0 {
		visit(fen.Encode(p))
		return
	}
	movegen.GenerateMoves(p, func(m move.Move) bool {
		child := *p
		child.ApplyMove(m)
		Records(&child, depth-1, visit)
		return false
	})
}

// UniqueRecords counts the distinct positions exactly depth half-moves below
// p, deduplicating record encodings by their xxhash digest.
func UniqueRecords(p *game.Position, depth int) uint64 {
	seen := make(map[uint64]struct{})
	Records(p, depth, func(record string) {
		seen[xxhash.Sum64String(record)] = struct{}{}
	})
	return uint64(len(seen))
}

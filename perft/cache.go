package perft

import (
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
	"github.com/kapell/ataxx/movegen"
	"github.com/kapell/ataxx/zobrist"
)

type cacheKey struct {
	hash  uint64
	depth int
}

// Cache memoizes subtree counts keyed by position hash and remaining depth.
// Totals match Perft as long as the hash does not collide, which is the
// usual Zobrist wager.
type Cache struct {
	z     *zobrist.Zobrist
	table map[cacheKey]uint64
}

func NewCache() *Cache {
	return &Cache{
		z:     zobrist.New(),
		table: make(map[cacheKey]uint64),
	}
}

// Perft is the memoized equivalent of the package-level Perft.
func (c *Cache) Perft(p *game.Position, depth int) uint64 {
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
	key := cacheKey{hash: c.z.Hash(p), depth: depth}
	if count, ok := c.table[key]; ok {
		return count
	}
	var count uint64
	movegen.GenerateMoves(p, func(m move.Move) bool {
		child := *p
		child.ApplyMove(m)
		count += c.Perft(&child, depth-1)
		return false
	})
	c.table[key] = count
	return count
}

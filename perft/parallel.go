package perft

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
	"github.com/kapell/ataxx/movegen"
)

// ParallelPerft splits the tree at the root moves across at most threads
// workers. The recursion below the root is order-independent for the sum, so
// the total matches Perft for any thread count.
func ParallelPerft(p *game.Position, depth, threads int) uint64 {
	if depth <= 1 || threads <= 1 {
		return Perft(p, depth)
	}
	var total atomic.Uint64
	g := errgroup.Group{}
	g.SetLimit(threads)
	movegen.GenerateMoves(p, func(m move.Move) bool {
		child := *p
		child.ApplyMove(m)
		g.Go(func() error {
			total.Add(Perft(&child, depth-1))
			return nil
		})
		return false
	})
	g.Wait()
	return total.Load()
}

package movegen_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/kapell/ataxx/fen"
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
	"github.com/kapell/ataxx/movegen"
)

func mustParse(t *testing.T, record string) game.Position {
	t.Helper()
	p, err := fen.Parse(record)
	if err != nil {
		t.Fatalf("parsing %q: %v", record, err)
	}
	return p
}

func moveTexts(p *game.Position) []string {
	return lo.Map(movegen.Moves(p), func(m move.Move, _ int) string {
		return m.String()
	})
}

func TestStartingMoves(t *testing.T) {
	is := is.New(t)
	p := game.NewPosition()
	// Growths in increasing destination order, then jumps by origin: the g1
	// piece has the lower square index, so its jumps come first.
	is.Equal(moveTexts(&p), []string{
		"f1", "f2", "g2", "a6", "b6", "b7",
		"g1e1", "g1e2", "g1e3", "g1f3", "g1g3",
		"a7a5", "a7b5", "a7c5", "a7c6", "a7c7",
	})
}

func TestCountMoves(t *testing.T) {
	is := is.New(t)
	p := game.NewPosition()
	is.Equal(movegen.CountMoves(&p), 16)
}

func TestDeterministicEnumeration(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "x5o/7/2-1-2/7/2-1-2/7/o5x o 5 12")
	first := movegen.Moves(&p)
	second := movegen.Moves(&p)
	is.Equal(first, second)
}

func TestNoDuplicates(t *testing.T) {
	is := is.New(t)
	// Two friendly pieces a knight's-width apart share single destinations;
	// the generator must still emit each destination once.
	p := mustParse(t, "7/7/7/2x1x2/7/7/6o x 0 1")
	moves := movegen.Moves(&p)
	is.Equal(len(moves), len(lo.Uniq(moves)))
}

func TestEarlyTermination(t *testing.T) {
	is := is.New(t)
	p := game.NewPosition()
	calls := 0
	movegen.GenerateMoves(&p, func(move.Move) bool {
		calls++
		return true
	})
	is.Equal(calls, 1)
}

func TestStuckSideMustPass(t *testing.T) {
	is := is.New(t)
	// x is fenced in by blocked cells while o still has moves: exactly one
	// pass comes out.
	p := mustParse(t, "x--4/---4/---4/7/7/7/6o x 0 1")
	moves := movegen.Moves(&p)
	is.Equal(moves, []move.Move{move.NewPass()})

	// The same board with o to move has normal moves and no pass.
	p = mustParse(t, "x--4/---4/---4/7/7/7/6o o 0 1")
	for _, m := range movegen.Moves(&p) {
		is.True(m.Type() != move.TypePass)
	}
}

func TestTerminalGeneratesNothing(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "x6/7/7/7/7/7/7 x 0 1")
	is.Equal(movegen.CountMoves(&p), 0)

	p = mustParse(t, "x--4/---4/---4/7/4---/4---/4--o x 0 1")
	is.Equal(movegen.CountMoves(&p), 0)
}

func TestJumpsAreSourceSpecific(t *testing.T) {
	is := is.New(t)
	// c4 and e4 both see d4-adjacent cells as growths. A bulk two-ring
	// expansion would also claim cells like d5 as a jump target, but d5 is
	// ring-1 of both origins and must only appear as a growth.
	p := mustParse(t, "7/7/7/2x1x2/7/7/6o x 0 1")
	for _, m := range movegen.Moves(&p) {
		if m.Type() != move.TypeDouble {
			continue
		}
		is.True(m.From() != m.To())
		// A jump target is never adjacent to its own origin.
		is.True(!m.From().Bitboard().Expand().Occupied(m.To()))
	}
}

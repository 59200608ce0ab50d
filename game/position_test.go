package game_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/kapell/ataxx/board"
	"github.com/kapell/ataxx/fen"
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
)

func mustParse(t *testing.T, record string) game.Position {
	t.Helper()
	p, err := fen.Parse(record)
	if err != nil {
		t.Fatalf("parsing %q: %v", record, err)
	}
	return p
}

func TestNewPosition(t *testing.T) {
	is := is.New(t)
	p := game.NewPosition()

	owner, ok := p.PlayerAt(board.A7)
	is.True(ok)
	is.Equal(owner, board.X)
	owner, ok = p.PlayerAt(board.G1)
	is.True(ok)
	is.Equal(owner, board.X)
	owner, ok = p.PlayerAt(board.A1)
	is.True(ok)
	is.Equal(owner, board.O)
	owner, ok = p.PlayerAt(board.G7)
	is.True(ok)
	is.Equal(owner, board.O)

	_, ok = p.PlayerAt(board.D4)
	is.True(!ok)

	is.Equal(p.Turn(), board.X)
	is.Equal(p.Ply(), 0)
	is.Equal(p.QuietHalfmoves(), 0)
	is.True(!p.GameOver())
	is.Equal(p.Outcome(), game.Ongoing)
}

func TestIsBlocked(t *testing.T) {
	is := is.New(t)
	p := game.NewPosition()
	is.True(p.IsBlocked(board.H1))
	is.True(p.IsBlocked(board.A8))
	is.True(!p.IsBlocked(board.A1))
	is.Equal(p.Blocked(), board.Bitboard(0))

	blocked := mustParse(t, "x5o/7/2-1-2/7/2-1-2/7/o5x x 0 1")
	is.True(blocked.IsBlocked(board.C3))
	is.True(blocked.IsBlocked(board.E5))
	is.True(!blocked.IsBlocked(board.D4))
}

func TestApplySingleFlips(t *testing.T) {
	is := is.New(t)
	// x on b2, o on c3 and a1. Growing to b3 flips c3 but not the far a1.
	p := mustParse(t, "7/7/7/7/2o4/1x5/o6 x 0 1")

	p.ApplyMove(move.NewSingle(board.B3))

	owner, ok := p.PlayerAt(board.B3)
	is.True(ok)
	is.Equal(owner, board.X)
	owner, ok = p.PlayerAt(board.C3)
	is.True(ok)
	is.Equal(owner, board.X)
	owner, ok = p.PlayerAt(board.A1)
	is.True(ok)
	is.Equal(owner, board.O)

	is.Equal(p.Occupancy(board.X).Count(), 3)
	is.Equal(p.Occupancy(board.O).Count(), 1)
	is.Equal(p.Ply(), 1)
	is.Equal(p.Turn(), board.O)
	is.Equal(p.QuietHalfmoves(), 0)
}

func TestApplyDouble(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "7/7/7/7/2o4/1x5/o6 x 3 4")

	p.ApplyMove(move.NewDouble(board.B2, board.D4))

	_, ok := p.PlayerAt(board.B2)
	is.True(!ok)
	owner, ok := p.PlayerAt(board.D4)
	is.True(ok)
	is.Equal(owner, board.X)
	// c3 is inside the ring around d4 and flips.
	owner, ok = p.PlayerAt(board.C3)
	is.True(ok)
	is.Equal(owner, board.X)

	is.Equal(p.Occupancy(board.X).Count(), 2)
	is.Equal(p.Occupancy(board.O).Count(), 1)
	is.Equal(p.QuietHalfmoves(), 4)
	is.Equal(p.Ply(), 7)
}

func TestApplySingleResetsHalfmove(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "x5o/7/7/7/7/7/o5x x 42 10")
	p.ApplyMove(move.NewSingle(board.B7))
	is.Equal(p.QuietHalfmoves(), 0)
}

func TestApplyPass(t *testing.T) {
	is := is.New(t)
	p := game.NewPosition()
	before := p
	p.ApplyMove(move.NewPass())
	is.Equal(p.Ply(), 1)
	is.Equal(p.Turn(), board.O)
	is.Equal(p.QuietHalfmoves(), 0)
	is.Equal(p.Occupancy(board.X), before.Occupancy(board.X))
	is.Equal(p.Occupancy(board.O), before.Occupancy(board.O))
}

func TestGameOverElimination(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "x6/7/7/7/7/7/7 x 0 1")
	is.True(p.GameOver())
	is.Equal(p.Outcome(), game.XWins)

	p = mustParse(t, "o6/7/7/7/7/7/7 x 0 1")
	is.True(p.GameOver())
	is.Equal(p.Outcome(), game.OWins)
}

func TestGameOverFullBoard(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "xxxxxxx/xxxxxxx/xxxxxxx/xxxxxxx/ooooooo/ooooooo/ooooooo x 0 1")
	is.True(p.GameOver())
	// 28 x against 21 o.
	is.Equal(p.Outcome(), game.XWins)
}

func TestGameOverHalfmoveLimit(t *testing.T) {
	is := is.New(t)
	p := mustParse(t, "x5o/7/7/7/7/7/o5x x 100 60")
	is.True(p.GameOver())
	is.Equal(p.Outcome(), game.Draw)

	p = mustParse(t, "x5o/7/7/7/7/7/o5x x 99 60")
	is.True(!p.GameOver())
}

func TestGameOverJointImmobility(t *testing.T) {
	is := is.New(t)
	// Both pieces are fenced in by blocked cells; every empty cell lies more
	// than two rings from any piece, so the game is over even though pieces
	// remain and the board is far from full.
	p := mustParse(t, "x--4/---4/---4/7/4---/4---/4--o x 0 1")
	is.True(p.GameOver())
	is.Equal(p.Outcome(), game.Draw)
}

func TestOneSideStuckIsNotOver(t *testing.T) {
	is := is.New(t)
	// Only x is fenced in. o still has room, and the mobility test runs over
	// the union of both sides, so the game continues and x must pass.
	p := mustParse(t, "x--4/---4/---4/7/7/7/6o x 0 1")
	is.True(!p.GameOver())
	is.Equal(p.Outcome(), game.Ongoing)
}

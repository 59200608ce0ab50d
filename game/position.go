// Package game encapsulates the position state and rules: turn tracking,
// move application with the adjacency flip, and end-of-game detection.
package game

import (
	"github.com/kapell/ataxx/board"
	"github.com/kapell/ataxx/move"
)

// MaxQuietHalfmoves ends the game once this many consecutive jump moves have
// been played without a growth move.
const MaxQuietHalfmoves = 100

// Outcome is the result of a finished game, or Ongoing.
type Outcome uint8

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x wins"
	case OWins:
		return "o wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// Position is the full game state. It is a small value type: copy it to
// explore speculative lines, and apply moves in place otherwise. The two
// occupancy sets and the walls are pairwise disjoint.
type Position struct {
	x, o  board.Bitboard
	walls board.Bitboard

	ply      uint16
	halfmove uint8
}

// NewPosition returns the starting position: X on a7 and g1, O on a1 and g7.
func NewPosition() Position {
	return Position{
		x:     board.A7.Bitboard() | board.G1.Bitboard(),
		o:     board.A1.Bitboard() | board.G7.Bitboard(),
		walls: ^board.Playable,
	}
}

// NewPositionFromParts assembles a position from externally parsed state.
// blocked is the set of unplayable interior cells; the backing rank and file
// walls are always present on top of it.
func NewPositionFromParts(x, o, blocked board.Bitboard, ply, halfmove int) Position {
	return Position{
		x:        x & board.Playable,
		o:        o & board.Playable,
		walls:    ^board.Playable | (blocked & board.Playable),
		ply:      uint16(ply),
		halfmove: uint8(halfmove),
	}
}

// Turn returns the side to move.
func (p *Position) Turn() board.Player {
	return board.Player(p.ply & 1)
}

// Ply returns the number of half-moves played since the start.
func (p *Position) Ply() int {
	return int(p.ply)
}

// QuietHalfmoves returns the number of half-moves since the last growth move.
func (p *Position) QuietHalfmoves() int {
	return int(p.halfmove)
}

// Occupancy returns the occupancy set of pl.
func (p *Position) Occupancy(pl board.Player) board.Bitboard {
	if pl == board.X {
		return p.x
	}
	return p.o
}

// Blocked returns the unplayable interior cells.
func (p *Position) Blocked() board.Bitboard {
	return p.walls & board.Playable
}

// Walls returns every unplayable cell, backing walls included.
func (p *Position) Walls() board.Bitboard {
	return p.walls
}

// Empty returns the playable cells no piece or wall sits on.
func (p *Position) Empty() board.Bitboard {
	return ^(p.x | p.o | p.walls) & board.Playable
}

// PlayerAt returns the owner of sq, if any.
func (p *Position) PlayerAt(sq board.Square) (board.Player, bool) {
	if p.x.Occupied(sq) {
		return board.X, true
	}
	if p.o.Occupied(sq) {
		return board.O, true
	}
	return 0, false
}

// IsBlocked reports whether sq is permanently unplayable.
func (p *Position) IsBlocked(sq board.Square) bool {
	return p.walls.Occupied(sq)
}

// ApplyMove mutates the position in place. The move must come from the
// generator for this exact position; nothing is validated here.
func (p *Position) ApplyMove(m move.Move) {
	switch m.Type() {
	case move.TypeSingle:
		p.halfmove = 0
		to := m.To().Bitboard()
		if p.Turn() == board.X {
			p.x ^= to
		} else {
			p.o ^= to
		}
		p.flipAround(to)
	case move.TypeDouble:
		p.halfmove++
		fromTo := m.From().Bitboard() | m.To().Bitboard()
		to := m.To().Bitboard()
		if p.Turn() == board.X {
			p.x ^= fromTo
		} else {
			p.o ^= fromTo
		}
		p.flipAround(to)
	case move.TypePass:
	}
	p.ply++
}

// flipAround converts every opposing piece within one ring of the destination
// to the mover. One ring, one pass; there is no chain reaction.
func (p *Position) flipAround(to board.Bitboard) {
	flipZone := to.Expand()
	if p.Turn() == board.X {
		flipped := flipZone & p.o
		p.o ^= flipped
		p.x |= flipped
	} else {
		flipped := flipZone & p.x
		p.x ^= flipped
		p.o |= flipped
	}
}

// GameOver reports whether the game has ended: a side eliminated, the board
// full, the quiet-halfmove limit reached, or no empty cell left within two
// rings of any piece. The mobility test runs over the union of both
// occupancies, so both sides go immobile jointly or not at all.
func (p *Position) GameOver() bool {
	if p.x == 0 || p.o == 0 {
		return true
	}
	occ := p.x | p.o
	if (occ|p.walls)&board.Playable == board.Playable {
		return true
	}
	if p.halfmove >= MaxQuietHalfmoves {
		return true
	}
	return occ.Expand().Expand() & ^(occ|p.walls) & board.Playable == 0
}

// Outcome returns Ongoing while the game is in progress; once over, the side
// with strictly more pieces wins and equal counts draw.
func (p *Position) Outcome() Outcome {
	if !p.GameOver() {
		return Ongoing
	}
	xc, oc := p.x.Count(), p.o.Count()
	switch {
	case xc > oc:
		return XWins
	case oc > xc:
		return OWins
	default:
		return Draw
	}
}

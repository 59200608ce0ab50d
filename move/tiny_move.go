package move

import (
	"errors"
	"fmt"

	"github.com/kapell/ataxx/board"
)

// TinyMove is a dense integer encoding of a move, small enough for feature
// indexing and compact storage. The schema runs over compressed
// (file + 7*rank) square indices:
//
//	0..48                    growth moves, the compressed destination
//	49                       pass (the slot a degenerate a1->a1 jump would take)
//	49 + 49*from + to        jump moves with from != to
type TinyMove uint16

// PassTinyMove is the reserved pass index.
const PassTinyMove TinyMove = planeSize

// TinyMoveSpace is the size of the index range; every TinyMove is below it.
const TinyMoveSpace = planeSize + planeSize*planeSize

const planeSize = 49

// ErrInvalidMoveIndex is returned when decoding an index that no move
// encodes to.
var ErrInvalidMoveIndex = errors.New("invalid move index")

// MoveToTinyMove encodes m.
func MoveToTinyMove(m Move) TinyMove {
	switch m.t {
	case TypeSingle:
		return TinyMove(m.to.Compressed())
	case TypeDouble:
		return TinyMove(planeSize + planeSize*m.from.Compressed() + m.to.Compressed())
	default:
		return PassTinyMove
	}
}

// TinyMoveToMove decodes tm. It fails on indices outside the schema,
// including the unused degenerate jump slots.
func TinyMoveToMove(tm TinyMove) (Move, error) {
	if tm < planeSize {
		return NewSingle(board.FromCompressed(int(tm))), nil
	}
	if tm == PassTinyMove {
		return NewPass(), nil
	}
	if tm >= TinyMoveSpace {
		return Move{}, fmt.Errorf("%w: %d out of range", ErrInvalidMoveIndex, tm)
	}
	pair := int(tm) - planeSize
	from, to := pair/planeSize, pair%planeSize
	if from == to {
		return Move{}, fmt.Errorf("%w: %d is a degenerate jump slot", ErrInvalidMoveIndex, tm)
	}
	return NewDouble(board.FromCompressed(from), board.FromCompressed(to)), nil
}

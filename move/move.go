// Package move defines the move value type and its two external encodings:
// coordinate text and the dense TinyMove index.
package move

import (
	"errors"
	"fmt"

	"github.com/kapell/ataxx/board"
)

// MoveType is the kind of move: grow a new piece, jump an existing one, or
// pass.
type MoveType uint8

const (
	TypeSingle MoveType = iota
	TypeDouble
	TypePass
)

// PassToken is the text encoding of a pass.
const PassToken = "0000"

// ErrInvalidMoveText is returned when parsing text that is not a move.
var ErrInvalidMoveText = errors.New("invalid move text")

// Move is one half-move. It is a plain value with no position reference; its
// legality is relative to the position it was generated from.
type Move struct {
	t        MoveType
	from, to board.Square
}

// NewSingle builds a growth move placing a new piece on to.
func NewSingle(to board.Square) Move {
	return Move{t: TypeSingle, from: board.NoSquare, to: to}
}

// NewDouble builds a jump move relocating the piece on from to to.
func NewDouble(from, to board.Square) Move {
	return Move{t: TypeDouble, from: from, to: to}
}

// NewPass builds a pass.
func NewPass() Move {
	return Move{t: TypePass, from: board.NoSquare, to: board.NoSquare}
}

func (m Move) Type() MoveType {
	return m.t
}

// From returns the origin square of a jump, or NoSquare otherwise.
func (m Move) From() board.Square {
	return m.from
}

// To returns the destination square, or NoSquare for a pass.
func (m Move) To() board.Square {
	return m.to
}

// String renders the move in coordinate text: the destination for a growth
// move, origin then destination for a jump, and the pass token.
func (m Move) String() string {
	switch m.t {
	case TypeSingle:
		return m.to.String()
	case TypeDouble:
		return m.from.String() + m.to.String()
	default:
		return PassToken
	}
}

// FromText parses coordinate text produced by String.
func FromText(text string) (Move, error) {
	switch len(text) {
	case 2:
		to, err := board.ParseSquare(text)
		if err != nil {
			return Move{}, err
		}
		return NewSingle(to), nil
	case 4:
		if text == PassToken {
			return NewPass(), nil
		}
		from, err := board.ParseSquare(text[:2])
		if err != nil {
			return Move{}, err
		}
		to, err := board.ParseSquare(text[2:])
		if err != nil {
			return Move{}, err
		}
		if from == to {
			return Move{}, fmt.Errorf("%w: jump with equal origin and destination %q", ErrInvalidMoveText, text)
		}
		return NewDouble(from, to), nil
	default:
		return Move{}, fmt.Errorf("%w: %q has wrong length", ErrInvalidMoveText, text)
	}
}

package board

import (
	"errors"
	"fmt"
	"iter"
)

// A Square is a coordinate on the 8x8 backing grid, in [0, 64). Only the 49
// squares whose file and rank are both below 7 are on the playable board.
// Equality and ordering are by raw index.
type Square uint8

// NoSquare is the out-of-band value used where a move has no origin or
// destination.
const NoSquare Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// ErrInvalidSquare is returned when parsing text that does not name a
// playable square.
var ErrInvalidSquare = errors.New("invalid square")

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file (0 = a).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the zero-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) >> 3
}

// Playable reports whether the square is in the 7x7 playable region.
func (s Square) Playable() bool {
	return s < NoSquare && s.File() < 7 && s.Rank() < 7
}

// Bitboard returns the single-square set for s.
func (s Square) Bitboard() Bitboard {
	return 1 << s
}

// Compressed maps a playable square into the dense [0, 49) range used by the
// move-index and feature encodings.
func (s Square) Compressed() int {
	return s.Rank()*7 + s.File()
}

// FromCompressed is the inverse of Compressed.
func FromCompressed(c int) Square {
	return NewSquare(c%7, c/7)
}

// Chebyshev returns the king-move distance between two squares.
func Chebyshev(a, b Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func (s Square) String() string {
	if s >= NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses a coordinate such as "b2". Only playable squares are
// accepted.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	if file < 0 || file >= 7 || rank < 0 || rank >= 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return NewSquare(file, rank), nil
}

// PlayableSquares iterates over the 49 playable squares in increasing raw
// index order. The sequence is restartable.
func PlayableSquares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for sq := A1; sq < NoSquare; sq++ {
			if !sq.Playable() {
				continue
			}
			if !yield(sq) {
				return
			}
		}
	}
}

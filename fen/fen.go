// Package fen converts positions to and from the compact record notation
// used for this game, e.g. "x5o/7/7/7/7/7/o5x x 0 1": seven rank fields from
// rank 7 down, then the side to move, the quiet-halfmove counter, and the
// 1-based fullmove counter.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kapell/ataxx/board"
	"github.com/kapell/ataxx/game"
)

// The distinct failure kinds of Parse. Wrap context is added at the point of
// failure; match with errors.Is.
var (
	ErrNotEnoughParts = errors.New("record needs board, side, halfmove and fullmove fields")
	ErrRankCount      = errors.New("board field must have exactly 7 ranks")
	ErrFileCount      = errors.New("rank does not cover exactly 7 files")
	ErrBadChar        = errors.New("unrecognized board character")
	ErrBadSide        = errors.New("side to move must be x or o")
	ErrBadHalfmove    = errors.New("malformed halfmove field")
	ErrBadFullmove    = errors.New("malformed fullmove field")
)

// StartRecord is the encoding of the starting position.
const StartRecord = "x5o/7/7/7/7/7/o5x x 0 1"

// Encode renders p as a record string. Encode and Parse round-trip every
// reachable position.
func Encode(p *game.Position) string {
	var sb strings.Builder
	x, o, blocked := p.Occupancy(board.X), p.Occupancy(board.O), p.Blocked()
	for rank := 6; rank >= 0; rank-- {
		run := 0
		for file := 0; file < 7; file++ {
			sq := board.NewSquare(file, rank)
			var c byte
			switch {
			case x.Occupied(sq):
				c = 'x'
			case o.Occupied(sq):
				c = 'o'
			case blocked.Occupied(sq):
				c = '-'
			default:
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte(byte('0' + run))
				run = 0
			}
			sb.WriteByte(c)
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	fullmove := p.Ply()/2 + 1
	fmt.Fprintf(&sb, " %v %d %d", p.Turn(), p.QuietHalfmoves(), fullmove)
	return sb.String()
}

// Parse decodes a record string into a position.
func Parse(record string) (game.Position, error) {
	fields := strings.Fields(record)
	if len(fields) < 4 {
		return game.Position{}, fmt.Errorf("%w: got %d fields", ErrNotEnoughParts, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 7 {
		return game.Position{}, fmt.Errorf("%w: got %d", ErrRankCount, len(ranks))
	}

	var x, o, blocked board.Bitboard
	for i, rankField := range ranks {
		rank := 6 - i
		file := 0
		for _, c := range rankField {
			if c >= '0' && c <= '9' {
				file += int(c - '0')
				continue
			}
			if file >= 7 {
				return game.Position{}, fmt.Errorf("%w: rank %d overflows", ErrFileCount, rank+1)
			}
			sq := board.NewSquare(file, rank)
			switch c {
			case 'x':
				x |= sq.Bitboard()
			case 'o':
				o |= sq.Bitboard()
			case '-':
				blocked |= sq.Bitboard()
			default:
				return game.Position{}, fmt.Errorf("%w: %q in rank %d", ErrBadChar, c, rank+1)
			}
			file++
		}
		if file != 7 {
			return game.Position{}, fmt.Errorf("%w: rank %d covers %d", ErrFileCount, rank+1, file)
		}
	}

	var sideOffset int
	switch fields[1] {
	case "x":
		sideOffset = 0
	case "o":
		sideOffset = 1
	default:
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadSide, fields[1])
	}

	halfmove, err := strconv.Atoi(fields[2])
	if err != nil || halfmove < 0 || halfmove > 255 {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadHalfmove, fields[2])
	}

	fullmove, err := strconv.Atoi(fields[3])
	if err != nil || fullmove < 1 {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadFullmove, fields[3])
	}

	ply := (fullmove-1)*2 + sideOffset
	return game.NewPositionFromParts(x, o, blocked, ply, halfmove), nil
}

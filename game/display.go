package game

import (
	"fmt"
	"strings"

	"github.com/kapell/ataxx/board"
)

// String draws the playable board with rank 7 on top, for logs and the
// interactive shell.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 6; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 7; file++ {
			sq := board.NewSquare(file, rank)
			switch {
			case p.x.Occupied(sq):
				sb.WriteString("x ")
			case p.o.Occupied(sq):
				sb.WriteString("o ")
			case p.walls.Occupied(sq):
				sb.WriteString("# ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g\n")
	fmt.Fprintf(&sb, "%v to move, halfmove %d, ply %d", p.Turn(), p.halfmove, p.ply)
	return sb.String()
}

// Package features exports occupancy planes as compressed cell indices for
// external consumers such as a learned evaluator.
package features

import (
	"github.com/kapell/ataxx/board"
	"github.com/kapell/ataxx/game"
)

const (
	// PlaneSize is the number of playable cells, one plane slot per cell.
	PlaneSize = 49
	// NumPlanes covers the mover, the opponent, and the blocked cells.
	NumPlanes = 3
	// VectorSize is the total index space.
	VectorSize = PlaneSize * NumPlanes
)

// Export emits the compressed index of every cell the side to move occupies,
// then the opponent's cells offset by PlaneSize, then the blocked interior
// cells offset by twice PlaneSize. Indices come out in increasing order
// within each plane and always fall inside [0, VectorSize).
func Export(p *game.Position, emit func(index int)) {
	emitPlane(p.Occupancy(p.Turn()), 0, emit)
	emitPlane(p.Occupancy(p.Turn().Other()), PlaneSize, emit)
	emitPlane(p.Blocked(), 2*PlaneSize, emit)
}

func emitPlane(bb board.Bitboard, offset int, emit func(index int)) {
	for ; bb != 0; bb &= bb - 1 {
		emit(offset + bb.Low().Compressed())
	}
}

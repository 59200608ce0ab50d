package board

import (
	"testing"

	"github.com/matryer/is"
)

func bb(sqs ...Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b |= sq.Bitboard()
	}
	return b
}

func TestExpandCenter(t *testing.T) {
	is := is.New(t)
	// A lone interior piece dilates to the full 3x3 block around it.
	is.Equal(D4.Bitboard().Expand(), bb(C3, D3, E3, C4, D4, E4, C5, D5, E5))
}

func TestExpandCorner(t *testing.T) {
	is := is.New(t)
	is.Equal(A1.Bitboard().Expand(), bb(A1, B1, A2, B2))
	is.Equal(G7.Bitboard().Expand(), bb(F6, G6, F7, G7))
}

func TestExpandClipsWalls(t *testing.T) {
	is := is.New(t)
	// g4 sits on the playable edge; nothing spills into file h.
	is.Equal(G4.Bitboard().Expand(), bb(F3, G3, F4, G4, F5, G5))
	// a7 sits under the walled-off rank 8.
	is.Equal(A7.Bitboard().Expand(), bb(A6, B6, A7, B7))
}

func TestExpandUnion(t *testing.T) {
	is := is.New(t)
	got := bb(A1, C1).Expand()
	want := bb(A1, B1, C1, D1, A2, B2, C2, D2)
	is.Equal(got, want)
}

func TestExpandStaysPlayable(t *testing.T) {
	is := is.New(t)
	is.Equal(Playable.Expand(), Playable)
	is.Equal(Bitboard(0).Expand(), Bitboard(0))
}

func TestPlayableCount(t *testing.T) {
	is := is.New(t)
	is.Equal(Playable.Count(), 49)
}

func TestLow(t *testing.T) {
	is := is.New(t)
	is.Equal(bb(C2, G7).Low(), C2)
}

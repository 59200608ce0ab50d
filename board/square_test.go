package board

import (
	"slices"
	"testing"

	"github.com/matryer/is"
)

func TestSquareCoords(t *testing.T) {
	is := is.New(t)
	is.Equal(NewSquare(1, 2), B3)
	is.Equal(B3.File(), 1)
	is.Equal(B3.Rank(), 2)
	is.Equal(B3.String(), "b3")
	is.Equal(NoSquare.String(), "-")
}

func TestParseSquare(t *testing.T) {
	is := is.New(t)
	for sq := range PlayableSquares() {
		parsed, err := ParseSquare(sq.String())
		is.NoErr(err)
		is.Equal(parsed, sq)
	}
	for _, bad := range []string{"", "a", "a1b", "h1", "a8", "z3", "1a", "aa"} {
		_, err := ParseSquare(bad)
		is.True(err != nil)
	}
}

func TestChebyshev(t *testing.T) {
	is := is.New(t)
	is.Equal(Chebyshev(A1, A1), 0)
	is.Equal(Chebyshev(A1, B2), 1)
	is.Equal(Chebyshev(A1, C2), 2)
	is.Equal(Chebyshev(C2, A1), 2)
	is.Equal(Chebyshev(A1, G7), 6)
}

func TestCompressedRoundTrip(t *testing.T) {
	is := is.New(t)
	for sq := range PlayableSquares() {
		c := sq.Compressed()
		is.True(c >= 0 && c < 49)
		is.Equal(FromCompressed(c), sq)
	}
}

func TestPlayableSquares(t *testing.T) {
	is := is.New(t)
	first := slices.Collect(PlayableSquares())
	is.Equal(len(first), 49)
	is.True(slices.IsSorted(first))
	for _, sq := range first {
		is.True(sq.Playable())
	}
	// The sequence restarts from the beginning each time.
	second := slices.Collect(PlayableSquares())
	is.Equal(first, second)
}

package board

// Player identifies one of the two sides. X always moves first.
type Player uint8

const (
	X Player = iota
	O
)

// Other returns the opposing side.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == X {
		return "x"
	}
	return "o"
}

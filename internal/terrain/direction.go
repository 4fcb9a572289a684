package terrain

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Offset returns the grid offset one step in this direction. The default
// convention is map-style: row 0 is the northern edge, so north is y-1 and
// south is y+1. With northPositiveY set the vertical axis flips; east and
// west are unaffected.
func (d Direction) Offset(northPositiveY bool) (dx, dy int) {
	switch d {
	case North:
		dy = -1
	case South:
		dy = 1
	case East:
		dx = 1
	case West:
		dx = -1
	}
	if northPositiveY {
		dy = -dy
	}
	return dx, dy
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

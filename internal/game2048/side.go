package game2048

// Side is one of the four edges of the board. It doubles as a viewing
// perspective: seen from Side s, increasing row always points toward s.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists all sides in clockwise order starting at North.
var Sides = [4]Side{North, East, South, West}

// sideTransform holds the affine map from view to physical coordinates.
type sideTransform struct {
	col0, row0 int // Origin offsets, in units of size-1
	dcol, drow int
}

var transforms = [4]sideTransform{
	North: {col0: 0, row0: 0, dcol: 0, drow: 1},
	East:  {col0: 0, row0: 1, dcol: 1, drow: 0},
	South: {col0: 1, row0: 1, dcol: 0, drow: -1},
	West:  {col0: 1, row0: 0, dcol: -1, drow: 0},
}

// Col returns the physical column of view coordinates (c, r) on a board of
// the given size.
func (s Side) Col(c, r, size int) int {
	t := transforms[s]
	return t.col0*(size-1) + c*t.drow + r*t.dcol
}

// Row returns the physical row of view coordinates (c, r) on a board of
// the given size.
func (s Side) Row(c, r, size int) int {
	t := transforms[s]
	return t.row0*(size-1) - c*t.dcol + r*t.drow
}

// Opposite returns the side across the board.
func (s Side) Opposite() Side {
	return Sides[(s+2)%4]
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= North && s <= West
}

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseSide converts a name ("north", "up", "n", ...) to a Side.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "north", "up", "n", "u":
		return North, true
	case "east", "right", "e", "r":
		return East, true
	case "south", "down", "s", "d":
		return South, true
	case "west", "left", "w", "l":
		return West, true
	}
	return North, false
}

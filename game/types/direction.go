package types

// Direction is a cardinal heading.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// DefaultDirection is the heading of a freshly initialized snake.
const DefaultDirection = RIGHT

// ParseDirection maps a key name to a heading. Names other than
// "Up", "Down", "Left" and "Right" yield NONE, false.
func ParseDirection(key string) (Direction, bool) {
	switch key {
	case "Up":
		return UP, true
	case "Down":
		return DOWN, true
	case "Left":
		return LEFT, true
	case "Right":
		return RIGHT, true
	default:
		return NONE, false
	}
}

// Offset returns the displacement of one cell in direction d.
func (d Direction) Offset() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -CellSize}
	case RIGHT:
		return Point{X: CellSize, Y: 0}
	case DOWN:
		return Point{X: 0, Y: CellSize}
	case LEFT:
		return Point{X: -CellSize, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "Up"
	case RIGHT:
		return "Right"
	case DOWN:
		return "Down"
	case LEFT:
		return "Left"
	default:
		return "None"
	}
}

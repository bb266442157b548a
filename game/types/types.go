package types

import "time"

// Grid geometry
const (
	CellSize   = 10  // Movement step and drawing quantum
	GridExtent = 400 // Width and height of the playing field
	GridCells  = GridExtent / CellSize
)

// Game constants
const (
	TickInterval  = 100 * time.Millisecond
	BonusPoints   = 2 // Three equal colors on a stride
	NormalCatch   = 1
	RepeatedCatch = 2 // Same color as the last food collected
)

// Point is a cell position in canvas units.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies inside [0, GridExtent) on both axes.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < GridExtent && p.Y >= 0 && p.Y < GridExtent
}

// StartPosition is where every round's head is placed.
var StartPosition = Point{X: 200, Y: 200}

// Package scene is the retained model behind the window: a display list
// the game draws into, the score label and the restart button. The ui
// package replays it with raylib every frame.
package scene

import (
	"color-snake/game/types"
)

// ShapeKind identifies a display list entry.
type ShapeKind int

const (
	RectShape ShapeKind = iota
	OvalShape
	LineShape
	TextShape
)

// Shape is one drawing command. Rect and Oval use X, Y, W, H; Line uses
// X, Y, X2, Y2; Text is centered on X, Y.
type Shape struct {
	Kind ShapeKind
	X, Y int
	W, H int
	X2   int
	Y2   int
	Fill types.Color
	Text string
	Size int
}

// DisplayList keeps shapes until the next Clear, like a retained canvas.
type DisplayList struct {
	shapes []Shape
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Clear() {
	d.shapes = d.shapes[:0]
}

func (d *DisplayList) Rect(x, y, w, h int, fill types.Color) {
	d.shapes = append(d.shapes, Shape{Kind: RectShape, X: x, Y: y, W: w, H: h, Fill: fill})
}

func (d *DisplayList) Oval(x, y, w, h int, fill types.Color) {
	d.shapes = append(d.shapes, Shape{Kind: OvalShape, X: x, Y: y, W: w, H: h, Fill: fill})
}

func (d *DisplayList) Line(x1, y1, x2, y2 int, fill types.Color) {
	d.shapes = append(d.shapes, Shape{Kind: LineShape, X: x1, Y: y1, X2: x2, Y2: y2, Fill: fill})
}

func (d *DisplayList) Text(x, y int, s string, fill types.Color, size int) {
	d.shapes = append(d.shapes, Shape{Kind: TextShape, X: x, Y: y, Fill: fill, Text: s, Size: size})
}

// Shapes returns the current list in drawing order. The slice is only
// valid until the next drawing call.
func (d *DisplayList) Shapes() []Shape {
	return d.shapes
}

func (d *DisplayList) Len() int {
	return len(d.shapes)
}

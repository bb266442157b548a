package game

import (
	"color-snake/game/types"
)

// Scenery
const (
	StripeWidth = 20
)

// Render clears the canvas and redraws the whole scene: striped
// background, grid lines, snake segments, then the food.
func (g *Game) Render() {
	c := g.host.Canvas
	c.Clear()
	drawStripes(c)
	drawGrid(c)

	for i, p := range g.snake.Body {
		c.Rect(p.X, p.Y, types.CellSize, types.CellSize, g.snake.ColorAt(i, types.DefaultColor))
	}

	c.Oval(g.food.Pos.X, g.food.Pos.Y, types.CellSize, types.CellSize, g.food.Color)
}

// drawStripes paints vertical bands alternating between two grays.
func drawStripes(c Canvas) {
	for x := 0; x < types.GridExtent; x += StripeWidth {
		fill := types.DarkGray
		if x%(2*StripeWidth) == 0 {
			fill = types.LightGray
		}
		c.Rect(x, 0, StripeWidth, types.GridExtent, fill)
	}
}

func drawGrid(c Canvas) {
	for x := 0; x <= types.GridExtent; x += types.CellSize {
		c.Line(x, 0, x, types.GridExtent, types.Gray)
	}
	for y := 0; y <= types.GridExtent; y += types.CellSize {
		c.Line(0, y, types.GridExtent, y, types.Gray)
	}
}

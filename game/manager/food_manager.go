package manager

import (
	"color-snake/game/types"

	"golang.org/x/exp/rand"
)

// Food is the single collectable item on the grid.
type Food struct {
	Pos   types.Point
	Color types.Color
}

// FoodManager places food. It remembers the color of the last food it
// produced so that two consecutive foods never share a color.
type FoodManager struct {
	rng       *rand.Rand
	palette   []types.Color
	lastColor types.Color
}

func NewFoodManager(rng *rand.Rand, palette []types.Color) *FoodManager {
	return &FoodManager{
		rng:     rng,
		palette: palette,
	}
}

// PlaceFood draws a uniformly random cell and a palette color different
// from the previous food's color. The snake's body is not consulted, so
// food can appear underneath it.
func (fm *FoodManager) PlaceFood() Food {
	pos := types.Point{
		X: fm.rng.Intn(types.GridCells) * types.CellSize,
		Y: fm.rng.Intn(types.GridCells) * types.CellSize,
	}
	return Food{Pos: pos, Color: fm.nextColor()}
}

func (fm *FoodManager) nextColor() types.Color {
	color := fm.palette[fm.rng.Intn(len(fm.palette))]
	for color == fm.lastColor {
		color = fm.palette[fm.rng.Intn(len(fm.palette))]
	}
	fm.lastColor = color
	return color
}

// LastColor is the color of the most recently placed food.
func (fm *FoodManager) LastColor() types.Color {
	return fm.lastColor
}

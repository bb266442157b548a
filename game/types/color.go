package types

// Color is a named color label. Segments, food and scenery all carry one;
// the ui package decides what each name looks like on screen.
type Color string

const (
	NoColor   Color = ""
	Red       Color = "red"
	Blue      Color = "blue"
	Green     Color = "green"
	Orange    Color = "orange"
	Gray      Color = "gray"
	LightGray Color = "lightgray"
	DarkGray  Color = "darkgray"
	Black     Color = "black"
)

// FoodPalette is the pool food colors are drawn from.
var FoodPalette = []Color{Red, Blue, Green, Orange}

// Snake colors
const (
	StartColor   = Green // Head of a new round
	DefaultColor = Green // Fills a color slot missing after a move
)

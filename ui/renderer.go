package ui

import (
	"color-snake/game/types"
	"color-snake/ui/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window layout: the canvas on top, the score label and the restart
// button stacked underneath.
const (
	CanvasSize    = types.GridExtent
	borderPadding = 6
	labelFontSize = 20
	buttonWidth   = 90
	buttonHeight  = 28
	WindowWidth   = CanvasSize
	WindowHeight  = CanvasSize + borderPadding*4 + labelFontSize + buttonHeight
)

// RestartBounds is where the restart button sits in the window.
var RestartBounds = scene.Bounds{
	X: (WindowWidth - buttonWidth) / 2,
	Y: CanvasSize + borderPadding*3 + labelFontSize,
	W: buttonWidth,
	H: buttonHeight,
}

var palette = map[types.Color]rl.Color{
	types.Red:       rl.Red,
	types.Blue:      rl.Blue,
	types.Green:     rl.Green,
	types.Orange:    rl.Orange,
	types.Gray:      rl.Gray,
	types.LightGray: rl.LightGray,
	types.DarkGray:  rl.DarkGray,
	types.Black:     rl.Black,
}

// colorOf maps a color label to raylib. Unknown labels draw magenta so
// they stand out.
func colorOf(c types.Color) rl.Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return rl.Magenta
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw replays the display list onto a black canvas and draws the
// widgets below it.
func (r *Renderer) Draw(list *scene.DisplayList, score *scene.Label, restart *scene.Button) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	rl.DrawRectangle(0, 0, CanvasSize, CanvasSize, rl.Black)
	for _, s := range list.Shapes() {
		drawShape(s)
	}

	// Score label
	labelWidth := rl.MeasureText(score.Text(), labelFontSize)
	rl.DrawText(score.Text(), (r.screenWidth-labelWidth)/2, CanvasSize+borderPadding*2, labelFontSize, rl.Black)

	drawButton(restart)

	rl.EndDrawing()
}

func drawShape(s scene.Shape) {
	col := colorOf(s.Fill)
	switch s.Kind {
	case scene.RectShape:
		rl.DrawRectangle(int32(s.X), int32(s.Y), int32(s.W), int32(s.H), col)
		rl.DrawRectangleLines(int32(s.X), int32(s.Y), int32(s.W), int32(s.H), rl.Black)
	case scene.OvalShape:
		cx := int32(s.X + s.W/2)
		cy := int32(s.Y + s.H/2)
		rl.DrawEllipse(cx, cy, float32(s.W)/2, float32(s.H)/2, col)
		rl.DrawEllipseLines(cx, cy, float32(s.W)/2, float32(s.H)/2, rl.Black)
	case scene.LineShape:
		rl.DrawLine(int32(s.X), int32(s.Y), int32(s.X2), int32(s.Y2), col)
	case scene.TextShape:
		size := int32(s.Size)
		w := rl.MeasureText(s.Text, size)
		rl.DrawText(s.Text, int32(s.X)-w/2, int32(s.Y)-size/2, size, col)
	}
}

func drawButton(b *scene.Button) {
	bg, fg := rl.LightGray, rl.Black
	if !b.Enabled() {
		fg = rl.Gray
	}
	x, y, w, h := int32(b.Bounds.X), int32(b.Bounds.Y), int32(b.Bounds.W), int32(b.Bounds.H)
	rl.DrawRectangle(x, y, w, h, bg)
	rl.DrawRectangleLines(x, y, w, h, fg)
	fontSize := int32(h / 2)
	textWidth := rl.MeasureText(b.Label, fontSize)
	rl.DrawText(b.Label, x+(w-textWidth)/2, y+(h-fontSize)/2, fontSize, fg)
}

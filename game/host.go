package game

import (
	"time"

	"color-snake/game/types"
)

// Canvas is the drawing surface the game writes to. Coordinates are in
// canvas units; the surface is GridExtent wide and high.
type Canvas interface {
	Clear()
	Rect(x, y, w, h int, fill types.Color)
	Oval(x, y, w, h int, fill types.Color)
	Line(x1, y1, x2, y2 int, fill types.Color)
	// Text draws s centered on (x, y).
	Text(x, y int, s string, fill types.Color, size int)
}

// ScoreDisplay shows the score text.
type ScoreDisplay interface {
	SetText(s string)
}

// RestartControl is the affordance that restarts a finished game.
type RestartControl interface {
	SetEnabled(enabled bool)
}

// Scheduler runs fn after d on the game's goroutine.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Host bundles the collaborators the window provides.
type Host struct {
	Canvas  Canvas
	Score   ScoreDisplay
	Restart RestartControl
}

package ui

import (
	"color-snake/ui/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard turns raylib key presses into key names.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll drains the key press queue for this frame and returns the names of
// the keys it knows, in press order.
func (k *Keyboard) Poll() []string {
	var names []string
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if name, ok := scene.KeyName(code); ok {
			names = append(names, name)
		}
	}
	return names
}

// PollClick forwards a left click this frame to b.
func PollClick(b *scene.Button) bool {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return false
	}
	return b.Click(int(rl.GetMouseX()), int(rl.GetMouseY()))
}

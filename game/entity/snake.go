package entity

import (
	"color-snake/game/types"
)

// Snake holds the body cells, head first, and one color per cell.
// Body and Colors are index-aligned once a move has been settled.
type Snake struct {
	Body   []types.Point
	Colors []types.Color
}

func NewSnake(startPos types.Point, color types.Color) *Snake {
	return &Snake{
		Body:   []types.Point{startPos},
		Colors: []types.Color{color},
	}
}

// Move inserts newHead at the front of the body. The color sequence is
// left alone; callers either Grow or RemoveTail afterwards.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// Grow gives the newly inserted head its color.
func (s *Snake) Grow(color types.Color) {
	s.Colors = append(s.Colors, types.NoColor)
	copy(s.Colors[1:], s.Colors)
	s.Colors[0] = color
}

// RemoveTail drops the last cell and the last color.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
	if len(s.Colors) > 0 {
		s.Colors = s.Colors[:len(s.Colors)-1]
	}
}

// Reconcile appends fill when the color sequence is shorter than the body.
// It reports whether a color was added.
func (s *Snake) Reconcile(fill types.Color) bool {
	if len(s.Colors) < len(s.Body) {
		s.Colors = append(s.Colors, fill)
		return true
	}
	return false
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// ColorAt returns the color of segment i, or fill if the sequences are
// momentarily out of step.
func (s *Snake) ColorAt(i int, fill types.Color) types.Color {
	if i < len(s.Colors) {
		return s.Colors[i]
	}
	return fill
}

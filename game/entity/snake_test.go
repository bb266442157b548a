package entity

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"color-snake/game/types"
)

func TestNewSnake(t *testing.T) {
	c := qt.New(t)
	s := NewSnake(types.Point{X: 200, Y: 200}, types.Green)
	c.Assert(s.Body, qt.DeepEquals, []types.Point{{X: 200, Y: 200}})
	c.Assert(s.Colors, qt.DeepEquals, []types.Color{types.Green})
	c.Assert(s.GetHead(), qt.Equals, types.Point{X: 200, Y: 200})
	c.Assert(s.Len(), qt.Equals, 1)
}

func TestMoveAndRemoveTail(t *testing.T) {
	c := qt.New(t)
	s := &Snake{
		Body:   []types.Point{{X: 20, Y: 0}, {X: 10, Y: 0}},
		Colors: []types.Color{types.Blue, types.Red},
	}
	s.Move(types.Point{X: 30, Y: 0})
	c.Assert(s.Body, qt.DeepEquals, []types.Point{{X: 30, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 0}})
	c.Assert(s.Colors, qt.HasLen, 2)

	s.RemoveTail()
	c.Assert(s.Body, qt.DeepEquals, []types.Point{{X: 30, Y: 0}, {X: 20, Y: 0}})
	c.Assert(s.Colors, qt.DeepEquals, []types.Color{types.Blue})

	c.Assert(s.Reconcile(types.Green), qt.IsTrue)
	c.Assert(s.Colors, qt.DeepEquals, []types.Color{types.Blue, types.Green})
	c.Assert(s.Reconcile(types.Green), qt.IsFalse)
}

func TestGrow(t *testing.T) {
	c := qt.New(t)
	s := NewSnake(types.Point{X: 200, Y: 200}, types.Green)
	s.Move(types.Point{X: 210, Y: 200})
	s.Grow(types.Orange)
	c.Assert(s.Len(), qt.Equals, 2)
	c.Assert(s.Colors, qt.DeepEquals, []types.Color{types.Orange, types.Green})
	c.Assert(s.Reconcile(types.Green), qt.IsFalse)
}

func TestColorAt(t *testing.T) {
	c := qt.New(t)
	s := NewSnake(types.Point{}, types.Red)
	s.Move(types.Point{X: 10})
	c.Assert(s.ColorAt(0, types.Green), qt.Equals, types.Red)
	c.Assert(s.ColorAt(1, types.Green), qt.Equals, types.Green)
}

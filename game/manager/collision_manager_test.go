package manager

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"color-snake/game/entity"
	"color-snake/game/types"
)

func snakeAt(points ...types.Point) *entity.Snake {
	colors := make([]types.Color, len(points))
	for i := range colors {
		colors[i] = types.Green
	}
	return &entity.Snake{Body: points, Colors: colors}
}

func TestCheckCollisions(t *testing.T) {
	tests := []struct {
		about string
		snake *entity.Snake
		want  CollisionType
	}{{
		about: "single segment in the middle",
		snake: snakeAt(types.Point{X: 200, Y: 200}),
		want:  NoCollision,
	}, {
		about: "corner cells are inside",
		snake: snakeAt(types.Point{X: 390, Y: 0}, types.Point{X: 0, Y: 390}),
		want:  NoCollision,
	}, {
		about: "right wall",
		snake: snakeAt(types.Point{X: 400, Y: 200}),
		want:  WallCollision,
	}, {
		about: "bottom wall",
		snake: snakeAt(types.Point{X: 200, Y: 400}),
		want:  WallCollision,
	}, {
		about: "left wall",
		snake: snakeAt(types.Point{X: -10, Y: 200}),
		want:  WallCollision,
	}, {
		about: "top wall",
		snake: snakeAt(types.Point{X: 200, Y: -10}),
		want:  WallCollision,
	}, {
		about: "head on body",
		snake: snakeAt(
			types.Point{X: 20, Y: 20},
			types.Point{X: 30, Y: 20},
			types.Point{X: 30, Y: 30},
			types.Point{X: 20, Y: 30},
			types.Point{X: 20, Y: 20},
		),
		want: SelfCollision,
	}, {
		about: "duplicate anywhere in the body",
		snake: snakeAt(
			types.Point{X: 50, Y: 50},
			types.Point{X: 60, Y: 50},
			types.Point{X: 60, Y: 50},
		),
		want: SelfCollision,
	}}
	cm := NewCollisionManager()
	for _, test := range tests {
		t.Run(test.about, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(cm.CheckCollision(test.snake), qt.Equals, test.want)
			c.Assert(cm.CheckCollisions(test.snake), qt.Equals, test.want != NoCollision)
		})
	}
}

func TestIsFoodCollision(t *testing.T) {
	c := qt.New(t)
	cm := NewCollisionManager()
	food := Food{Pos: types.Point{X: 210, Y: 200}, Color: types.Blue}
	c.Assert(cm.IsFoodCollision(types.Point{X: 210, Y: 200}, food), qt.IsTrue)
	c.Assert(cm.IsFoodCollision(types.Point{X: 200, Y: 200}, food), qt.IsFalse)
}

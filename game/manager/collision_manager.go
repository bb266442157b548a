package manager

import (
	"color-snake/game/entity"
	"color-snake/game/types"
)

// CollisionType tells a wall hit from a self hit. The game itself only
// cares whether there was a collision; the type is kept for logging.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// CheckCollision classifies the snake's current position.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if cm.hasDuplicate(snake.Body) {
		return SelfCollision
	}
	return NoCollision
}

// CheckCollisions reports whether the round must end.
func (cm *CollisionManager) CheckCollisions(snake *entity.Snake) bool {
	return cm.CheckCollision(snake) != NoCollision
}

// isWallCollision checks if a position has left the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !pos.InBounds()
}

// hasDuplicate compares the body length with the number of distinct cells.
func (cm *CollisionManager) hasDuplicate(body []types.Point) bool {
	seen := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		seen[p] = struct{}{}
	}
	return len(seen) != len(body)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food Food) bool {
	return pos == food.Pos
}

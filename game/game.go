package game

import (
	"fmt"
	"time"

	"color-snake/game/entity"
	"color-snake/game/manager"
	"color-snake/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Game over banner
const (
	GameOverText     = "Game Over!"
	GameOverFontSize = 24
)

// Game is the controller: it owns all round state, reacts to key names,
// advances the simulation on the scheduler and draws onto the host canvas.
// It is not safe for concurrent use; the host calls it from one goroutine.
type Game struct {
	UUID      string // Current round
	StartTime time.Time

	snake     *entity.Snake
	direction types.Direction
	food      manager.Food

	collisionMgr *manager.CollisionManager
	foodMgr      FoodPlacer
	scoreMgr     *manager.ScoreManager
	stateMgr     *manager.StateManager

	host         Host
	sched        Scheduler
	tickInterval time.Duration
	log          *zap.Logger
}

// FoodPlacer produces the next food item.
type FoodPlacer interface {
	PlaceFood() manager.Food
}

// NewGame builds a game in the Ready phase. Nothing is drawn or scheduled
// until Initialize is called.
func NewGame(host Host, sched Scheduler, rng *rand.Rand, tickInterval time.Duration, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	if tickInterval <= 0 {
		tickInterval = types.TickInterval
	}
	return &Game{
		collisionMgr: manager.NewCollisionManager(),
		foodMgr:      manager.NewFoodManager(rng, types.FoodPalette),
		scoreMgr:     manager.NewScoreManager(),
		stateMgr:     manager.NewStateManager(),
		host:         host,
		sched:        sched,
		tickInterval: tickInterval,
		log:          log,
	}
}

// Initialize starts a round: fresh snake, default direction, new food,
// zero score. Input is accepted from here on and the first tick runs
// immediately.
func (g *Game) Initialize() {
	g.reset()
	round := g.stateMgr.Begin()
	g.log.Info("round started",
		zap.String("round", g.UUID),
		zap.Uint64("number", round),
		zap.Int("food_x", g.food.Pos.X),
		zap.Int("food_y", g.food.Pos.Y),
		zap.String("food_color", string(g.food.Color)),
	)
	g.updateScore()
	g.tick(round)
}

func (g *Game) reset() {
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.snake = entity.NewSnake(types.StartPosition, types.StartColor)
	g.direction = types.DefaultDirection
	g.food = g.PlaceFood()
	g.scoreMgr.Reset()
}

// HandleInput sets the heading from a key name. Reversing into the body
// is allowed. Unknown names, and any key outside the Running phase, are
// ignored.
func (g *Game) HandleInput(key string) {
	if !g.stateMgr.AcceptsInput() {
		return
	}
	if dir, ok := types.ParseDirection(key); ok {
		g.direction = dir
	}
}

// PlaceFood returns a new food item. See manager.FoodManager.
func (g *Game) PlaceFood() manager.Food {
	return g.foodMgr.PlaceFood()
}

// Advance runs one simulation step without drawing.
func (g *Game) Advance() {
	newHead := g.snake.GetHead().Add(g.direction.Offset())
	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		eaten := g.food
		g.snake.Grow(eaten.Color)
		delta := g.scoreMgr.Collect(eaten.Color)
		g.food = g.PlaceFood()
		g.log.Debug("food eaten",
			zap.String("round", g.UUID),
			zap.String("color", string(eaten.Color)),
			zap.Int("delta", delta),
			zap.Int("score", g.scoreMgr.Points),
			zap.Int("length", g.snake.Len()),
		)
	} else {
		g.snake.RemoveTail()
	}

	g.snake.Reconcile(types.DefaultColor)

	if bonus := g.scoreMgr.AwardBonus(g.snake.Colors); bonus > 0 {
		g.log.Debug("color bonus",
			zap.String("round", g.UUID),
			zap.Int("delta", bonus),
			zap.Int("score", g.scoreMgr.Points),
		)
	}
}

// CheckCollisions reports whether the head has left the grid or the body
// overlaps itself.
func (g *Game) CheckCollisions() bool {
	return g.collisionMgr.CheckCollisions(g.snake)
}

// GameOver shows the banner, stops accepting input and enables restart.
func (g *Game) GameOver() {
	if !g.stateMgr.End() {
		return
	}
	center := types.GridExtent / 2
	g.host.Canvas.Text(center, center, GameOverText, types.Red, GameOverFontSize)
	g.host.Restart.SetEnabled(true)
	g.log.Info("game over",
		zap.String("round", g.UUID),
		zap.String("collision", g.collisionMgr.CheckCollision(g.snake).String()),
		zap.Int("score", g.scoreMgr.Points),
		zap.Int("length", g.snake.Len()),
		zap.Duration("duration", time.Since(g.StartTime)),
	)
}

// Restart clears the surface, resets the score display, disables the
// restart control and initializes a new round.
func (g *Game) Restart() {
	g.host.Canvas.Clear()
	g.scoreMgr.Reset()
	g.updateScore()
	g.host.Restart.SetEnabled(false)
	g.Initialize()
}

// Tick is the scheduler callback for the current round.
func (g *Game) Tick() {
	g.tick(g.stateMgr.Round())
}

func (g *Game) tick(round uint64) {
	if !g.stateMgr.IsCurrent(round) {
		return
	}
	if g.CheckCollisions() {
		g.GameOver()
		return
	}
	g.Advance()
	g.Render()
	g.updateScore()
	g.sched.After(g.tickInterval, func() { g.tick(round) })
}

func (g *Game) updateScore() {
	g.host.Score.SetText(ScoreText(g.scoreMgr.Points))
}

// ScoreText formats a score the way the score display shows it.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func (g *Game) Phase() manager.Phase {
	return g.stateMgr.Phase()
}

func (g *Game) Score() int {
	return g.scoreMgr.Points
}

func (g *Game) LastCollected() types.Color {
	return g.scoreMgr.LastCollected
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() manager.Food {
	return g.food
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

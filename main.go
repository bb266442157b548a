package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"color-snake/config"
	"color-snake/game"
	"color-snake/game/scheduler"
	"color-snake/logger"
	"color-snake/ui"
	"color-snake/ui/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	speed := flag.Int("speed", 0, "Tick interval in milliseconds (0 = config value)")
	seed := flag.Uint64("seed", 0, "Random seed for food placement (0 = time based)")
	debug := flag.Bool("debug", false, "Log at debug level to the console")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *speed > 0 {
		cfg.TickInterval = time.Duration(*speed) * time.Millisecond
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debug {
		cfg.Log = config.LogConfig{Level: "debug", Development: true}
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting",
		zap.String("title", cfg.Title),
		zap.Duration("tick_interval", cfg.TickInterval),
		zap.Uint64("seed", cfg.Seed),
	)

	rl.InitWindow(ui.WindowWidth, ui.WindowHeight, cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(cfg.FPS)
	// Escape is an ordinary key for the game; only closing the window quits.
	rl.SetExitKey(0)

	canvas := scene.NewDisplayList()
	scoreLabel := scene.NewLabel(game.ScoreText(0))
	restartButton := scene.NewButton("Restart", ui.RestartBounds, nil)
	timers := scheduler.New(time.Now)

	g := game.NewGame(
		game.Host{Canvas: canvas, Score: scoreLabel, Restart: restartButton},
		timers,
		rand.New(rand.NewSource(cfg.Seed)),
		cfg.TickInterval,
		log,
	)
	restartButton.OnClick(g.Restart)
	g.Initialize()

	renderer := ui.NewRenderer()
	keyboard := ui.NewKeyboard()

	for !rl.WindowShouldClose() {
		for _, key := range keyboard.Poll() {
			g.HandleInput(key)
		}
		ui.PollClick(restartButton)
		timers.RunDue()

		renderer.Draw(canvas, scoreLabel, restartButton)
	}

	log.Info("window closed", zap.String("round", g.UUID), zap.Int("score", g.Score()))
}

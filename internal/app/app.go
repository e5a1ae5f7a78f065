package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/render"
)

// Frontend is the graphics and input collaborator driving the loop.
// EndFrame is expected to block until the next tick.
type Frontend interface {
	Open() error
	Close()
	ShouldClose() bool
	Poll() game.Input
	BeginFrame() render.Canvas
	EndFrame()
}

// App is the main application controller that owns the match and runs the frame loop.
type App struct {
	cfg      *config.Config
	frontend Frontend
	rng      game.Rand

	// State
	state *game.GameState
	ball  *game.Ball
	frame int
}

// NewApp creates a new App instance with the given configuration and frontend.
// The serve RNG is seeded once, from the clock when no seed is configured.
func NewApp(cfg *config.Config, fe Frontend) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newApp(cfg, fe, rand.New(rand.NewSource(seed)))
}

func newApp(cfg *config.Config, fe Frontend, rng game.Rand) *App {
	state := game.NewGameState(cfg.PointsToWin)
	state.Debug = cfg.Debug

	return &App{
		cfg:      cfg,
		frontend: fe,
		rng:      rng,
		state:    state,
		ball:     game.NewBall(),
	}
}

// Run opens the frontend and runs frames until it asks to close.
func (a *App) Run() error {
	if err := a.frontend.Open(); err != nil {
		return fmt.Errorf("failed to open %s frontend: %w", a.cfg.Frontend, err)
	}
	defer a.frontend.Close()

	log.Printf("Starting match: frontend=%s points=%d seed=%d", a.cfg.Frontend, a.cfg.PointsToWin, a.cfg.Seed)

	for !a.frontend.ShouldClose() {
		a.Frame()
	}

	log.Printf("Window closed after %d frames, score %d - %d", a.frame, a.state.Scores[game.Left], a.state.Scores[game.Right])
	return nil
}

// Frame runs one tick: input, physics, then drawing.
func (a *App) Frame() {
	a.frame++
	in := a.frontend.Poll()

	prev := *a.state
	game.HandleInput(a.state, a.ball, in, a.rng)
	events := game.Step(a.state, a.ball)
	a.logEvents(prev, events)

	render.Draw(a.frontend.BeginFrame(), a.state, a.ball)
	a.frontend.EndFrame()
}

// logEvents compares the state before the frame with the current one and logs what changed
func (a *App) logEvents(prev game.GameState, events game.Events) {
	if events.Has(game.EventPaddleHit) {
		log.Printf("frame %d: paddle hit, ball velocity (%.1f, %.1f)", a.frame, a.ball.Vel.X, a.ball.Vel.Y)
	}

	if events.Has(game.EventGoal) {
		scorer := 1
		if events.Has(game.EventWin) {
			scorer = a.state.Winner()
		} else if a.state.Scores[game.Right] > prev.Scores[game.Right] {
			scorer = 2
		}
		log.Printf("frame %d: player %d scores, %d - %d", a.frame, scorer, a.state.Scores[game.Left], a.state.Scores[game.Right])
	}

	if events.Has(game.EventWin) {
		log.Printf("frame %d: player %d wins", a.frame, a.state.Winner())
	}

	if prev.Phase != a.state.Phase {
		log.Printf("frame %d: phase %v -> %v", a.frame, prev.Phase, a.state.Phase)
	}

	if prev.Debug != a.state.Debug {
		log.Printf("frame %d: debug overlay %v", a.frame, a.state.Debug)
	}
}

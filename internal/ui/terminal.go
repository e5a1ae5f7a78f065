package ui

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/render"
)

// Terminal is the tcell frontend: it owns the screen, turns key events
// into per-frame input and paces frames at the game tick rate.
type Terminal struct {
	tscreen tcell.Screen
	screen  *Screen
	canvas  *Canvas
	keys    keyTracker

	events  chan tcell.Event
	quit    chan struct{}
	stop    sync.Once
	sigChan chan os.Signal
	ticker  *time.Ticker
	closed  bool
}

// NewTerminal creates a frontend on the real terminal
func NewTerminal() *Terminal {
	return &Terminal{}
}

// NewTerminalWithScreen creates a frontend on the given screen, e.g. a simulation screen
func NewTerminalWithScreen(s tcell.Screen) *Terminal {
	return &Terminal{tscreen: s}
}

// Open initializes the screen and starts event and signal handling
func (t *Terminal) Open() error {
	var err error
	if t.tscreen == nil {
		t.screen, err = InitScreen()
	} else {
		t.screen, err = initScreen(t.tscreen)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	t.canvas = NewCanvas(t.screen)

	t.quit = make(chan struct{})
	t.sigChan = make(chan os.Signal, 1)
	signal.Notify(t.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-t.sigChan:
			t.stopOnce()
		case <-t.quit:
		}
	}()

	t.events = make(chan tcell.Event, 64)
	go t.pump()

	t.ticker = time.NewTicker(time.Second / game.TickRate)
	return nil
}

// pump forwards screen events until the screen is finalized
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Close stops the ticker, restores the terminal and stops signal handling
func (t *Terminal) Close() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
	if t.quit != nil {
		t.stopOnce()
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	if t.sigChan != nil {
		signal.Stop(t.sigChan)
	}
}

func (t *Terminal) stopOnce() {
	t.stop.Do(func() { close(t.quit) })
}

// ShouldClose reports whether a quit key or signal has been received
func (t *Terminal) ShouldClose() bool {
	if t.closed {
		return true
	}
	select {
	case <-t.quit:
		t.closed = true
	default:
	}
	return t.closed
}

// Poll drains pending events and returns this frame's input
func (t *Terminal) Poll() game.Input {
	var seen []game.Action
	for {
		select {
		case ev := <-t.events:
			seen = t.handleEvent(ev, seen)
		default:
			return t.keys.sample(seen)
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event, seen []game.Action) []game.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev.Key(), ev.Rune()) {
			t.closed = true
			return seen
		}
		if a, ok := KeyToAction(ev.Key(), ev.Rune()); ok {
			seen = append(seen, a)
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return seen
}

// BeginFrame returns the canvas sized to the current terminal
func (t *Terminal) BeginFrame() render.Canvas {
	t.canvas.Resize(t.screen.Size())
	return t.canvas
}

// EndFrame shows the frame and waits for the next tick
func (t *Terminal) EndFrame() {
	t.screen.Show()
	<-t.ticker.C
}

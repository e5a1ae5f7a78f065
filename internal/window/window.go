// Package window is a native-window frontend built on raylib.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/render"
)

const Title = "Pong"

// keyMap binds each action to a raylib key code
var keyMap = [game.NumActions]int32{
	game.ActionPause:     rl.KeyP,
	game.ActionServe:     rl.KeySpace,
	game.ActionReset:     rl.KeyR,
	game.ActionDebug:     rl.KeyF3,
	game.ActionLeftUp:    rl.KeyW,
	game.ActionLeftDown:  rl.KeyS,
	game.ActionRightUp:   rl.KeyUp,
	game.ActionRightDown: rl.KeyDown,
}

// Window renders into a fixed-size raylib window; raylib paces frames
type Window struct {
	open bool
}

func New() *Window {
	return &Window{}
}

func (w *Window) Open() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(game.ScreenWidth), int32(game.ScreenHeight), Title)
	rl.SetTargetFPS(game.TickRate)
	w.open = true
	return nil
}

func (w *Window) Close() {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
}

// ShouldClose is true once the window is closed or Escape is pressed
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Poll() game.Input {
	var ks game.KeySet
	for a, key := range keyMap {
		if rl.IsKeyPressed(key) {
			ks.Press(game.Action(a))
		}
		if rl.IsKeyDown(key) {
			ks.Hold(game.Action(a))
		}
	}
	return ks
}

func (w *Window) BeginFrame() render.Canvas {
	rl.BeginDrawing()
	return canvas{}
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

// canvas forwards draw calls to raylib, which already works in court pixels
type canvas struct{}

func color(c render.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (canvas) Clear(c render.Color) {
	rl.ClearBackground(color(c))
}

func (canvas) DrawRect(x, y, w, h int, c render.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), color(c))
}

func (canvas) DrawText(text string, x, y, size int, c render.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), color(c))
}

func (canvas) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}

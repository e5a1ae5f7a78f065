package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want game.Action
		ok   bool
	}{
		{tcell.KeyUp, 0, game.ActionRightUp, true},
		{tcell.KeyDown, 0, game.ActionRightDown, true},
		{tcell.KeyF3, 0, game.ActionDebug, true},
		{tcell.KeyRune, 'w', game.ActionLeftUp, true},
		{tcell.KeyRune, 'W', game.ActionLeftUp, true},
		{tcell.KeyRune, 's', game.ActionLeftDown, true},
		{tcell.KeyRune, 'S', game.ActionLeftDown, true},
		{tcell.KeyRune, 'p', game.ActionPause, true},
		{tcell.KeyRune, 'R', game.ActionReset, true},
		{tcell.KeyRune, ' ', game.ActionServe, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyEnter, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := KeyToAction(tt.key, tt.rune)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("KeyToAction(%v, %q) = %v, %v, want %v, %v", tt.key, tt.rune, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'p') {
		t.Error("'p' should not be quit key")
	}
}

func TestKeyTracker_PressThenHold(t *testing.T) {
	var k keyTracker

	ks := k.sample([]game.Action{game.ActionLeftUp})
	if !ks.Pressed(game.ActionLeftUp) || !ks.Down(game.ActionLeftUp) {
		t.Fatal("first event should press and hold the key")
	}

	// Held for the rest of the window without new events
	for i := 1; i < HoldTicks; i++ {
		ks = k.sample(nil)
		if ks.Pressed(game.ActionLeftUp) {
			t.Errorf("frame %d: key should not be pressed again", i)
		}
		if !ks.Down(game.ActionLeftUp) {
			t.Errorf("frame %d: key should still be down", i)
		}
	}

	ks = k.sample(nil)
	if ks.Down(game.ActionLeftUp) {
		t.Error("key should be released after the hold window")
	}
}

func TestKeyTracker_AutoRepeatDoesNotRetrigger(t *testing.T) {
	var k keyTracker

	ks := k.sample([]game.Action{game.ActionPause})
	if !ks.Pressed(game.ActionPause) {
		t.Fatal("first event should be a press")
	}

	for i := 0; i < 20; i++ {
		ks = k.sample([]game.Action{game.ActionPause})
		if ks.Pressed(game.ActionPause) {
			t.Fatalf("repeat %d: auto-repeat should not press again", i)
		}
	}

	// Released, then pressed again
	for i := 0; i < HoldTicks; i++ {
		k.sample(nil)
	}
	ks = k.sample([]game.Action{game.ActionPause})
	if !ks.Pressed(game.ActionPause) {
		t.Error("a fresh event after release should press again")
	}
}

func TestKeyTracker_Independent(t *testing.T) {
	var k keyTracker

	ks := k.sample([]game.Action{game.ActionLeftDown, game.ActionRightUp})

	if !ks.Down(game.ActionLeftDown) || !ks.Down(game.ActionRightUp) {
		t.Error("both keys should be down")
	}
	if ks.Down(game.ActionLeftUp) || ks.Down(game.ActionRightDown) {
		t.Error("untouched keys should be up")
	}
}

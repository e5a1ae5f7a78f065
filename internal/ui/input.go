package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

// HoldTicks is how long a key counts as held after its last event (~133ms at 60Hz).
// Terminals report presses and auto-repeats but never releases.
const HoldTicks = 8

// KeyToAction converts a key event to a game action.
// Left player uses W/S, right player the arrow keys.
func KeyToAction(key tcell.Key, r rune) (game.Action, bool) {
	switch key {
	case tcell.KeyUp:
		return game.ActionRightUp, true
	case tcell.KeyDown:
		return game.ActionRightDown, true
	case tcell.KeyF3:
		return game.ActionDebug, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.ActionLeftUp, true
		case 's', 'S':
			return game.ActionLeftDown, true
		case 'p', 'P':
			return game.ActionPause, true
		case 'r', 'R':
			return game.ActionReset, true
		case ' ':
			return game.ActionServe, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// keyTracker turns a stream of key events into per-frame pressed/down samples
type keyTracker struct {
	hold [game.NumActions]int
}

// sample consumes the actions seen since the last frame.
// A key is pressed only if it was not already held, so auto-repeat does not retrigger it.
func (k *keyTracker) sample(seen []game.Action) game.KeySet {
	var ks game.KeySet
	for _, a := range seen {
		if k.hold[a] == 0 {
			ks.Press(a)
		}
		k.hold[a] = HoldTicks
	}

	for i := range k.hold {
		if k.hold[i] == 0 {
			continue
		}
		ks.Hold(game.Action(i))
		k.hold[i]--
	}
	return ks
}

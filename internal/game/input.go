package game

// Action is a logical key the game reacts to
type Action int

const (
	ActionPause Action = iota
	ActionServe
	ActionReset
	ActionDebug
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown

	NumActions
)

// Input is one frame's worth of sampled keys.
// Pressed is true only on the frame a key goes down; Down is true while it is held.
type Input interface {
	Pressed(a Action) bool
	Down(a Action) bool
}

// Rand picks the serve direction. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// HandleInput applies one frame of input to the match and the ball
func HandleInput(gs *GameState, b *Ball, in Input, rng Rand) {
	if in.Pressed(ActionPause) {
		gs.TogglePause()
	}

	// Serving works from any phase, WIN included
	if in.Pressed(ActionServe) && !b.Served() {
		if rng.Intn(2) == 1 {
			b.Vel.X = BallSpeed
		} else {
			b.Vel.X = -BallSpeed
		}
		gs.Phase = PhasePlaying
	}

	if in.Pressed(ActionReset) && gs.Phase == PhasePlaying {
		gs.Reset(b)
	}

	if in.Pressed(ActionDebug) {
		gs.Debug = !gs.Debug
	}

	movePaddle(gs, Left, in, ActionLeftUp, ActionLeftDown)
	movePaddle(gs, Right, in, ActionRightUp, ActionRightDown)
}

func movePaddle(gs *GameState, side Side, in Input, up, down Action) {
	var dy float64
	if gs.Active() {
		if in.Down(up) {
			dy -= PaddleSpeed
		}
		if in.Down(down) {
			dy += PaddleSpeed
		}
	}
	gs.Paddles[side].Move(dy)
}

// KeySet is an Input backed by two bitsets, usable by any frontend
type KeySet struct {
	pressed uint32
	down    uint32
}

// Press marks a as pressed this frame; a pressed key is also down
func (k *KeySet) Press(a Action) {
	k.pressed |= 1 << a
	k.down |= 1 << a
}

// Hold marks a as held without a fresh press
func (k *KeySet) Hold(a Action) {
	k.down |= 1 << a
}

func (k KeySet) Pressed(a Action) bool {
	return k.pressed&(1<<a) != 0
}

func (k KeySet) Down(a Action) bool {
	return k.down&(1<<a) != 0
}

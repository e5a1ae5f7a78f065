package game

import "math"

// Events records what happened during a tick
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventGoal
	EventWin
)

// Has reports whether all bits of e2 are set
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// Step advances the ball and the match by one tick.
// Collisions and scoring are evaluated even while paused; only movement stops.
func Step(gs *GameState, b *Ball) Events {
	var ev Events

	// Both paddles are checked; if both overlap, the right paddle's response wins
	for i := range gs.Paddles {
		p := &gs.Paddles[i]
		if !b.Rect().Intersects(p.Rect()) {
			continue
		}
		bounceOffPaddle(gs, b, p)
		ev |= EventPaddleHit
	}

	if b.Pos.Y <= 0 || b.Pos.Y >= ScreenHeight {
		b.BounceVertical()
		ev |= EventWallBounce
	}

	if b.Pos.X <= 0 || b.Pos.X >= ScreenWidth {
		scorer := Left
		if b.Pos.X <= 0 {
			scorer = Right
		}
		gs.Scores[scorer]++
		ev |= EventGoal

		gs.CheckWin()
		if gs.Phase == PhaseWin {
			ev |= EventWin
		}
		gs.Reset(b)
	}

	if gs.Phase != PhasePaused {
		b.Move()
	}

	return ev
}

// bounceOffPaddle sends the ball back and angles it by where it hit the paddle
func bounceOffPaddle(gs *GameState, b *Ball, p *Paddle) {
	// Snap to the paddle on the ball's half of the court
	side := Left
	if b.Pos.X > ScreenWidth/2 {
		side = Right
	}

	offset := b.CenterY() - p.CenterY()

	b.Vel.X = -b.Vel.X
	b.Pos.X = gs.Paddles[side].X

	dir := -1.0
	if offset > 0 {
		dir = 1.0
	}
	b.Vel.Y = dir * math.Min(MaxDeflection, math.Abs(offset))
}

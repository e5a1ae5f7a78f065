package game

// Vec2 is a point or a velocity in court coordinates
type Vec2 struct {
	X, Y float64
}

// Ball is the ball's top-left corner and its velocity per tick.
// A zero VX means the ball has not been served.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// NewBall returns a ball resting at the center of the court
func NewBall() *Ball {
	b := &Ball{}
	b.Recenter()
	return b
}

// Recenter puts the ball back at home and stops it
func (b *Ball) Recenter() {
	b.Pos = Vec2{X: BallHomeX, Y: BallHomeY}
	b.Vel = Vec2{}
}

// Served reports whether the ball has horizontal velocity
func (b *Ball) Served() bool {
	return b.Vel.X != 0
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.Vel.Y = -b.Vel.Y
}

// CenterY returns the vertical center of the ball
func (b *Ball) CenterY() float64 {
	return b.Pos.Y + BallSize/2
}

// Rect returns the ball's bounding box
func (b *Ball) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: BallSize, H: BallSize}
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

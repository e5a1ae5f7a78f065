package game

// Side identifies a paddle and indexes Scores and Paddles
type Side int

const (
	Left  Side = 0
	Right Side = 1
)

// Paddle is a fixed-size rectangle that only moves vertically
type Paddle struct {
	X float64 // Fixed at construction
	Y float64 // Top edge
}

func NewPaddle(side Side) Paddle {
	x := LeftPaddleX
	if side == Right {
		x = RightPaddleX
	}
	return Paddle{X: x, Y: PaddleHomeY}
}

// Move shifts the paddle by dy and keeps it inside the court
func (p *Paddle) Move(dy float64) {
	p.Y = clamp(p.Y+dy, 0, ScreenHeight-PaddleHeight)
}

// Recenter puts the paddle back at its home height
func (p *Paddle) Recenter() {
	p.Y = PaddleHomeY
}

// CenterY returns the vertical center of the paddle
func (p *Paddle) CenterY() float64 {
	return p.Y + PaddleHeight/2
}

// Rect returns the paddle's bounding box
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: PaddleWidth, H: PaddleHeight}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

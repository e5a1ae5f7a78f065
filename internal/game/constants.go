package game

// Court geometry and speeds, in logical pixels and pixels per tick
const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0

	PaddleWidth  = 10.0
	PaddleHeight = 80.0
	PaddleSpeed  = 10.0

	BallSize  = 10.0
	BallSpeed = 10.0 // Serve speed, also the base for paddle deflection

	MaxDeflection = BallSpeed * 1.5

	DefaultWinScore = 2
	TickRate        = 60 // Ticks per second
)

// Paddle columns sit 10% in from each edge
const (
	LeftPaddleX  = ScreenWidth * 0.1
	RightPaddleX = ScreenWidth - ScreenWidth*0.1
)

// Home positions used at start and on every reset
const (
	PaddleHomeY = (ScreenHeight - PaddleHeight) / 2
	BallHomeX   = (ScreenWidth - BallSize) / 2
	BallHomeY   = (ScreenHeight - BallSize) / 2
)

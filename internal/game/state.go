package game

// Phase is the coarse game mode
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseWin
)

var phaseNames = [...]string{
	PhaseStart:   "START",
	PhasePlaying: "PLAYING",
	PhasePaused:  "PAUSED",
	PhaseWin:     "WIN",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// NoWinner is reported by Winner outside of PhaseWin
const NoWinner = 0

// GameState holds everything about the match except the ball
type GameState struct {
	Phase    Phase
	Scores   [2]int // Indexed by Side
	Paddles  [2]Paddle
	Debug    bool
	WinScore int

	winner int // 1 or 2, meaningful only in PhaseWin
}

// NewGameState creates a match waiting for the first serve
func NewGameState(winScore int) *GameState {
	if winScore < 1 {
		winScore = DefaultWinScore
	}
	return &GameState{
		Phase:    PhaseStart,
		Paddles:  [2]Paddle{NewPaddle(Left), NewPaddle(Right)},
		WinScore: winScore,
	}
}

// Winner returns the winning player number (1 = left, 2 = right),
// or NoWinner unless the match is in PhaseWin
func (gs *GameState) Winner() int {
	if gs.Phase != PhaseWin {
		return NoWinner
	}
	return gs.winner
}

// Active reports whether paddles may move this tick
func (gs *GameState) Active() bool {
	return gs.Phase == PhasePlaying
}

// TogglePause flips between playing and paused; other phases are left alone
func (gs *GameState) TogglePause() {
	switch gs.Phase {
	case PhasePlaying:
		gs.Phase = PhasePaused
	case PhasePaused:
		gs.Phase = PhasePlaying
	}
}

// CheckWin moves the match to PhaseWin when a score has reached the threshold.
// The left player is checked first.
func (gs *GameState) CheckWin() {
	switch {
	case gs.Scores[Left] == gs.WinScore:
		gs.winner = 1
		gs.Phase = PhaseWin
	case gs.Scores[Right] == gs.WinScore:
		gs.winner = 2
		gs.Phase = PhaseWin
	}
}

// Reset recenters the paddles and the ball and stops the ball.
// Scores are cleared only when the match has been won.
func (gs *GameState) Reset(b *Ball) {
	for i := range gs.Paddles {
		gs.Paddles[i].Recenter()
	}
	b.Recenter()

	if gs.Phase == PhaseWin {
		gs.Scores = [2]int{}
	}
}

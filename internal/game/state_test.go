package game

import "testing"

func TestNewGameState(t *testing.T) {
	gs := NewGameState(5)

	if gs.Phase != PhaseStart {
		t.Errorf("expected PhaseStart, got %v", gs.Phase)
	}
	if gs.Scores != [2]int{0, 0} {
		t.Errorf("expected zero scores, got %v", gs.Scores)
	}
	if gs.Winner() != NoWinner {
		t.Errorf("expected no winner, got %d", gs.Winner())
	}
	if gs.WinScore != 5 {
		t.Errorf("expected WinScore=5, got %d", gs.WinScore)
	}
	if gs.Debug {
		t.Error("debug overlay should start off")
	}

	if got := NewGameState(0).WinScore; got != DefaultWinScore {
		t.Errorf("expected WinScore=%d for invalid threshold, got %d", DefaultWinScore, got)
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseStart, "START"},
		{PhasePlaying, "PLAYING"},
		{PhasePaused, "PAUSED"},
		{PhaseWin, "WIN"},
		{Phase(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}

func TestGameState_TogglePause(t *testing.T) {
	tests := []struct {
		from Phase
		want Phase
	}{
		{PhasePlaying, PhasePaused},
		{PhasePaused, PhasePlaying},
		{PhaseStart, PhaseStart},
		{PhaseWin, PhaseWin},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			gs := NewGameState(DefaultWinScore)
			gs.Phase = tt.from

			gs.TogglePause()

			if gs.Phase != tt.want {
				t.Errorf("expected %v, got %v", tt.want, gs.Phase)
			}
		})
	}
}

func TestGameState_CheckWin(t *testing.T) {
	tests := []struct {
		name       string
		scores     [2]int
		wantPhase  Phase
		wantWinner int
	}{
		{"no score", [2]int{0, 0}, PhasePlaying, NoWinner},
		{"below threshold", [2]int{1, 1}, PhasePlaying, NoWinner},
		{"left reaches threshold", [2]int{2, 1}, PhaseWin, 1},
		{"right reaches threshold", [2]int{0, 2}, PhaseWin, 2},
		{"over threshold does not count", [2]int{3, 0}, PhasePlaying, NoWinner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(2)
			gs.Phase = PhasePlaying
			gs.Scores = tt.scores

			gs.CheckWin()

			if gs.Phase != tt.wantPhase {
				t.Errorf("expected %v, got %v", tt.wantPhase, gs.Phase)
			}
			if gs.Winner() != tt.wantWinner {
				t.Errorf("expected winner %d, got %d", tt.wantWinner, gs.Winner())
			}

			// Idempotent with unchanged scores
			gs.CheckWin()
			if gs.Phase != tt.wantPhase || gs.Winner() != tt.wantWinner {
				t.Errorf("second CheckWin changed state to %v/%d", gs.Phase, gs.Winner())
			}
		})
	}
}

func TestGameState_WinnerOnlyInWinPhase(t *testing.T) {
	gs := NewGameState(2)
	gs.Scores = [2]int{0, 2}
	gs.CheckWin()

	if gs.Winner() != 2 {
		t.Fatalf("expected winner 2, got %d", gs.Winner())
	}

	gs.Phase = PhasePlaying
	if gs.Winner() != NoWinner {
		t.Errorf("expected no winner outside PhaseWin, got %d", gs.Winner())
	}
}

func TestGameState_Reset(t *testing.T) {
	gs := NewGameState(DefaultWinScore)
	gs.Phase = PhasePlaying
	gs.Scores = [2]int{1, 1}
	gs.Paddles[Left].Y = 0
	gs.Paddles[Right].Y = 520
	ball := NewBall()
	ball.Pos = Vec2{X: 100, Y: 100}
	ball.Vel = Vec2{X: 10, Y: -5}

	gs.Reset(ball)
	first := *gs
	firstBall := *ball

	gs.Reset(ball)

	if *gs != first || *ball != firstBall {
		t.Error("second Reset should not change state")
	}
	if ball.Pos != (Vec2{X: 395, Y: 295}) || ball.Vel != (Vec2{}) {
		t.Errorf("expected centered stopped ball, got %+v", *ball)
	}
	for i, p := range gs.Paddles {
		if p.Y != PaddleHomeY {
			t.Errorf("paddle %d: expected Y=%f, got %f", i, PaddleHomeY, p.Y)
		}
	}
	if gs.Scores != [2]int{1, 1} {
		t.Errorf("Reset outside PhaseWin should keep scores, got %v", gs.Scores)
	}
	if gs.Phase != PhasePlaying {
		t.Errorf("Reset should not change phase, got %v", gs.Phase)
	}
}

func TestGameState_ResetClearsScoresAfterWin(t *testing.T) {
	gs := NewGameState(2)
	gs.Scores = [2]int{2, 1}
	gs.CheckWin()
	ball := NewBall()

	gs.Reset(ball)

	if gs.Scores != [2]int{0, 0} {
		t.Errorf("expected scores cleared after win, got %v", gs.Scores)
	}
	if gs.Phase != PhaseWin {
		t.Errorf("expected phase to stay WIN until the next serve, got %v", gs.Phase)
	}
}

func TestGameState_DebugSurvivesReset(t *testing.T) {
	gs := NewGameState(DefaultWinScore)
	gs.Debug = true

	gs.Reset(NewBall())

	if !gs.Debug {
		t.Error("debug flag should survive Reset")
	}
}

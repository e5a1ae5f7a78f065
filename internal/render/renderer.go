package render

import (
	"fmt"

	"github.com/diegok/duopong/internal/game"
)

const (
	ScoreFontSize  = 64
	BannerFontSize = 64
	DebugFontSize  = 16

	dashSpacing = 20
	dashSize    = 5
)

const (
	screenW = game.ScreenWidth
	screenH = game.ScreenHeight
)

// Draw renders one frame of the match. It never modifies gs or b.
func Draw(c Canvas, gs *game.GameState, b *game.Ball) {
	c.Clear(RayWhite)

	c.DrawText(fmt.Sprintf("%d", gs.Scores[game.Left]), int(screenW*.25), int(screenH/12), ScoreFontSize, Gray)
	c.DrawText(fmt.Sprintf("%d", gs.Scores[game.Right]), int(screenW*.75), int(screenH/12), ScoreFontSize, Gray)

	if gs.Debug {
		c.DrawText(DebugText(gs), 10, int(screenH-5*DebugFontSize), DebugFontSize, DarkGray)
	}

	drawOverlay(c, gs)

	for _, p := range gs.Paddles {
		c.DrawRect(int(p.X), int(p.Y), game.PaddleWidth, game.PaddleHeight, Black)
	}

	// Dashed center line
	lineX := (screenW - 2.5) / 2
	for i := 0; i < int(screenH/dashSpacing); i++ {
		c.DrawRect(int(lineX), i*dashSpacing+5, dashSize, dashSize, Gray)
	}

	c.DrawRect(int(b.Pos.X), int(b.Pos.Y), game.BallSize, game.BallSize, Black)
}

// DebugText is the diagnostic block shown when the debug overlay is on
func DebugText(gs *game.GameState) string {
	l, r := gs.Paddles[game.Left], gs.Paddles[game.Right]
	return fmt.Sprintf("scores: %d, %d\nstate: %d\npositions: (%.1f, %.1f), (%.1f, %.1f)\n",
		gs.Scores[game.Left], gs.Scores[game.Right], int(gs.Phase), l.X, l.Y, r.X, r.Y)
}

// drawOverlay draws the banner for the current phase; nothing while playing
func drawOverlay(c Canvas, gs *game.GameState) {
	switch gs.Phase {
	case game.PhasePaused:
		half := c.MeasureText("PAUSED", BannerFontSize) / 2
		c.DrawText("PAUSED", screenW/2-half, (screenH-half)/2, BannerFontSize, Red)

	case game.PhaseStart:
		half := c.MeasureText("PRESS SPACE", BannerFontSize) / 2
		c.DrawText("PRESS SPACE", screenW/2-half, (screenH-half)/2, BannerFontSize, Red)
		half = c.MeasureText("TO START", BannerFontSize) / 2
		c.DrawText("TO START", screenW/2-half, (screenH-half+BannerFontSize)/2, BannerFontSize, Red)

	case game.PhaseWin:
		text := fmt.Sprintf("PLAYER %d WINNER", gs.Winner())
		half := c.MeasureText(text, BannerFontSize) / 2
		c.DrawText(text, screenW/2-half, (screenH-half+BannerFontSize)/2, BannerFontSize, Red)
	}
}

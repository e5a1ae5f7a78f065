package ui

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/render"
)

// boldFontSize is the smallest font size drawn in bold
const boldFontSize = 32

// Canvas maps the logical court onto the terminal cell grid.
// Every shape covers at least one cell so small objects never vanish.
type Canvas struct {
	screen     *Screen
	cols, rows int
	bg         tcell.Color
}

func NewCanvas(screen *Screen) *Canvas {
	c := &Canvas{screen: screen, bg: tcell.ColorDefault}
	c.Resize(screen.Size())
	return c
}

// Resize updates the grid the court is scaled to
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = cols, rows
}

func (c *Canvas) col(x int) int {
	return int(math.Round(float64(x) * float64(c.cols) / game.ScreenWidth))
}

func (c *Canvas) row(y int) int {
	return int(math.Round(float64(y) * float64(c.rows) / game.ScreenHeight))
}

func (c *Canvas) Clear(col render.Color) {
	c.bg = TermColor(col)
	c.screen.Fill(tcell.StyleDefault.Background(c.bg))
}

func (c *Canvas) DrawRect(x, y, w, h int, col render.Color) {
	x0, y0 := c.col(x), c.row(y)
	x1 := max(x0+1, c.col(x+w))
	y1 := max(y0+1, c.row(y+h))

	style := tcell.StyleDefault.Background(TermColor(col))
	c.screen.FillRect(x0, y0, x1-x0, y1-y0, style, ' ')
}

func (c *Canvas) DrawText(text string, x, y, size int, col render.Color) {
	style := tcell.StyleDefault.Foreground(TermColor(col)).Background(c.bg)
	if size >= boldFontSize {
		style = style.Bold(true)
	}

	x0, y0 := c.col(x), c.row(y)
	for i, line := range strings.Split(text, "\n") {
		c.screen.DrawText(x0, y0+i, line, style)
	}
}

// MeasureText returns the logical width of the cells the widest line occupies.
// Font size has no effect in a terminal.
func (c *Canvas) MeasureText(text string, size int) int {
	if c.cols == 0 {
		return 0
	}
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		widest = max(widest, len([]rune(line)))
	}
	return int(math.Ceil(float64(widest) * game.ScreenWidth / float64(c.cols)))
}

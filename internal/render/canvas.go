// Package render draws a match onto any surface that implements Canvas.
package render

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// Palette, same values as raylib's named colors
var (
	RayWhite = Color{245, 245, 245, 255}
	Gray     = Color{130, 130, 130, 255}
	DarkGray = Color{80, 80, 80, 255}
	Black    = Color{0, 0, 0, 255}
	Red      = Color{230, 41, 55, 255}
)

// Canvas is the drawing surface a frontend provides for one frame.
// Coordinates are logical court pixels; frontends scale as needed.
type Canvas interface {
	Clear(c Color)
	DrawRect(x, y, w, h int, c Color)
	// DrawText draws text with its top-left corner at (x, y). Newlines start a new line.
	DrawText(text string, x, y, size int, c Color)
	MeasureText(text string, size int) int
}

// Package render paints the board into a raster image. The same frame is
// shown on screen and written out as a screenshot.
package render

import (
	"image"
	"image/color"

	"LocalPaint/internal/state"

	"github.com/fogleman/gg"
)

const DefaultRadius = 10

// Frame paints the committed strokes, then current if non-nil, onto a fresh
// w x h image. Every point is a filled disc of the given radius. When
// inverted the background is white and every stroke is drawn in black.
func Frame(w, h int, strokes []state.Stroke, current *state.Stroke, inverted bool, radius float64) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)

	bg := state.Black
	if inverted {
		bg = state.White
	}
	setColor(dc, bg)
	dc.Clear()

	for i := range strokes {
		drawStroke(dc, &strokes[i], inverted, radius)
	}
	if current != nil {
		drawStroke(dc, current, inverted, radius)
	}
	return dc.Image()
}

func drawStroke(dc *gg.Context, s *state.Stroke, inverted bool, radius float64) {
	if len(s.Points) == 0 {
		return
	}
	col := s.Color
	if inverted {
		col = state.Black
	}
	setColor(dc, col)
	for _, p := range s.Points {
		dc.DrawCircle(float64(p.X), float64(p.Y), radius)
	}
	dc.Fill()
}

func setColor(dc *gg.Context, c state.Color) {
	dc.SetColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
}

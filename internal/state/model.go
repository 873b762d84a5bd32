package state

import (
	"github.com/google/uuid"
)

// Point is a pixel position on the board, stored as [x, y] in save files.
type Point struct {
	X, Y int
}

// Color is an opaque RGB triple, stored as [r, g, b] in save files.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// Stroke is one continuous pointer drag: a color picked when the button went
// down and every position recorded until it came back up.
type Stroke struct {
	ID     string  `json:"id"`
	Color  Color   `json:"color"`
	Points []Point `json:"points"`
}

// Canvas holds the committed strokes in drawing order plus at most one
// stroke still being drawn.
type Canvas struct {
	strokes []Stroke
	current *Stroke
}

func NewCanvas() *Canvas {
	return &Canvas{strokes: make([]Stroke, 0)}
}

// Begin starts a new stroke, dropping any stroke already in progress.
func (c *Canvas) Begin(col Color) {
	c.current = &Stroke{
		ID:     uuid.NewString(),
		Color:  col,
		Points: make([]Point, 0, 64),
	}
}

func (c *Canvas) Extend(p Point) {
	if c.current == nil {
		return
	}
	c.current.Points = append(c.current.Points, p)
}

// Commit hands the in-progress stroke over to the committed sequence and
// leaves the slot empty. It reports whether anything was committed.
func (c *Canvas) Commit() bool {
	if c.current == nil {
		return false
	}
	c.strokes = append(c.strokes, *c.current)
	c.current = nil
	return true
}

// Undo removes the most recently committed stroke and returns it. The
// in-progress stroke is never touched.
func (c *Canvas) Undo() (Stroke, bool) {
	if len(c.strokes) == 0 {
		return Stroke{}, false
	}
	last := c.strokes[len(c.strokes)-1]
	c.strokes[len(c.strokes)-1] = Stroke{}
	c.strokes = c.strokes[:len(c.strokes)-1]
	return last, true
}

func (c *Canvas) Clear() {
	c.strokes = make([]Stroke, 0)
}

// Replace swaps the whole committed sequence at once.
func (c *Canvas) Replace(strokes []Stroke) {
	next := make([]Stroke, len(strokes))
	copy(next, strokes)
	c.strokes = next
}

// Strokes returns the committed strokes. The slice is shared with the
// canvas and must be treated as read-only.
func (c *Canvas) Strokes() []Stroke {
	return c.strokes
}

func (c *Canvas) Current() *Stroke {
	return c.current
}

func (c *Canvas) Drawing() bool {
	return c.current != nil
}

func (c *Canvas) Len() int {
	return len(c.strokes)
}

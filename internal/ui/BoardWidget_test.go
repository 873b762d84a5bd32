package ui

import (
	"testing"

	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func TestBoardWidgetDrawsStroke(t *testing.T) {
	test.NewTempApp(t)
	h := newTestHandler(t)
	board := NewBoardWidget(h)
	w := test.NewWindow(board)
	defer w.Close()
	w.Resize(fyne.NewSize(200, 150))

	board.MouseMoved(mouse(5, 5, 0))
	board.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	board.MouseMoved(mouse(20.4, 10, desktop.MouseButtonPrimary))
	board.MouseMoved(mouse(29.6, 10, desktop.MouseButtonPrimary))
	board.MouseUp(mouse(30, 10, desktop.MouseButtonPrimary))

	require.Equal(t, 1, h.Canvas.Len())
	assert.Equal(t, []state.Point{{10, 10}, {20, 10}, {30, 10}}, h.Canvas.Strokes()[0].Points)

	img := board.Snapshot()
	width, height := h.Size()
	assert.Equal(t, width, img.Bounds().Dx())
	assert.Equal(t, height, img.Bounds().Dy())
	r, g, b, _ := img.At(20, 10).RGBA()
	assert.NotEqual(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	test.NewTempApp(t)
	h := newTestHandler(t)
	board := NewBoardWidget(h)

	board.MouseDown(mouse(10, 10, desktop.MouseButtonSecondary))
	board.MouseMoved(mouse(20, 10, desktop.MouseButtonSecondary))
	board.MouseUp(mouse(20, 10, desktop.MouseButtonSecondary))
	assert.Equal(t, 0, h.Canvas.Len())
	assert.False(t, h.Canvas.Drawing())
}

func TestBoardWidgetReleaseOffBoard(t *testing.T) {
	test.NewTempApp(t)
	h := newTestHandler(t)
	board := NewBoardWidget(h)

	board.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	board.MouseMoved(mouse(20, 10, desktop.MouseButtonPrimary))
	// The button came up over the toolbar; the board only sees plain hover.
	board.MouseMoved(mouse(50, 50, 0))
	board.MouseMoved(mouse(60, 60, 0))

	assert.False(t, h.Canvas.Drawing())
	require.Equal(t, 1, h.Canvas.Len())
	assert.Equal(t, []state.Point{{10, 10}, {20, 10}}, h.Canvas.Strokes()[0].Points)

	board.MouseDown(mouse(70, 70, desktop.MouseButtonPrimary))
	board.MouseUp(mouse(70, 70, desktop.MouseButtonPrimary))
	assert.Equal(t, 2, h.Canvas.Len())
}

func TestBoardWidgetDragEndCommits(t *testing.T) {
	test.NewTempApp(t)
	h := newTestHandler(t)
	board := NewBoardWidget(h)

	board.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(15, 12)}})
	board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(400, 300)}})
	board.DragEnd()

	assert.False(t, h.Canvas.Drawing())
	require.Equal(t, 1, h.Canvas.Len())
	assert.Equal(t, []state.Point{{10, 10}, {15, 12}, {400, 300}}, h.Canvas.Strokes()[0].Points)

	board.DragEnd()
	board.MouseUp(mouse(0, 0, desktop.MouseButtonPrimary))
	assert.Equal(t, 1, h.Canvas.Len())
}

package ui

import (
	"image"
	"math"

	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. It forwards primary-button input to
// the Handler and shows the frames the Handler renders.
type BoardWidget struct {
	widget.BaseWidget
	handler *Handler
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)

func NewBoardWidget(h *Handler) *BoardWidget {
	b := &BoardWidget{handler: h}
	b.ExtendBaseWidget(b)
	h.OnChange = b.Refresh
	return b
}

func toPoint(pos fyne.Position) state.Point {
	return state.Point{
		X: int(math.Round(float64(pos.X))),
		Y: int(math.Round(float64(pos.Y))),
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.handler.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.handler.PointerUp(toPoint(e.Position))
}

// MouseMoved only matters while a stroke is in progress. A move without the
// primary button means the release happened somewhere the board could not
// see it, so the stroke ends there.
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if e.Button&desktop.MouseButtonPrimary == 0 {
		b.handler.PointerUp(toPoint(e.Position))
		return
	}
	b.handler.PointerMove(toPoint(e.Position))
}

// Dragged keeps receiving positions while the button is held, even outside
// the board.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.handler.PointerMove(toPoint(e.Position))
}

// DragEnd is delivered wherever the button is released.
func (b *BoardWidget) DragEnd() {
	b.handler.PointerUp(state.Point{})
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// Snapshot returns the frame currently on screen.
func (b *BoardWidget) Snapshot() image.Image {
	return b.handler.Frame()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.raster = canvas.NewRaster(func(int, int) image.Image {
		return b.handler.Frame()
	})
	return r
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

// Layout keeps rendered frames in board coordinates; the raster scales them
// to the device pixels.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.board.handler.Resize(int(math.Ceil(float64(size.Width))), int(math.Ceil(float64(size.Height))))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}

package ui

import (
	"errors"
	"image"
	"io/fs"
	"log"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// Handler turns pointer and key input into changes of the board state.
// It is driven from the UI event loop only and holds no locks.
type Handler struct {
	Canvas  *state.Canvas
	Palette *state.Palette

	// Store is nil when persistence is disabled.
	Store       *state.Store
	Screenshots *export.Screenshots
	Prints      *export.Prints

	Radius float64

	// OnChange is called after anything visible changed.
	OnChange func()
	// OnQuit ends the session.
	OnQuit func()

	width, height int
}

func NewHandler(cfg config.Config) *Handler {
	h := &Handler{
		Canvas:      state.NewCanvas(),
		Palette:     state.NewPalette(nil),
		Screenshots: &export.Screenshots{Dir: cfg.ImgDir, Lister: state.OSLister{}},
		Prints:      &export.Prints{Dir: cfg.ImgDir, Lister: state.OSLister{}},
		Radius:      cfg.BrushRadius,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	h.Palette.SetRandom(cfg.RandomColors)
	if cfg.EnablePersistence {
		h.Store = state.NewStore(cfg.SavesDir)
	}
	return h
}

func (h *Handler) changed() {
	if h.OnChange != nil {
		h.OnChange()
	}
}

// PointerDown starts a stroke whose first point is p.
func (h *Handler) PointerDown(p state.Point) {
	h.Canvas.Begin(h.Palette.Color())
	h.Canvas.Extend(p)
	h.changed()
}

// PointerMove records p while a stroke is being drawn and reports whether it
// did.
func (h *Handler) PointerMove(p state.Point) bool {
	if !h.Canvas.Drawing() {
		return false
	}
	h.Canvas.Extend(p)
	h.changed()
	return true
}

// PointerUp commits the stroke in progress. A release without a matching
// press is ignored.
func (h *Handler) PointerUp(state.Point) {
	if h.Canvas.Commit() {
		h.changed()
	}
}

// Resize sets the pixel size of rendered frames.
func (h *Handler) Resize(width, height int) {
	h.width, h.height = width, height
}

func (h *Handler) Size() (int, int) {
	return h.width, h.height
}

// Frame renders the board as currently shown.
func (h *Handler) Frame() image.Image {
	return render.Frame(h.width, h.height, h.Canvas.Strokes(), h.Canvas.Current(), h.Palette.Inverted(), h.Radius)
}

func (h *Handler) Quit() {
	log.Println("Quit requested")
	if h.OnQuit != nil {
		h.OnQuit()
	}
}

func (h *Handler) ToggleRandom() {
	h.Palette.ToggleRandom()
	log.Printf("Random colors: %t", h.Palette.Random())
}

func (h *Handler) ToggleInverted() {
	h.Palette.ToggleInverted()
	h.changed()
}

func (h *Handler) Clear() {
	h.Canvas.Clear()
	h.changed()
}

func (h *Handler) Undo() {
	undone, ok := h.Canvas.Undo()
	if !ok {
		return
	}
	log.Printf("Undid stroke %s (%d points)", undone.ID, len(undone.Points))
	h.changed()
}

// Screenshot writes the current frame to the image directory.
func (h *Handler) Screenshot() (string, error) {
	path, err := h.Screenshots.Save(h.Frame())
	if err != nil {
		log.Printf("Screenshot failed: %v", err)
		return "", err
	}
	log.Printf("Screenshot %s", path)
	return path, nil
}

// Print writes the board as a PDF page to the image directory.
func (h *Handler) Print() (string, error) {
	path, err := h.Prints.Save(h.Canvas.Strokes(), h.width, h.height, h.Palette.Inverted(), h.Radius)
	if err != nil {
		log.Printf("Print failed: %v", err)
		return "", err
	}
	log.Printf("Printed %s", path)
	return path, nil
}

var errNoPersistence = errors.New("persistence is disabled")

// SaveCanvas writes the committed strokes to a new save file.
func (h *Handler) SaveCanvas() (string, error) {
	if h.Store == nil {
		return "", errNoPersistence
	}
	path, err := h.Store.Save(h.Canvas.Strokes())
	if err != nil {
		log.Printf("Save failed: %v", err)
		return "", err
	}
	log.Printf("Saved %d strokes to %s", h.Canvas.Len(), path)
	return path, nil
}

// LoadLatest replaces the board with the newest save file. On failure the
// board is left as it was.
func (h *Handler) LoadLatest() error {
	if h.Store == nil {
		return errNoPersistence
	}
	strokes, path, err := h.Store.LoadLatest()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == "" {
			log.Printf("Nothing to load: %v", err)
		} else {
			log.Printf("Load failed: %v", err)
		}
		return err
	}
	h.Canvas.Replace(strokes)
	log.Printf("Loaded %d strokes from %s", len(strokes), path)
	h.changed()
	return nil
}

// LoadFile replaces the board with the strokes in path. On failure the board
// is left as it was.
func (h *Handler) LoadFile(path string) error {
	store := h.Store
	if store == nil {
		store = &state.Store{Lister: state.OSLister{}}
	}
	strokes, err := store.Load(path)
	if err != nil {
		log.Printf("Could not load %s: %v", path, err)
		return err
	}
	h.Canvas.Replace(strokes)
	log.Printf("Loaded %d strokes from %s", len(strokes), path)
	h.changed()
	return nil
}

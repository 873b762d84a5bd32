package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar mirrors the key bindings for pointer-only use.
func NewToolbar(h *Handler) fyne.CanvasObject {
	items := []widget.ToolbarItem{
		widget.NewToolbarAction(theme.ContentUndoIcon(), h.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), h.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ColorChromaticIcon(), h.ToggleRandom),
		widget.NewToolbarAction(theme.ColorAchromaticIcon(), h.ToggleInverted),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() { h.Screenshot() }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { h.Print() }),
	}
	if h.Store != nil {
		items = append(items,
			widget.NewToolbarSeparator(),
			widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { h.SaveCanvas() }),
			widget.NewToolbarAction(theme.FolderOpenIcon(), func() { h.LoadLatest() }),
		)
	}

	return container.NewHBox(
		widget.NewToolbar(items...),
		layout.NewSpacer(),
	)
}

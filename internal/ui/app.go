package ui

import (
	"LocalPaint/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the paint window and blocks until it is closed.
func RunApp(cfg config.Config, h *Handler) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	myWindow.CenterOnScreen()

	board := NewBoardWidget(h)
	h.OnQuit = myApp.Quit

	keys := h.KeyMap()
	myWindow.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if run, ok := keys[ev.Name]; ok {
			run()
		}
	})

	content := container.NewBorder(NewToolbar(h), nil, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

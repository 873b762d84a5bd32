package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

type binding struct {
	keys []fyne.KeyName
	help string
	// persistent bindings exist only when saves are enabled
	persistent bool
	run        func(h *Handler)
}

var bindings = []binding{
	{keys: []fyne.KeyName{fyne.KeyQ, fyne.KeyEscape}, help: "exit", run: (*Handler).Quit},
	{keys: []fyne.KeyName{fyne.KeyReturn, fyne.KeyEnter}, help: `save a numbered screenshot in the image directory`, run: func(h *Handler) { h.Screenshot() }},
	{keys: []fyne.KeyName{fyne.KeySpace}, help: "erase the last line", run: (*Handler).Undo},
	{keys: []fyne.KeyName{fyne.KeyT}, help: "toggle the colors between full white and random", run: (*Handler).ToggleRandom},
	{keys: []fyne.KeyName{fyne.KeyR}, help: "reverse the colors, lines in black on white", run: (*Handler).ToggleInverted},
	{keys: []fyne.KeyName{fyne.KeyC}, help: "clear the screen", run: (*Handler).Clear},
	{keys: []fyne.KeyName{fyne.KeyP}, help: "print the board to a numbered PDF in the image directory", run: func(h *Handler) { h.Print() }},
	{keys: []fyne.KeyName{fyne.KeyS}, help: "save the lines in the saves directory", persistent: true, run: func(h *Handler) { h.SaveCanvas() }},
	{keys: []fyne.KeyName{fyne.KeyL}, help: "load the last saved lines", persistent: true, run: func(h *Handler) { h.LoadLatest() }},
}

// KeyMap returns the action bound to each key.
func (h *Handler) KeyMap() map[fyne.KeyName]func() {
	m := make(map[fyne.KeyName]func())
	for _, b := range bindings {
		if b.persistent && h.Store == nil {
			continue
		}
		run := b.run
		for _, k := range b.keys {
			m[k] = func() { run(h) }
		}
	}
	return m
}

// HelpText lists the key bindings.
func HelpText(persistence bool) string {
	var sb strings.Builder
	sb.WriteString("HELP :\n")
	for _, b := range bindings {
		if b.persistent && !persistence {
			continue
		}
		names := make([]string, len(b.keys))
		for i, k := range b.keys {
			names[i] = string(k)
		}
		fmt.Fprintf(&sb, "    - %s: %s\n", strings.Join(names, " or "), b.help)
	}
	return sb.String()
}

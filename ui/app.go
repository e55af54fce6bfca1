package ui

import (
	"fyne.io/fyne/v2"

	"calc-tool/internal/config"
)

// BuildMainWindow creates and configures the main application window.
// It always opens on the Calculator tab.
func BuildMainWindow(a fyne.App, cfg config.Config) fyne.Window {
	win := a.NewWindow(cfg.Window.Title)
	win.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	win.SetFixedSize(cfg.Window.FixedSize)

	controls := NewControls(win, newPalette(cfg.Palette))
	win.SetContent(controls.Container())

	return win
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"calc-tool/internal/app"
)

// Controls owns the window state and routes every button press, keystroke
// and tab switch through app.State.Dispatch.
type Controls struct {
	state *app.State
	win   fyne.Window

	calcTab *CalculatorTab
	bmiTab  *BMITab
	tabs    *container.AppTabs
}

// NewControls builds both tabs for win.
func NewControls(win fyne.Window, pal palette) *Controls {
	c := &Controls{
		state: app.NewState(),
		win:   win,
	}

	c.calcTab = NewCalculatorTab(c.state, pal, c.Dispatch)
	c.bmiTab = NewBMITab(c.state, pal, c.Dispatch)

	c.tabs = container.NewAppTabs(
		container.NewTabItem(app.TabCalculator.String(), c.calcTab.Container()),
		container.NewTabItem(app.TabBMI.String(), c.bmiTab.Container()),
	)
	c.tabs.OnSelected = func(*container.TabItem) {
		c.Dispatch(app.SelectTab(app.Tab(c.tabs.SelectedIndex())))
		if c.state.Tab == app.TabCalculator {
			// Let keystrokes reach the canvas instead of a BMI field.
			c.win.Canvas().Unfocus()
		}
	}

	canvas := win.Canvas()
	canvas.SetOnTypedRune(c.onTypedRune)
	canvas.SetOnTypedKey(c.onTypedKey)

	return c
}

// Container returns the tab container.
func (c *Controls) Container() *container.AppTabs {
	return c.tabs
}

// State returns the dispatcher state.
func (c *Controls) State() *app.State {
	return c.state
}

// SelectTab shows the given tab.
func (c *Controls) SelectTab(t app.Tab) {
	if t == app.TabCalculator || t == app.TabBMI {
		c.tabs.SelectIndex(int(t))
	}
}

// Dispatch applies an action, redraws both tabs and shows any resulting
// alert as a modal dialog.
func (c *Controls) Dispatch(a app.Action) {
	alert := c.state.Dispatch(a)
	c.calcTab.Refresh()
	c.bmiTab.Refresh()
	if alert != nil {
		dialog.ShowInformation(alert.Title, alert.Message, c.win)
	}
}

func (c *Controls) onTypedRune(r rune) {
	if c.state.Tab != app.TabCalculator {
		return
	}
	if a, ok := app.KeyAction(r); ok {
		c.Dispatch(a)
	}
}

func (c *Controls) onTypedKey(ev *fyne.KeyEvent) {
	if c.state.Tab != app.TabCalculator {
		return
	}
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		c.Dispatch(app.Equals())
	case fyne.KeyBackspace:
		c.Dispatch(app.Backspace())
	case fyne.KeyEscape, fyne.KeyDelete:
		c.Dispatch(app.Clear())
	}
}

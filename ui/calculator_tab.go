package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"calc-tool/internal/app"
)

// CalculatorTab renders the expression display and the 4×5 keypad.
type CalculatorTab struct {
	state   *app.State
	display *canvas.Text
	buttons map[string]*KeyButton

	container *fyne.Container
}

// NewCalculatorTab builds the keypad from app.Keypad; every button forwards
// its action to dispatch.
func NewCalculatorTab(state *app.State, pal palette, dispatch func(app.Action)) *CalculatorTab {
	ct := &CalculatorTab{
		state:   state,
		buttons: make(map[string]*KeyButton),
	}

	ct.display = canvas.NewText("", pal.displayFg)
	ct.display.TextSize = DisplayTextSize
	ct.display.Alignment = fyne.TextAlignTrailing

	displayBg := canvas.NewRectangle(pal.background)
	displayBg.SetMinSize(fyne.NewSize(0, DisplayMinHeight))
	displayBox := container.NewStack(displayBg, container.NewPadded(ct.display))

	var rows []fyne.CanvasObject
	for _, row := range app.Keypad() {
		var keys []fyne.CanvasObject
		for _, k := range row {
			action := k.Action
			bg, fg := pal.keyColors(k.Role)
			btn := NewKeyButton(k.Label, func() { dispatch(action) }, bg, fg)
			ct.buttons[k.Label] = btn
			keys = append(keys, btn)
		}
		rows = append(rows, container.NewGridWithColumns(len(keys), keys...))
	}
	keypad := container.NewGridWithRows(len(rows), rows...)

	background := canvas.NewRectangle(pal.background)
	ct.container = container.NewStack(background, container.NewBorder(
		container.NewPadded(displayBox), nil, nil, nil,
		container.NewPadded(keypad),
	))

	return ct
}

// Container returns the tab content.
func (ct *CalculatorTab) Container() *fyne.Container {
	return ct.container
}

// Button returns the keypad button with the given label, or nil.
func (ct *CalculatorTab) Button(label string) *KeyButton {
	return ct.buttons[label]
}

// DisplayText returns what the display currently shows.
func (ct *CalculatorTab) DisplayText() string {
	return ct.display.Text
}

// Refresh copies the expression from the state into the display.
func (ct *CalculatorTab) Refresh() {
	if ct.display.Text == ct.state.Display() {
		return
	}
	ct.display.Text = ct.state.Display()
	ct.display.Refresh()
}

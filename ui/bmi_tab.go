package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"calc-tool/internal/app"
)

// BMITab holds the weight and height fields and the result labels.
type BMITab struct {
	state *app.State

	weightEntry   *widget.Entry
	heightEntry   *widget.Entry
	calcBtn       *KeyButton
	valueLabel    *widget.Label
	categoryLabel *widget.Label

	container *fyne.Container
}

// NewBMITab creates the BMI form. Field edits are copied into the state as
// typed; validation happens only when Calculate BMI is pressed.
func NewBMITab(state *app.State, pal palette, dispatch func(app.Action)) *BMITab {
	bt := &BMITab{state: state}

	bt.weightEntry = widget.NewEntry()
	bt.weightEntry.SetPlaceHolder("70")
	bt.weightEntry.OnChanged = func(s string) { bt.state.BMI.Weight = s }

	bt.heightEntry = widget.NewEntry()
	bt.heightEntry.SetPlaceHolder("175")
	bt.heightEntry.OnChanged = func(s string) { bt.state.BMI.Height = s }

	calculate := func() { dispatch(app.CalculateBMI()) }
	bt.weightEntry.OnSubmitted = func(string) { calculate() }
	bt.heightEntry.OnSubmitted = func(string) { calculate() }

	bt.calcBtn = NewKeyButton("Calculate BMI", calculate, pal.operatorBg, pal.operatorFg)

	bt.valueLabel = widget.NewLabelWithStyle(state.BMI.ValueLine(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	bt.valueLabel.SizeName = theme.SizeNameSubHeadingText
	bt.categoryLabel = widget.NewLabelWithStyle(state.BMI.CategoryLine(), fyne.TextAlignCenter, fyne.TextStyle{})

	form := widget.NewForm(
		widget.NewFormItem("Weight (kg):", bt.weightEntry),
		widget.NewFormItem("Height (cm):", bt.heightEntry),
	)

	content := container.NewVBox(
		form,
		layout.NewSpacer(),
		bt.calcBtn,
		layout.NewSpacer(),
		bt.valueLabel,
		bt.categoryLabel,
	)

	padding := canvas.NewRectangle(color.Transparent)
	padding.SetMinSize(fyne.NewSize(BMIPadding, BMIPadding))

	bt.container = container.NewStack(
		canvas.NewRectangle(pal.background),
		container.NewBorder(padding, nil, nil, nil, container.NewPadded(content)),
	)
	return bt
}

// Container returns the tab content.
func (bt *BMITab) Container() *fyne.Container {
	return bt.container
}

// Refresh copies the BMI labels from the state.
func (bt *BMITab) Refresh() {
	bt.valueLabel.SetText(bt.state.BMI.ValueLine())
	bt.categoryLabel.SetText(bt.state.BMI.CategoryLine())
}

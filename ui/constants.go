package ui

import "fyne.io/fyne/v2"

// Keypad dimensions
const (
	KeyMinWidth  = 70
	KeyMinHeight = 60
	KeyTextSize  = 16
)

// Display dimensions
const (
	DisplayTextSize  = 28
	DisplayMinHeight = 64
)

// BMI tab
const (
	BMIPadding = 20
)

// NewKeyMinSize returns the minimum size of a keypad button
func NewKeyMinSize() fyne.Size {
	return fyne.NewSize(KeyMinWidth, KeyMinHeight)
}

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// KeyButton is a flat keypad button with custom background and text colors.
type KeyButton struct {
	widget.Button
	bgColor  color.Color
	txtColor color.Color
	textSize float32
}

// NewKeyButton creates a keypad button.
func NewKeyButton(label string, tapped func(), bgColor, txtColor color.Color) *KeyButton {
	btn := &KeyButton{
		bgColor:  bgColor,
		txtColor: txtColor,
		textSize: KeyTextSize,
	}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// CreateRenderer returns a custom renderer.
func (b *KeyButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = b.textSize

	return &keyBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type keyBtnRenderer struct {
	btn     *KeyButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *keyBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *keyBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2).Max(NewKeyMinSize())
}

func (r *keyBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text
	r.bg.FillColor = r.btn.bgColor
	r.label.Color = r.btn.txtColor

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *keyBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *keyBtnRenderer) Destroy()                     {}

package ui

import (
	"fmt"
	"image/color"

	"calc-tool/internal/app"
	"calc-tool/internal/config"
)

// palette is the resolved set of widget colors.
type palette struct {
	background color.Color
	displayFg  color.Color
	buttonBg   color.Color
	buttonFg   color.Color
	operatorBg color.Color
	operatorFg color.Color
	equalsBg   color.Color
	equalsFg   color.Color
	clearBg    color.Color
}

func newPalette(p config.Palette) palette {
	return palette{
		background: hexColor(p.Background),
		displayFg:  hexColor(p.DisplayFg),
		buttonBg:   hexColor(p.ButtonBg),
		buttonFg:   hexColor(p.ButtonFg),
		operatorBg: hexColor(p.OperatorBg),
		operatorFg: hexColor(p.OperatorFg),
		equalsBg:   hexColor(p.EqualsBg),
		equalsFg:   hexColor(p.EqualsFg),
		clearBg:    hexColor(p.ClearBg),
	}
}

// keyColors returns the background and text colors for a keypad role.
func (p palette) keyColors(role app.KeyRole) (bg, fg color.Color) {
	switch role {
	case app.RoleOperator:
		return p.operatorBg, p.operatorFg
	case app.RoleEquals:
		return p.equalsBg, p.equalsFg
	case app.RoleClear:
		return p.clearBg, p.buttonFg
	}
	return p.buttonBg, p.buttonFg
}

// hexColor parses #rrggbb. Malformed input yields opaque black.
func hexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"calc-tool/internal/app"
	"calc-tool/internal/config"
)

func newTestControls(t *testing.T) *Controls {
	t.Helper()
	a := test.NewTempApp(t)
	win := a.NewWindow("test")
	t.Cleanup(win.Close)

	c := NewControls(win, newPalette(config.Default().Palette))
	win.SetContent(c.Container())
	return c
}

func tapKeys(c *Controls, labels ...string) {
	for _, l := range labels {
		test.Tap(c.calcTab.Button(l))
	}
}

func TestKeypadEvaluates(t *testing.T) {
	c := newTestControls(t)

	tapKeys(c, "2", "+", "3", "*", "4")
	if got := c.calcTab.DisplayText(); got != "2+3*4" {
		t.Fatalf("display = %q, want 2+3*4", got)
	}

	tapKeys(c, "=")
	if got := c.calcTab.DisplayText(); got != "14" {
		t.Errorf("display = %q, want 14", got)
	}

	tapKeys(c, "C")
	if got := c.calcTab.DisplayText(); got != "" {
		t.Errorf("display after C = %q, want empty", got)
	}
}

func TestKeypadHasAllKeys(t *testing.T) {
	c := newTestControls(t)
	for _, l := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "-", "*", "/", "C", "="} {
		if c.calcTab.Button(l) == nil {
			t.Errorf("missing key %q", l)
		}
	}
}

func TestDivisionByZeroShowsDialogAndClears(t *testing.T) {
	c := newTestControls(t)

	tapKeys(c, "6", "/", "0", "=")
	if got := c.calcTab.DisplayText(); got != "" {
		t.Errorf("display = %q, want cleared", got)
	}
	if c.win.Canvas().Overlays().Top() == nil {
		t.Error("expected an alert dialog")
	}
}

func TestTypedKeysReachCalculator(t *testing.T) {
	c := newTestControls(t)

	test.TypeOnCanvas(c.win.Canvas(), "7*6=")
	if got := c.calcTab.DisplayText(); got != "42" {
		t.Errorf("display = %q, want 42", got)
	}
}

func TestBMITab(t *testing.T) {
	c := newTestControls(t)
	c.SelectTab(app.TabBMI)
	if c.State().Tab != app.TabBMI {
		t.Fatalf("Tab = %v, want BMI", c.State().Tab)
	}

	test.Type(c.bmiTab.weightEntry, "70")
	test.Type(c.bmiTab.heightEntry, "175")
	test.Tap(c.bmiTab.calcBtn)

	if got := c.bmiTab.valueLabel.Text; got != "Your BMI is: 22.86" {
		t.Errorf("value label = %q", got)
	}
	if got := c.bmiTab.categoryLabel.Text; got != "Category: Healthy Weight" {
		t.Errorf("category label = %q", got)
	}
}

func TestBMIErrorKeepsExpression(t *testing.T) {
	c := newTestControls(t)
	tapKeys(c, "9", "*", "9")

	c.SelectTab(app.TabBMI)
	test.Type(c.bmiTab.weightEntry, "abc")
	test.Type(c.bmiTab.heightEntry, "170")
	test.Tap(c.bmiTab.calcBtn)

	if c.win.Canvas().Overlays().Top() == nil {
		t.Error("expected an alert dialog")
	}
	if got := c.calcTab.DisplayText(); got != "9*9" {
		t.Errorf("display = %q, want 9*9 kept", got)
	}
	if got := c.bmiTab.valueLabel.Text; got != "Your BMI is: -" {
		t.Errorf("value label = %q, want placeholder", got)
	}
}

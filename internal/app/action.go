// Package app holds the per-tab state of the calculator and routes every user
// action through one dispatcher. Front ends render State and forward events;
// they never mutate the expression themselves.
package app

import "calc-tool/internal/calc"

// Tab identifies a page of the window.
type Tab int

const (
	TabCalculator Tab = iota
	TabBMI
)

var tabNames = []string{"Calculator", "BMI"}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabCalculator, TabBMI}
}

// ActionKind enumerates the user actions.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDigit
	ActionOperator
	ActionParen
	ActionBackspace
	ActionClear
	ActionEquals
	ActionCalculateBMI
	ActionSelectTab
)

// Action is one user event. Char carries the key for Digit, Operator and
// Paren; Tab carries the target for SelectTab.
type Action struct {
	Kind ActionKind
	Char rune
	Tab  Tab
}

func Digit(c rune) Action    { return Action{Kind: ActionDigit, Char: c} }
func Operator(c rune) Action { return Action{Kind: ActionOperator, Char: c} }
func Paren(c rune) Action    { return Action{Kind: ActionParen, Char: c} }
func Backspace() Action      { return Action{Kind: ActionBackspace} }
func Clear() Action          { return Action{Kind: ActionClear} }
func Equals() Action         { return Action{Kind: ActionEquals} }
func CalculateBMI() Action   { return Action{Kind: ActionCalculateBMI} }
func SelectTab(t Tab) Action { return Action{Kind: ActionSelectTab, Tab: t} }

// KeyAction maps a typed character to the calculator action it triggers.
// ok is false for keys the calculator ignores.
func KeyAction(r rune) (a Action, ok bool) {
	switch {
	case r >= '0' && r <= '9', r == '.':
		return Digit(r), true
	case calc.IsOperator(r):
		return Operator(r), true
	case r == '(' || r == ')':
		return Paren(r), true
	case r == '=' || r == '\n' || r == '\r':
		return Equals(), true
	case r == 'c' || r == 'C':
		return Clear(), true
	}
	return Action{}, false
}

// Key is one entry of the on-screen keypad.
type Key struct {
	Label  string
	Action Action
	Role   KeyRole
}

// KeyRole groups keys that share a look.
type KeyRole int

const (
	RoleDigit KeyRole = iota
	RoleOperator
	RoleClear
	RoleEquals
)

// Keypad returns the 4×5 button grid row by row. The last row holds only the
// equals key, which spans the full width.
func Keypad() [][]Key {
	d := func(c rune) Key { return Key{Label: string(c), Action: Digit(c), Role: RoleDigit} }
	o := func(c rune) Key { return Key{Label: string(c), Action: Operator(c), Role: RoleOperator} }
	return [][]Key{
		{{Label: "C", Action: Clear(), Role: RoleClear}, d('7'), d('8'), d('9')},
		{d('4'), d('5'), d('6'), o('/')},
		{d('1'), d('2'), d('3'), o('*')},
		{d('0'), d('.'), o('+'), o('-')},
		{{Label: "=", Action: Equals(), Role: RoleEquals}},
	}
}

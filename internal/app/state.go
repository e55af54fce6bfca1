package app

import (
	"calc-tool/internal/bmi"
	"calc-tool/internal/calc"
	"calc-tool/internal/format"
)

// Alert is an error surfaced to the user as a modal dialog.
type Alert struct {
	Title   string
	Message string
	Err     error
}

func newAlert(err error) *Alert {
	title, msg := format.ErrorAlert(err)
	return &Alert{Title: title, Message: msg, Err: err}
}

// BMIState is the content of the BMI tab. Weight and Height are the raw field
// texts; Result is the last successful calculation, nil before the first.
type BMIState struct {
	Weight string
	Height string
	Result *bmi.Result
}

// ValueLine returns the BMI label text.
func (s *BMIState) ValueLine() string {
	return format.BMIValueLine(s.Result)
}

// CategoryLine returns the category label text.
func (s *BMIState) CategoryLine() string {
	return format.BMICategoryLine(s.Result)
}

// State is everything a front end renders.
type State struct {
	Tab        Tab
	Calculator *calc.Editor
	BMI        BMIState
}

// NewState returns the state of a freshly opened window.
func NewState() *State {
	return &State{
		Tab:        TabCalculator,
		Calculator: calc.NewEditor(),
	}
}

// Display returns the calculator display text.
func (s *State) Display() string {
	return s.Calculator.Text()
}

// Dispatch applies a to the state. A non-nil Alert must be shown to the user.
// Raising an alert while the Calculator tab is active clears the expression.
func (s *State) Dispatch(a Action) *Alert {
	var err error

	switch a.Kind {
	case ActionDigit, ActionOperator, ActionParen:
		s.Calculator.Append(a.Char)
	case ActionBackspace:
		s.Calculator.Backspace()
	case ActionClear:
		s.Calculator.Clear()
	case ActionEquals:
		_, err = s.Calculator.Evaluate()
	case ActionCalculateBMI:
		var r bmi.Result
		r, err = bmi.Calculate(s.BMI.Weight, s.BMI.Height)
		if err == nil {
			s.BMI.Result = &r
		}
	case ActionSelectTab:
		if a.Tab == TabCalculator || a.Tab == TabBMI {
			s.Tab = a.Tab
		}
	}

	if err == nil {
		return nil
	}
	if s.Tab == TabCalculator {
		s.Calculator.Clear()
	}
	return newAlert(err)
}

package format

import (
	"errors"
	"fmt"
	"strings"

	"calc-tool/internal/bmi"
	"calc-tool/internal/calc"
)

// Placeholder shown in a BMI label before any calculation.
const Placeholder = "-"

// Alert titles.
const (
	TitleInvalidExpression = "Invalid Expression"
	TitleDivisionByZero    = "Division by Zero"
	TitleError             = "Error"
	TitleInvalidInput      = "Invalid Input"
)

// Alert messages.
const (
	MsgIncomplete     = "Incomplete expression."
	MsgSyntax         = "The calculation is invalid."
	MsgDivisionByZero = "Cannot divide by zero."
	MsgNotANumber     = "Please enter valid numbers for weight and height."
	MsgNonPositive    = "Weight and height must be positive numbers."
	MsgZeroHeight     = "Height cannot be zero."
)

// BMIValueLine returns the "Your BMI is" label text. A nil result renders the
// placeholder.
func BMIValueLine(r *bmi.Result) string {
	if r == nil {
		return "Your BMI is: " + Placeholder
	}
	return fmt.Sprintf("Your BMI is: %.2f", r.Value)
}

// BMICategoryLine returns the "Category" label text.
func BMICategoryLine(r *bmi.Result) string {
	if r == nil {
		return "Category: " + Placeholder
	}
	return "Category: " + string(r.Category)
}

// ErrorAlert maps a calculator or BMI error to the title and message shown in
// the modal dialog.
func ErrorAlert(err error) (title, message string) {
	switch {
	case errors.Is(err, calc.ErrIncomplete):
		return TitleInvalidExpression, MsgIncomplete
	case errors.Is(err, calc.ErrSyntax):
		return TitleInvalidExpression, MsgSyntax
	case errors.Is(err, calc.ErrDivisionByZero):
		return TitleDivisionByZero, MsgDivisionByZero
	case errors.Is(err, bmi.ErrNotANumber):
		return TitleInvalidInput, MsgNotANumber
	case errors.Is(err, bmi.ErrNonPositive):
		return TitleInvalidInput, MsgNonPositive
	case errors.Is(err, bmi.ErrDivisionByZero):
		return TitleInvalidInput, MsgZeroHeight
	}
	return TitleError, fmt.Sprintf("An unexpected error occurred: %v", err)
}

// FormatExpression produces the CLI report for an evaluated expression.
func FormatExpression(expr, result string, verbose bool) string {
	if !verbose {
		return result
	}
	var b strings.Builder
	b.WriteString("=== Calculation ===\n")
	b.WriteString(fmt.Sprintf("Expression:  %s\n", expr))
	b.WriteString(fmt.Sprintf("Result:      %s\n", result))
	b.WriteString("===================")
	return b.String()
}

// FormatBMI produces the CLI report for a BMI calculation.
func FormatBMI(weight, height string, r *bmi.Result, verbose bool) string {
	var b strings.Builder
	if verbose {
		b.WriteString("=== BMI ===\n")
		b.WriteString(fmt.Sprintf("Weight:      %s kg\n", strings.TrimSpace(weight)))
		b.WriteString(fmt.Sprintf("Height:      %s cm\n", strings.TrimSpace(height)))
	}
	b.WriteString(BMIValueLine(r))
	b.WriteString("\n")
	b.WriteString(BMICategoryLine(r))
	if verbose {
		b.WriteString("\n===========")
	}
	return b.String()
}

package cli

import (
	"fmt"
	"io"

	"calc-tool/internal/bmi"
	"calc-tool/internal/calc"
	"calc-tool/internal/format"
)

// RunnerConfig holds all command-line options.
type RunnerConfig struct {
	// Calculator
	Expression string

	// BMI
	Weight string
	Height string

	// Interface
	TUI        bool
	ConfigPath string
	Verbose    bool
}

// OneShot reports whether the config asks for a calculation rather than an
// interactive session.
func (c *RunnerConfig) OneShot() bool {
	return c.Expression != "" || c.Weight != "" || c.Height != ""
}

// AlertError carries the dialog title and message of a failed calculation.
type AlertError struct {
	Title   string
	Message string
	Err     error
}

func (e *AlertError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *AlertError) Unwrap() error {
	return e.Err
}

func alertError(err error) error {
	title, msg := format.ErrorAlert(err)
	return &AlertError{Title: title, Message: msg, Err: err}
}

// EvaluateRunner evaluates cfg.Expression and writes the displayed result.
func EvaluateRunner(w io.Writer, cfg RunnerConfig) error {
	v, err := calc.Evaluate(cfg.Expression)
	if err != nil {
		return alertError(err)
	}
	fmt.Fprintln(w, format.FormatExpression(cfg.Expression, calc.FormatResult(v), cfg.Verbose))
	return nil
}

// BMIRunner computes the BMI for cfg.Weight and cfg.Height and writes both
// labels.
func BMIRunner(w io.Writer, cfg RunnerConfig) error {
	r, err := bmi.Calculate(cfg.Weight, cfg.Height)
	if err != nil {
		return alertError(err)
	}
	fmt.Fprintln(w, format.FormatBMI(cfg.Weight, cfg.Height, &r, cfg.Verbose))
	return nil
}

// Run executes every one-shot calculation requested by cfg, expression first.
func Run(w io.Writer, cfg RunnerConfig) error {
	if cfg.Expression != "" {
		if err := EvaluateRunner(w, cfg); err != nil {
			return err
		}
	}
	if cfg.Weight != "" || cfg.Height != "" {
		if err := BMIRunner(w, cfg); err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"calc-tool/internal/bmi"
	"calc-tool/internal/calc"
	"calc-tool/internal/format"
)

func TestEvaluateRunner(t *testing.T) {
	var out bytes.Buffer
	if err := EvaluateRunner(&out, RunnerConfig{Expression: "5.0+1"}); err != nil {
		t.Fatalf("EvaluateRunner() error = %v", err)
	}
	if out.String() != "6\n" {
		t.Errorf("output = %q, want %q", out.String(), "6\n")
	}
}

func TestEvaluateRunnerError(t *testing.T) {
	var out bytes.Buffer
	err := EvaluateRunner(&out, RunnerConfig{Expression: "6/0"})

	var ae *AlertError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *AlertError", err)
	}
	if ae.Title != format.TitleDivisionByZero || ae.Message != format.MsgDivisionByZero {
		t.Errorf("alert = (%q, %q)", ae.Title, ae.Message)
	}
	if !errors.Is(err, calc.ErrDivisionByZero) {
		t.Error("AlertError should unwrap to ErrDivisionByZero")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestBMIRunner(t *testing.T) {
	var out bytes.Buffer
	if err := BMIRunner(&out, RunnerConfig{Weight: "70", Height: "175"}); err != nil {
		t.Fatalf("BMIRunner() error = %v", err)
	}
	want := "Your BMI is: 22.86\nCategory: Healthy Weight\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestBMIRunnerError(t *testing.T) {
	err := BMIRunner(&bytes.Buffer{}, RunnerConfig{Weight: "abc", Height: "170"})
	if !errors.Is(err, bmi.ErrNotANumber) {
		t.Errorf("error = %v, want ErrNotANumber", err)
	}
	if !strings.Contains(err.Error(), format.MsgNotANumber) {
		t.Errorf("error %q should carry the alert message", err)
	}
}

func TestRunBoth(t *testing.T) {
	var out bytes.Buffer
	cfg := RunnerConfig{Expression: "8/4/2", Weight: "25", Height: "100"}
	if err := Run(&out, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "1\nYour BMI is: 25.00\nCategory: Overweight\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

package calc

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"precedence", "2+3*4", 14},
		{"left assoc subtraction", "10-4-3", 3},
		{"left assoc division", "8/4/2", 1},
		{"mixed", "1+2*3-4/2", 5},
		{"decimal", "5.0+1", 6},
		{"true division", "7/2", 3.5},
		{"leading dot", ".5+.5", 1},
		{"trailing dot", "5.+1", 6},
		{"parentheses", "(2+3)*4", 20},
		{"nested parentheses", "((1+1)*(2+2))/8", 1},
		{"unary minus", "-5+3", -2},
		{"double unary", "--5", 5},
		{"unary plus", "+4*2", 8},
		{"exponent literal", "2e2+1", 201},
		{"whitespace", " 2 * 3 ", 6},
		{"single number", "42", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", ErrIncomplete},
		{"blank", "   ", ErrIncomplete},
		{"trailing plus", "5+", ErrIncomplete},
		{"trailing divide", "8/", ErrIncomplete},
		{"divide by zero", "6/0", ErrDivisionByZero},
		{"divide by zero float", "6/0.0", ErrDivisionByZero},
		{"zero over zero", "0/0", ErrDivisionByZero},
		{"divide by zero expression", "1/(2-2)", ErrDivisionByZero},
		{"two decimal points", "1.2.3", ErrSyntax},
		{"lone dot", ".", ErrSyntax},
		{"letters", "2+a", ErrSyntax},
		{"power operator", "5**2", ErrSyntax},
		{"floor division", "5//2", ErrSyntax},
		{"unbalanced open", "(2+3", ErrSyntax},
		{"unbalanced close", "2+3)", ErrSyntax},
		{"empty parentheses", "()", ErrSyntax},
		{"leading multiply", "*5", ErrSyntax},
		{"bad exponent", "1e*2", ErrSyntax},
		{"syntax before division", "1/0+)", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			if !errors.Is(err, tt.want) {
				t.Errorf("Evaluate(%q) error = %v, want %v", tt.expr, err, tt.want)
			}
		})
	}
}

func TestEvaluateOverflowIsUnexpected(t *testing.T) {
	for _, expr := range []string{"1e400", "1e308*10", "1e400-1e400"} {
		_, err := Evaluate(expr)
		if !IsUnexpected(err) {
			t.Errorf("Evaluate(%q) error = %v, want unexpected", expr, err)
		}
		if errors.Is(err, ErrSyntax) || errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Evaluate(%q) error = %v misclassified", expr, err)
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Evaluate("12+a")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SyntaxError", err)
	}
	if se.Col != 4 {
		t.Errorf("Col = %d, want 4", se.Col)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{6, "6"},
		{14, "14"},
		{-2, "-2"},
		{3.5, "3.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1.0 / 3, "0.3333333333333333"},
		{1e20, "100000000000000000000"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1234567.5, "1234567.5"},
	}

	for _, tt := range tests {
		if got := FormatResult(tt.v); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatResultNegativeZero(t *testing.T) {
	v, err := Evaluate("-0*5")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := FormatResult(v); got != "0" {
		t.Errorf("FormatResult(-0) = %q, want 0", got)
	}
}

func TestLargeIntegersRoundToFloat64(t *testing.T) {
	e := NewEditor()
	e.Set("12345678901234567*1")
	if _, err := e.Evaluate(); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got, want := e.Text(), "12345678901234568"; got != want {
		t.Errorf("Text() = %q, want %q (nearest float64)", got, want)
	}

	e.Set("9007199254740993")
	if _, err := e.Evaluate(); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got, want := e.Text(), "9007199254740992"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

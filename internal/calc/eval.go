package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Evaluate computes the value of an infix arithmetic expression over numbers,
// + - * / and parentheses. Nothing outside that grammar is ever executed.
//
// The returned error matches ErrIncomplete when expr is empty or ends with an
// operator, ErrSyntax when it is malformed and ErrDivisionByZero when a
// divisor evaluates to zero. Any other failure is an *UnexpectedError.
func Evaluate(expr string) (float64, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || IsOperator(rune(trimmed[len(trimmed)-1])) {
		return 0, ErrIncomplete
	}

	tree, err := parse(expr)
	if err != nil {
		return 0, err
	}

	v, err := tree.eval()
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			return 0, err
		}
		return 0, &UnexpectedError{Err: err}
	}

	if math.IsInf(v, 0) {
		return 0, &UnexpectedError{Err: fmt.Errorf("cannot convert float infinity to integer")}
	}
	if math.IsNaN(v) {
		return 0, &UnexpectedError{Err: fmt.Errorf("cannot convert float NaN to integer")}
	}
	return v, nil
}

// FormatResult renders v the way the display shows it. Whole numbers have no
// fraction or exponent; anything else uses the shortest decimal that round
// trips, in exponent form below 1e-4.
func FormatResult(v float64) string {
	if v == math.Trunc(v) {
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if math.Abs(v) < 1e-4 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

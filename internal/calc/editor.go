package calc

import "strings"

// Editor holds the in-progress expression of the standard calculator.
// Two operators are never adjacent: appending an operator after another
// replaces it.
type Editor struct {
	buf []rune
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Text returns the current expression.
func (e *Editor) Text() string {
	return string(e.buf)
}

// Empty reports whether the expression has no characters.
func (e *Editor) Empty() bool {
	return len(e.buf) == 0
}

// Append adds token to the expression. Operators are dropped on an empty
// expression or one holding only a sign (left by Backspace on a negative
// result), and otherwise replace a trailing operator. Digits, '.' and brackets are
// always appended; repeated decimal points in one number are left for the
// evaluator to reject.
func (e *Editor) Append(token rune) {
	if IsOperator(token) {
		if len(e.buf) == 0 || (len(e.buf) == 1 && IsOperator(e.buf[0])) {
			return
		}
		if IsOperator(e.buf[len(e.buf)-1]) {
			e.buf = e.buf[:len(e.buf)-1]
		}
	}
	e.buf = append(e.buf, token)
}

// Backspace removes the last character, if any.
func (e *Editor) Backspace() {
	if len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

// Clear empties the expression.
func (e *Editor) Clear() {
	e.buf = e.buf[:0]
}

// Set replaces the expression with text.
func (e *Editor) Set(text string) {
	e.buf = []rune(strings.TrimSpace(text))
}

// Evaluate computes the current expression. On success the expression is
// replaced by the formatted result so a calculation can be continued. On
// failure the expression is left untouched.
func (e *Editor) Evaluate() (float64, error) {
	v, err := Evaluate(e.Text())
	if err != nil {
		return 0, err
	}
	e.Set(FormatResult(v))
	return v, nil
}

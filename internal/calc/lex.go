package calc

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNum
	tokenOp
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
	col  int
}

// Operators contains the binary operator characters.
const Operators = "+-*/"

// IsOperator reports whether r is one of the four binary operators.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// lex splits src into tokens terminated by a tokenEOF. Anything outside the
// arithmetic character set is a syntax error.
func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		col := i + 1
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			n, err := scanNum(src[i:], col)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokenNum, text: src[i : i+n], col: col})
			i += n
		case IsOperator(rune(c)):
			toks = append(toks, token{kind: tokenOp, text: string(c), col: col})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokenOpen, text: "(", col: col})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokenClose, text: ")", col: col})
			i++
		default:
			r := []rune(src[i:])[0]
			return nil, &SyntaxError{Col: col, Reason: "unexpected character " + strconv.QuoteRune(r)}
		}
	}
	return append(toks, token{kind: tokenEOF, col: len(src) + 1}), nil
}

// scanNum returns the length of the number literal at the start of s.
// Accepted forms are 12, 1.5, .5 and 5. with an optional e[+-]digits exponent.
func scanNum(s string, col int) (int, error) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			fracDigits++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, &SyntaxError{Col: col, Reason: "number has no digits"}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k == j {
			return 0, &SyntaxError{Col: col + i, Reason: "exponent has no digits"}
		}
		i = k
	}
	return i, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

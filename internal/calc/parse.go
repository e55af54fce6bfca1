package calc

import (
	"errors"
	"strconv"
)

type parser struct {
	toks []token
	pos  int
}

// parse builds the expression tree for src. Multiplication and division bind
// tighter than addition and subtraction; operators of equal precedence group
// left to right.
func parse(src string) (node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, unexpected(tok)
	}
	return n, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) sum() (node, error) {
	l, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			return l, nil
		}
		p.next()
		r, err := p.product()
		if err != nil {
			return nil, err
		}
		l = &binaryNode{op: tok.text[0], l: l, r: r}
	}
}

func (p *parser) product() (node, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			return l, nil
		}
		p.next()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = &binaryNode{op: tok.text[0], l: l, r: r}
	}
}

func (p *parser) unary() (node, error) {
	tok := p.peek()
	if tok.kind == tokenOp && (tok.text == "+" || tok.text == "-") {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if tok.text == "-" {
			return &negNode{x: x}, nil
		}
		return x, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		// Out-of-range literals keep the ±Inf or 0 that ParseFloat returns.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &SyntaxError{Col: tok.col, Reason: "malformed number " + strconv.Quote(tok.text)}
		}
		return &numNode{val: v}, nil
	case tokenOpen:
		n, err := p.sum()
		if err != nil {
			return nil, err
		}
		if cl := p.next(); cl.kind != tokenClose {
			if cl.kind == tokenEOF {
				return nil, &SyntaxError{Col: tok.col, Reason: "open bracket with no close bracket"}
			}
			return nil, unexpected(cl)
		}
		return n, nil
	}
	return nil, unexpected(tok)
}

func unexpected(tok token) error {
	switch tok.kind {
	case tokenEOF:
		return &SyntaxError{Col: tok.col, Reason: "unexpected end of expression"}
	case tokenClose:
		return &SyntaxError{Col: tok.col, Reason: "close bracket with no open bracket"}
	}
	return &SyntaxError{Col: tok.col, Reason: "unexpected " + strconv.Quote(tok.text)}
}

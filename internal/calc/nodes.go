package calc

// node is an element of a parsed arithmetic expression.
type node interface {
	eval() (float64, error)
}

type numNode struct {
	val float64
}

func (n *numNode) eval() (float64, error) {
	return n.val, nil
}

type negNode struct {
	x node
}

func (n *negNode) eval() (float64, error) {
	v, err := n.x.eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binaryNode struct {
	op   byte
	l, r node
}

func (n *binaryNode) eval() (float64, error) {
	l, err := n.l.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.r.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	}
	panic("calc: unknown operator " + string(n.op))
}

package symexpr

import "fmt"

// Tree-building operators. Each is a pure function of its operands:
// it first attempts constant folding, then identity elimination, and
// only then allocates a node. Operands are never mutated, so parents
// may freely share subtrees. Re-applying an operator to an already
// simplified tree is a no-op.

// Add returns x + y.
func (x Expression) Add(y Expression) Expression {
	dom := x.joinDomain(y)
	lv, lok := x.litValue()
	rv, rok := y.litValue()
	switch {
	case lok && rok:
		return Lit(lv.Add(rv))
	case lok && lv.IsZero():
		return y
	case rok && rv.IsZero():
		return x
	}
	return Expression{root: add{lhs: x, rhs: y}, dom: dom}
}

// Sub returns x - y.
func (x Expression) Sub(y Expression) Expression {
	dom := x.joinDomain(y)
	lv, lok := x.litValue()
	rv, rok := y.litValue()
	switch {
	case lok && rok:
		return Lit(lv.Sub(rv))
	case rok && rv.IsZero():
		return x
	}
	return Expression{root: subtract{lhs: x, rhs: y}, dom: dom}
}

// Mul returns x * y.
func (x Expression) Mul(y Expression) Expression {
	dom := x.joinDomain(y)
	lv, lok := x.litValue()
	rv, rok := y.litValue()
	switch {
	case lok && rok:
		return Lit(lv.Mul(rv))
	case lok && lv.IsOne():
		return y
	case rok && rv.IsOne():
		return x
	case lok && lv.IsZero():
		return x
	case rok && rv.IsZero():
		return y
	}
	return Expression{root: multiply{lhs: x, rhs: y}, dom: dom}
}

// Div returns x / y. A literal zero divisor is rejected here, at
// construction time; a divisor that is zero only under particular
// bindings is caught by Eval instead.
func (x Expression) Div(y Expression) (Expression, error) {
	dom := x.joinDomain(y)
	lv, lok := x.litValue()
	rv, rok := y.litValue()
	if rok && rv.IsZero() {
		return Expression{}, fmt.Errorf("%w: literal zero divisor", ErrDivisionByZero)
	}
	switch {
	case lok && rok:
		return Lit(lv.Div(rv)), nil
	case rok && rv.IsOne():
		return x, nil
	case lok && lv.IsZero():
		return x, nil
	}
	return Expression{root: divide{lhs: x, rhs: y}, dom: dom}, nil
}

// Pow returns x ^ y.
func (x Expression) Pow(y Expression) Expression {
	dom := x.joinDomain(y)
	lv, lok := x.litValue()
	rv, rok := y.litValue()
	switch {
	case lok && rok:
		return Lit(lv.Pow(rv))
	case lok && lv.IsZero():
		return Lit(dom.one())
	case rok && rv.IsZero():
		return Lit(dom.one())
	case rok && rv.IsOne():
		return x
	}
	return Expression{root: power{lhs: x, rhs: y}, dom: dom}
}

// Sin returns sin(x), folded when x is a literal.
func (x Expression) Sin() Expression {
	if v, ok := x.litValue(); ok {
		return Lit(v.Sin())
	}
	return Expression{root: function{name: "sin", arg: x}, dom: x.dom}
}

// Cos returns cos(x), folded when x is a literal.
func (x Expression) Cos() Expression {
	if v, ok := x.litValue(); ok {
		return Lit(v.Cos())
	}
	return Expression{root: function{name: "cos", arg: x}, dom: x.dom}
}

// Ln returns ln(x). A literal argument outside ln's domain (real and
// not positive, or complex with real part not positive) is rejected
// here rather than deferred to evaluation.
func (x Expression) Ln() (Expression, error) {
	if v, ok := x.litValue(); ok {
		if !lnDefined(v) {
			return Expression{}, fmt.Errorf("%w: ln(%s)", ErrDomain, v)
		}
		return Lit(v.Ln()), nil
	}
	return Expression{root: function{name: "ln", arg: x}, dom: x.dom}, nil
}

// Exp returns exp(x), folded when x is a literal.
func (x Expression) Exp() Expression {
	if v, ok := x.litValue(); ok {
		return Lit(v.Exp())
	}
	return Expression{root: function{name: "exp", arg: x}, dom: x.dom}
}

package symexpr

import "fmt"

// ============================================================
// Expression — the externally visible handle
// ============================================================

// Expression is an immutable, shared-ownership reference to an
// expression tree. Its zero value is the empty expression, which
// renders as "null" and evaluates to the additive identity. Multiple
// parents may reference the same subtree; nothing mutates a node after
// construction, so a single tree may be read concurrently.
type Expression struct {
	root node
	dom  Domain
}

// Lit builds a literal expression from a scalar value.
func Lit(v Value) Expression {
	return Expression{root: lit{val: v}, dom: v.domain()}
}

// Lit builds a literal expression of this domain from a float.
func (d Domain) Lit(f float64) Expression { return Lit(d.FromFloat(f)) }

// Symbol builds a named-variable expression of this domain.
func (d Domain) Symbol(name string) Expression {
	return Expression{root: variable{name: name}, dom: d}
}

// IsEmpty reports whether x references no tree.
func (x Expression) IsEmpty() bool { return x.root == nil }

// Domain returns the numeric domain the tree is fixed to.
func (x Expression) Domain() Domain { return x.dom }

// String renders the canonical fully-parenthesized infix form: binary
// nodes as "(lhs OP rhs)", unary functions as "name(arg)", literals via
// the domain's decimal conversion, variables by name.
func (x Expression) String() string {
	if x.root == nil {
		return "null"
	}
	return x.root.render()
}

// Eval computes the tree's value under the given variable bindings,
// children before parents. In the complex domain the name "i" resolves
// to the imaginary unit unless a binding shadows it.
func (x Expression) Eval(vars map[string]Value) (Value, error) {
	if x.root == nil {
		return x.dom.zero(), nil
	}
	return x.root.eval(x.dom, vars)
}

// Diff returns the symbolic derivative of x with respect to name, as a
// new simplified tree. It never evaluates numerically; any error is a
// construction-time failure raised while building the derivative (for
// example a zero literal divisor produced by folding).
func (x Expression) Diff(name string) (Expression, error) {
	if x.root == nil {
		return Lit(x.dom.zero()), nil
	}
	return x.root.diff(x.dom, name)
}

// litValue unwraps x when it references a literal node.
func (x Expression) litValue() (Value, bool) {
	l, ok := x.root.(lit)
	if !ok {
		return nil, false
	}
	return l.val, true
}

// joinDomain resolves the domain of a binary combination. Empty
// operands adopt the other side's domain; two non-empty operands must
// agree.
func (x Expression) joinDomain(y Expression) Domain {
	if x.root == nil {
		return y.dom
	}
	if y.root == nil {
		return x.dom
	}
	if x.dom != y.dom {
		panic(fmt.Sprintf("symexpr: mixed expression domains (%s and %s)", x.dom, y.dom))
	}
	return x.dom
}

// ============================================================
// node — the closed set of tree node kinds
// ============================================================

type node interface {
	eval(dom Domain, vars map[string]Value) (Value, error)
	diff(dom Domain, name string) (Expression, error)
	render() string
}

type lit struct{ val Value }

func (l lit) eval(Domain, map[string]Value) (Value, error) { return l.val, nil }

func (l lit) diff(dom Domain, _ string) (Expression, error) {
	return Lit(dom.zero()), nil
}

func (l lit) render() string { return l.val.String() }

type variable struct{ name string }

func (v variable) eval(dom Domain, vars map[string]Value) (Value, error) {
	if val, ok := vars[v.name]; ok {
		return val, nil
	}
	if dom == Complexes && v.name == "i" {
		return Complex(complex(0, 1)), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnboundVariable, v.name)
}

func (v variable) diff(dom Domain, name string) (Expression, error) {
	// In the complex domain "i" is a built-in constant, not a variable.
	if dom == Complexes && v.name == "i" {
		return Lit(dom.zero()), nil
	}
	if v.name == name {
		return Lit(dom.one()), nil
	}
	return Lit(dom.zero()), nil
}

func (v variable) render() string { return v.name }

// ============================================================
// Binary nodes
// ============================================================

type add struct{ lhs, rhs Expression }

func (n add) eval(dom Domain, vars map[string]Value) (Value, error) {
	l, r, err := evalPair(n.lhs, n.rhs, vars)
	if err != nil {
		return nil, err
	}
	return l.Add(r), nil
}

func (n add) diff(dom Domain, name string) (Expression, error) {
	dl, dr, err := diffPair(n.lhs, n.rhs, name)
	if err != nil {
		return Expression{}, err
	}
	return dl.Add(dr), nil
}

func (n add) render() string { return renderBinary(n.lhs, "+", n.rhs) }

type subtract struct{ lhs, rhs Expression }

func (n subtract) eval(dom Domain, vars map[string]Value) (Value, error) {
	l, r, err := evalPair(n.lhs, n.rhs, vars)
	if err != nil {
		return nil, err
	}
	return l.Sub(r), nil
}

func (n subtract) diff(dom Domain, name string) (Expression, error) {
	dl, dr, err := diffPair(n.lhs, n.rhs, name)
	if err != nil {
		return Expression{}, err
	}
	return dl.Sub(dr), nil
}

func (n subtract) render() string { return renderBinary(n.lhs, "-", n.rhs) }

type multiply struct{ lhs, rhs Expression }

func (n multiply) eval(dom Domain, vars map[string]Value) (Value, error) {
	l, r, err := evalPair(n.lhs, n.rhs, vars)
	if err != nil {
		return nil, err
	}
	return l.Mul(r), nil
}

// product rule: l'*r + l*r'
func (n multiply) diff(dom Domain, name string) (Expression, error) {
	dl, dr, err := diffPair(n.lhs, n.rhs, name)
	if err != nil {
		return Expression{}, err
	}
	return dl.Mul(n.rhs).Add(n.lhs.Mul(dr)), nil
}

func (n multiply) render() string { return renderBinary(n.lhs, "*", n.rhs) }

type divide struct{ lhs, rhs Expression }

func (n divide) eval(dom Domain, vars map[string]Value) (Value, error) {
	divisor, err := n.rhs.Eval(vars)
	if err != nil {
		return nil, err
	}
	if divisor.IsZero() {
		return nil, fmt.Errorf("%w: divisor %s evaluates to zero", ErrDivisionByZero, n.rhs)
	}
	l, err := n.lhs.Eval(vars)
	if err != nil {
		return nil, err
	}
	return l.Div(divisor), nil
}

// quotient rule: (l'*r - l*r') / r^2
func (n divide) diff(dom Domain, name string) (Expression, error) {
	dl, dr, err := diffPair(n.lhs, n.rhs, name)
	if err != nil {
		return Expression{}, err
	}
	return dl.Mul(n.rhs).Sub(n.lhs.Mul(dr)).Div(n.rhs.Mul(n.rhs))
}

func (n divide) render() string { return renderBinary(n.lhs, "/", n.rhs) }

type power struct{ lhs, rhs Expression }

func (n power) eval(dom Domain, vars map[string]Value) (Value, error) {
	l, r, err := evalPair(n.lhs, n.rhs, vars)
	if err != nil {
		return nil, err
	}
	return l.Pow(r), nil
}

// generalized rule: l^r * (r'*ln(l) + r*l'/l)
func (n power) diff(dom Domain, name string) (Expression, error) {
	dl, dr, err := diffPair(n.lhs, n.rhs, name)
	if err != nil {
		return Expression{}, err
	}
	lnBase, err := n.lhs.Ln()
	if err != nil {
		return Expression{}, err
	}
	scaled, err := n.rhs.Mul(dl).Div(n.lhs)
	if err != nil {
		return Expression{}, err
	}
	return n.lhs.Pow(n.rhs).Mul(dr.Mul(lnBase).Add(scaled)), nil
}

func (n power) render() string { return renderBinary(n.lhs, "^", n.rhs) }

// ============================================================
// Unary function node
// ============================================================

type function struct {
	name string
	arg  Expression
}

func (n function) eval(dom Domain, vars map[string]Value) (Value, error) {
	v, err := n.arg.Eval(vars)
	if err != nil {
		return nil, err
	}
	switch n.name {
	case "sin":
		return v.Sin(), nil
	case "cos":
		return v.Cos(), nil
	case "ln":
		if !lnDefined(v) {
			return nil, fmt.Errorf("%w: ln(%s)", ErrDomain, v)
		}
		return v.Ln(), nil
	case "exp":
		return v.Exp(), nil
	}
	return nil, fmt.Errorf("%w: unknown function %q", ErrSyntax, n.name)
}

func (n function) diff(dom Domain, name string) (Expression, error) {
	da, err := n.arg.Diff(name)
	if err != nil {
		return Expression{}, err
	}
	switch n.name {
	case "sin":
		return n.arg.Cos().Mul(da), nil
	case "cos":
		return dom.Lit(-1).Mul(n.arg.Sin()).Mul(da), nil
	case "ln":
		return da.Div(n.arg)
	case "exp":
		return n.arg.Mul(da), nil
	}
	return Expression{}, fmt.Errorf("%w: unknown function %q", ErrSyntax, n.name)
}

func (n function) render() string { return n.name + "(" + n.arg.String() + ")" }

// ============================================================
// Shared traversal helpers
// ============================================================

func evalPair(lhs, rhs Expression, vars map[string]Value) (Value, Value, error) {
	l, err := lhs.Eval(vars)
	if err != nil {
		return nil, nil, err
	}
	r, err := rhs.Eval(vars)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func diffPair(lhs, rhs Expression, name string) (Expression, Expression, error) {
	dl, err := lhs.Diff(name)
	if err != nil {
		return Expression{}, Expression{}, err
	}
	dr, err := rhs.Diff(name)
	if err != nil {
		return Expression{}, Expression{}, err
	}
	return dl, dr, nil
}

func renderBinary(lhs Expression, op string, rhs Expression) string {
	return "(" + lhs.String() + " " + op + " " + rhs.String() + ")"
}

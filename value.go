// Package symexpr is a symbolic-expression engine: it parses arithmetic
// and trigonometric expressions into immutable trees, evaluates them
// under variable bindings over a real or complex numeric domain, and
// produces symbolic derivatives as new trees.
//
// Design goals:
//   - Closed node set, eager simplification on construction
//   - Immutable shared subtrees, safe for concurrent reads
//   - Deterministic canonical rendering
//   - Embeddable in Go services, CLI tools, and agent backends
package symexpr

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// ============================================================
// Domain — the numeric value space of a tree
// ============================================================

// Domain selects the scalar type an expression tree is fixed to.
// It is chosen once, when a tree is first built or parsed.
type Domain int

const (
	Reals Domain = iota
	Complexes
)

func (d Domain) String() string {
	switch d {
	case Reals:
		return "real"
	case Complexes:
		return "complex"
	}
	return "unknown"
}

// FromFloat wraps a float in this domain's scalar type.
func (d Domain) FromFloat(f float64) Value {
	if d == Complexes {
		return Complex(complex(f, 0))
	}
	return Real(f)
}

func (d Domain) zero() Value { return d.FromFloat(0) }
func (d Domain) one() Value  { return d.FromFloat(1) }

// ============================================================
// Value — a scalar in one domain
// ============================================================

// Value is one scalar of a fixed numeric domain. The set of
// implementations is closed: Real and Complex.
type Value interface {
	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value
	Div(Value) Value
	Pow(Value) Value
	Sin() Value
	Cos() Value
	Ln() Value
	Exp() Value
	IsZero() bool
	IsOne() bool
	String() string

	domain() Domain
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// mixing values of different domains is a caller bug, not a runtime
// condition the engine recovers from
func mustReal(v Value) Real {
	r, ok := v.(Real)
	if !ok {
		panic(fmt.Sprintf("symexpr: mixed numeric domains (%s operand in real arithmetic)", v.domain()))
	}
	return r
}

func mustComplex(v Value) Complex {
	c, ok := v.(Complex)
	if !ok {
		panic(fmt.Sprintf("symexpr: mixed numeric domains (%s operand in complex arithmetic)", v.domain()))
	}
	return c
}

// lnDefined reports whether ln is defined for v: positive reals, and
// complex values with positive real part. The complex restriction is
// intentionally narrower than the mathematical domain.
func lnDefined(v Value) bool {
	switch x := v.(type) {
	case Real:
		return x > 0
	case Complex:
		return real(complex128(x)) > 0
	}
	return false
}

// ============================================================
// Real
// ============================================================

type Real float64

func (r Real) Add(o Value) Value { return r + mustReal(o) }
func (r Real) Sub(o Value) Value { return r - mustReal(o) }
func (r Real) Mul(o Value) Value { return r * mustReal(o) }
func (r Real) Div(o Value) Value { return r / mustReal(o) }
func (r Real) Pow(o Value) Value {
	return Real(math.Pow(float64(r), float64(mustReal(o))))
}
func (r Real) Sin() Value { return Real(math.Sin(float64(r))) }
func (r Real) Cos() Value { return Real(math.Cos(float64(r))) }
func (r Real) Ln() Value  { return Real(math.Log(float64(r))) }
func (r Real) Exp() Value { return Real(math.Exp(float64(r))) }

func (r Real) IsZero() bool { return r == 0 }
func (r Real) IsOne() bool  { return r == 1 }

func (r Real) String() string { return formatFloat(float64(r)) }
func (r Real) domain() Domain { return Reals }

// ============================================================
// Complex
// ============================================================

type Complex complex128

func (c Complex) Add(o Value) Value { return c + mustComplex(o) }
func (c Complex) Sub(o Value) Value { return c - mustComplex(o) }
func (c Complex) Mul(o Value) Value { return c * mustComplex(o) }
func (c Complex) Div(o Value) Value { return c / mustComplex(o) }
func (c Complex) Pow(o Value) Value {
	return Complex(cmplx.Pow(complex128(c), complex128(mustComplex(o))))
}
func (c Complex) Sin() Value { return Complex(cmplx.Sin(complex128(c))) }
func (c Complex) Cos() Value { return Complex(cmplx.Cos(complex128(c))) }
func (c Complex) Ln() Value  { return Complex(cmplx.Log(complex128(c))) }
func (c Complex) Exp() Value { return Complex(cmplx.Exp(complex128(c))) }

func (c Complex) IsZero() bool { return c == 0 }
func (c Complex) IsOne() bool  { return c == 1 }

func (c Complex) String() string {
	return "(" + formatFloat(real(complex128(c))) + ", " + formatFloat(imag(complex128(c))) + ")"
}
func (c Complex) domain() Domain { return Complexes }

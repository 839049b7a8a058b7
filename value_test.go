package symexpr_test

import (
	"math"
	"testing"

	"github.com/njchilds90/symexpr"
)

// ============================================================
// Real tests
// ============================================================

func TestReal_Arithmetic(t *testing.T) {
	a, b := symexpr.Real(6), symexpr.Real(4)
	if got := a.Add(b); got != symexpr.Real(10) {
		t.Errorf("6+4: want 10, got %s", got)
	}
	if got := a.Sub(b); got != symexpr.Real(2) {
		t.Errorf("6-4: want 2, got %s", got)
	}
	if got := a.Mul(b); got != symexpr.Real(24) {
		t.Errorf("6*4: want 24, got %s", got)
	}
	if got := a.Div(b); got != symexpr.Real(1.5) {
		t.Errorf("6/4: want 1.5, got %s", got)
	}
	if got := symexpr.Real(2).Pow(symexpr.Real(10)); got != symexpr.Real(1024) {
		t.Errorf("2^10: want 1024, got %s", got)
	}
}

func TestReal_String(t *testing.T) {
	cases := map[symexpr.Real]string{
		5:    "5",
		2.5:  "2.5",
		-0.5: "-0.5",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Errorf("Real(%v).String(): want %s, got %s", float64(v), want, got)
		}
	}
}

func TestReal_ZeroOne(t *testing.T) {
	if !symexpr.Real(0).IsZero() || symexpr.Real(0.1).IsZero() {
		t.Error("IsZero misreports")
	}
	if !symexpr.Real(1).IsOne() || symexpr.Real(0).IsOne() {
		t.Error("IsOne misreports")
	}
}

func TestReal_Transcendental(t *testing.T) {
	if got := symexpr.Real(0).Sin(); got != symexpr.Real(0) {
		t.Errorf("sin(0): want 0, got %s", got)
	}
	if got := symexpr.Real(0).Cos(); got != symexpr.Real(1) {
		t.Errorf("cos(0): want 1, got %s", got)
	}
	if got := symexpr.Real(math.E).Ln(); math.Abs(float64(got.(symexpr.Real))-1) > 1e-12 {
		t.Errorf("ln(e): want 1, got %s", got)
	}
	if got := symexpr.Real(0).Exp(); got != symexpr.Real(1) {
		t.Errorf("exp(0): want 1, got %s", got)
	}
}

// ============================================================
// Complex tests
// ============================================================

func TestComplex_Arithmetic(t *testing.T) {
	i := symexpr.Complex(complex(0, 1))
	if got := i.Mul(i); got != symexpr.Complex(-1) {
		t.Errorf("i*i: want -1, got %s", got)
	}
	a := symexpr.Complex(complex(1, 2))
	b := symexpr.Complex(complex(3, -1))
	if got := a.Add(b); got != symexpr.Complex(complex(4, 1)) {
		t.Errorf("(1+2i)+(3-i): want 4+i, got %s", got)
	}
}

func TestComplex_String(t *testing.T) {
	if got := symexpr.Complex(complex(2, 0)).String(); got != "(2, 0)" {
		t.Errorf("want (2, 0), got %s", got)
	}
	if got := symexpr.Complex(complex(-1, 2.5)).String(); got != "(-1, 2.5)" {
		t.Errorf("want (-1, 2.5), got %s", got)
	}
}

func TestComplex_ZeroOne(t *testing.T) {
	if !symexpr.Complex(0).IsZero() {
		t.Error("0 should be zero")
	}
	if !symexpr.Complex(1).IsOne() {
		t.Error("1 should be one")
	}
	if symexpr.Complex(complex(0, 1)).IsZero() {
		t.Error("i is not zero")
	}
}

// ============================================================
// Domain tests
// ============================================================

func TestDomain_FromFloat(t *testing.T) {
	if v := symexpr.Reals.FromFloat(2); v != symexpr.Real(2) {
		t.Errorf("Reals.FromFloat(2): got %s", v)
	}
	if v := symexpr.Complexes.FromFloat(2); v != symexpr.Complex(2) {
		t.Errorf("Complexes.FromFloat(2): got %s", v)
	}
}

func TestDomain_String(t *testing.T) {
	if symexpr.Reals.String() != "real" || symexpr.Complexes.String() != "complex" {
		t.Error("domain names changed")
	}
}

func TestValue_MixedDomainsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mixing Real and Complex operands should panic")
		}
	}()
	_ = symexpr.Real(1).Add(symexpr.Complex(1))
}

package symexpr_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/njchilds90/symexpr"
)

func decodeTree(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", s, err)
	}
	return m
}

func TestJSON_RoundTrip(t *testing.T) {
	cases := []string{
		"(x * sin(x))",
		"(x + 3)",
		"((x ^ 2) / y)",
		"ln((x + 1))",
		"(2 - x)",
	}
	for _, want := range cases {
		e, err := symexpr.Parse(want, symexpr.Reals)
		if err != nil {
			t.Fatalf("Parse(%q): %v", want, err)
		}
		s, err := symexpr.ToJSON(e)
		if err != nil {
			t.Fatalf("ToJSON(%q): %v", want, err)
		}
		back, err := symexpr.FromJSON(decodeTree(t, s), symexpr.Reals)
		if err != nil {
			t.Fatalf("FromJSON(%q): %v", want, err)
		}
		if got := back.String(); got != want {
			t.Errorf("round trip: want %s, got %s", want, got)
		}
	}
}

func TestJSON_EmptyExpression(t *testing.T) {
	s, err := symexpr.ToJSON(symexpr.Expression{})
	if err != nil {
		t.Fatal(err)
	}
	m := decodeTree(t, s)
	if m["type"] != "null" {
		t.Errorf("empty expression: want type null, got %v", m["type"])
	}
	back, err := symexpr.FromJSON(m, symexpr.Reals)
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsEmpty() {
		t.Error("round-tripped empty expression should be empty")
	}
}

func TestJSON_ComplexLiteral(t *testing.T) {
	e := symexpr.Lit(symexpr.Complex(complex(2, -1)))
	s, err := symexpr.ToJSON(e)
	if err != nil {
		t.Fatal(err)
	}
	m := decodeTree(t, s)
	if m["re"] != 2.0 || m["im"] != -1.0 {
		t.Fatalf("complex literal encoding: got %v", m)
	}
	back, err := symexpr.FromJSON(m, symexpr.Complexes)
	if err != nil {
		t.Fatal(err)
	}
	if got := back.String(); got != "(2, -1)" {
		t.Errorf("want (2, -1), got %s", got)
	}
}

func TestJSON_DecodeSimplifies(t *testing.T) {
	// mul of x and 1 collapses to x on the way back in
	tree := map[string]interface{}{
		"type": "mul",
		"lhs":  map[string]interface{}{"type": "var", "name": "x"},
		"rhs":  map[string]interface{}{"type": "lit", "value": 1.0},
	}
	e, err := symexpr.FromJSON(tree, symexpr.Reals)
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "x" {
		t.Errorf("want x, got %s", got)
	}
}

func TestJSON_DecodeZeroDivisor(t *testing.T) {
	tree := map[string]interface{}{
		"type": "div",
		"lhs":  map[string]interface{}{"type": "lit", "value": 1.0},
		"rhs":  map[string]interface{}{"type": "lit", "value": 0.0},
	}
	_, err := symexpr.FromJSON(tree, symexpr.Reals)
	if !errors.Is(err, symexpr.ErrDivisionByZero) {
		t.Errorf("want ErrDivisionByZero, got %v", err)
	}
}

func TestJSON_DecodeErrors(t *testing.T) {
	bad := []map[string]interface{}{
		{"type": "banana"},
		{"type": "lit"},
		{"type": "var"},
		{"type": "add", "lhs": map[string]interface{}{"type": "var", "name": "x"}},
		{"type": "func", "name": "sin"},
	}
	for _, tree := range bad {
		if _, err := symexpr.FromJSON(tree, symexpr.Reals); err == nil {
			t.Errorf("FromJSON(%v): expected error", tree)
		}
	}
}

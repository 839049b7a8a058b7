package symexpr

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON serialization
// ============================================================

// ToJSON encodes the expression tree as JSON. Literals carry the
// scalar as {"re", "im"} pairs in the complex domain and a plain
// number otherwise; interior nodes carry their children recursively.
func ToJSON(x Expression) (string, error) {
	b, err := json.Marshal(jsonMap(x))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func jsonMap(x Expression) map[string]interface{} {
	switch n := x.root.(type) {
	case nil:
		return map[string]interface{}{"type": "null"}
	case lit:
		switch v := n.val.(type) {
		case Complex:
			return map[string]interface{}{
				"type": "lit",
				"re":   real(complex128(v)),
				"im":   imag(complex128(v)),
			}
		default:
			return map[string]interface{}{"type": "lit", "value": float64(n.val.(Real))}
		}
	case variable:
		return map[string]interface{}{"type": "var", "name": n.name}
	case add:
		return binaryMap("add", n.lhs, n.rhs)
	case subtract:
		return binaryMap("sub", n.lhs, n.rhs)
	case multiply:
		return binaryMap("mul", n.lhs, n.rhs)
	case divide:
		return binaryMap("div", n.lhs, n.rhs)
	case power:
		return binaryMap("pow", n.lhs, n.rhs)
	case function:
		return map[string]interface{}{"type": "func", "name": n.name, "arg": jsonMap(n.arg)}
	}
	return map[string]interface{}{"type": "null"}
}

func binaryMap(kind string, lhs, rhs Expression) map[string]interface{} {
	return map[string]interface{}{"type": kind, "lhs": jsonMap(lhs), "rhs": jsonMap(rhs)}
}

// FromJSON rebuilds an expression of the given domain from the map
// shape produced by ToJSON. Rebuilding goes through the simplifying
// operators, so the decoded tree is simplified and construction-time
// failures (zero divisors, ln domain) surface as errors.
func FromJSON(data map[string]interface{}, dom Domain) (Expression, error) {
	kind, _ := data["type"].(string)
	switch kind {
	case "null":
		return Expression{}, nil
	case "lit":
		if dom == Complexes {
			re, _ := data["re"].(float64)
			im, _ := data["im"].(float64)
			if _, ok := data["re"]; ok {
				return Lit(Complex(complex(re, im))), nil
			}
		}
		v, ok := data["value"].(float64)
		if !ok {
			return Expression{}, fmt.Errorf("lit node: missing numeric value")
		}
		return Lit(dom.FromFloat(v)), nil
	case "var":
		name, ok := data["name"].(string)
		if !ok {
			return Expression{}, fmt.Errorf("var node: missing name")
		}
		return dom.Symbol(name), nil
	case "add", "sub", "mul", "div", "pow":
		lhs, rhs, err := fromJSONPair(data, dom)
		if err != nil {
			return Expression{}, err
		}
		switch kind {
		case "add":
			return lhs.Add(rhs), nil
		case "sub":
			return lhs.Sub(rhs), nil
		case "mul":
			return lhs.Mul(rhs), nil
		case "div":
			return lhs.Div(rhs)
		default:
			return lhs.Pow(rhs), nil
		}
	case "func":
		name, _ := data["name"].(string)
		argData, ok := data["arg"].(map[string]interface{})
		if !ok {
			return Expression{}, fmt.Errorf("func node: missing arg")
		}
		arg, err := FromJSON(argData, dom)
		if err != nil {
			return Expression{}, err
		}
		return applyFunction(name, arg)
	}
	return Expression{}, fmt.Errorf("unknown node type %q", kind)
}

func fromJSONPair(data map[string]interface{}, dom Domain) (Expression, Expression, error) {
	lhsData, ok := data["lhs"].(map[string]interface{})
	if !ok {
		return Expression{}, Expression{}, fmt.Errorf("%s node: missing lhs", data["type"])
	}
	rhsData, ok := data["rhs"].(map[string]interface{})
	if !ok {
		return Expression{}, Expression{}, fmt.Errorf("%s node: missing rhs", data["type"])
	}
	lhs, err := FromJSON(lhsData, dom)
	if err != nil {
		return Expression{}, Expression{}, err
	}
	rhs, err := FromJSON(rhsData, dom)
	if err != nil {
		return Expression{}, Expression{}, err
	}
	return lhs, rhs, nil
}

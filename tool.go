package symexpr

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Tool-call layer — the embeddable RPC surface
// ============================================================

// ToolRequest is one tool invocation. Params:
//
//	expr   string  expression text (all tools)
//	domain string  "real" (default) or "complex"
//	var    string  differentiation variable (diff)
//	vars   object  name -> number, or name -> {"re", "im"} (eval)
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries the outcome of a tool call. Result holds the
// structured payload (a tree map or a scalar), String its canonical
// rendering. On failure only Error is set.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func errorResponse(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

// HandleToolCall dispatches one tool request. Tools: "parse", "eval",
// "diff", "render".
func HandleToolCall(req ToolRequest) ToolResponse {
	dom, err := domainParam(req.Params)
	if err != nil {
		return errorResponse(err)
	}
	text, _ := req.Params["expr"].(string)
	expr, err := Parse(text, dom)
	if err != nil {
		return errorResponse(err)
	}

	switch req.Tool {
	case "parse":
		return ToolResponse{Result: jsonMap(expr), String: expr.String()}

	case "render":
		return ToolResponse{String: expr.String()}

	case "eval":
		vars, err := bindingsParam(req.Params, dom)
		if err != nil {
			return errorResponse(err)
		}
		v, err := expr.Eval(vars)
		if err != nil {
			return errorResponse(err)
		}
		return ToolResponse{Result: scalarResult(v), String: v.String()}

	case "diff":
		name, ok := req.Params["var"].(string)
		if !ok || name == "" {
			return errorResponse(fmt.Errorf("diff: missing 'var' parameter"))
		}
		d, err := expr.Diff(name)
		if err != nil {
			return errorResponse(err)
		}
		return ToolResponse{Result: jsonMap(d), String: d.String()}
	}

	return errorResponse(fmt.Errorf("unknown tool %q", req.Tool))
}

func domainParam(params map[string]interface{}) (Domain, error) {
	raw, ok := params["domain"]
	if !ok {
		return Reals, nil
	}
	s, _ := raw.(string)
	switch s {
	case "", "real":
		return Reals, nil
	case "complex":
		return Complexes, nil
	}
	return Reals, fmt.Errorf("unknown domain %q", s)
}

func bindingsParam(params map[string]interface{}, dom Domain) (map[string]Value, error) {
	raw, ok := params["vars"]
	if !ok {
		return nil, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("'vars' must be an object")
	}
	vars := make(map[string]Value, len(m))
	for name, v := range m {
		switch val := v.(type) {
		case float64:
			vars[name] = dom.FromFloat(val)
		case map[string]interface{}:
			if dom != Complexes {
				return nil, fmt.Errorf("binding %q: {re, im} values need the complex domain", name)
			}
			re, _ := val["re"].(float64)
			im, _ := val["im"].(float64)
			vars[name] = Complex(complex(re, im))
		default:
			return nil, fmt.Errorf("binding %q: unsupported value %T", name, v)
		}
	}
	return vars, nil
}

func scalarResult(v Value) interface{} {
	switch x := v.(type) {
	case Complex:
		return map[string]interface{}{"re": real(complex128(x)), "im": imag(complex128(x))}
	case Real:
		return float64(x)
	}
	return v.String()
}

// ToolSpec returns the JSON schema of the available tools, for agent
// registration.
func ToolSpec() string {
	tools := []map[string]interface{}{
		toolDesc("parse", "Parse an expression and return its simplified tree", []string{"expr"},
			map[string]string{"expr": "expression text", "domain": "real or complex"}),
		toolDesc("eval", "Evaluate an expression under variable bindings", []string{"expr"},
			map[string]string{"expr": "expression text", "domain": "real or complex", "vars": "name to value bindings"}),
		toolDesc("diff", "Differentiate an expression with respect to a variable", []string{"expr", "var"},
			map[string]string{"expr": "expression text", "domain": "real or complex", "var": "variable name"}),
		toolDesc("render", "Return the canonical fully-parenthesized form", []string{"expr"},
			map[string]string{"expr": "expression text", "domain": "real or complex"}),
	}
	b, _ := json.MarshalIndent(map[string]interface{}{"tools": tools}, "", "  ")
	return string(b)
}

func toolDesc(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for p, desc := range props {
		properties[p] = map[string]string{"type": "string", "description": desc}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

package symexpr

import (
	"fmt"
	"strconv"
)

// ============================================================
// Parser — text to expression tree
// ============================================================

var precedence = map[byte]int{'+': 1, '-': 1, '*': 2, '/': 2, '^': 3}

// reserved function names; any other alphabetic run is a variable
var functions = map[string]struct{}{
	"sin": {}, "cos": {}, "ln": {}, "exp": {},
}

// Parse builds an expression tree of the given domain from text. It
// drives a two-stack operator-precedence evaluation over the tokens,
// calling the simplifying operators for every reduction, so the result
// is already simplified. Precedence is + - < * / < ^; all operators,
// including ^, reduce left-associatively.
//
// Adjacent operands multiply implicitly ("2x", "x(y+1)"), and a '-' in
// operand position is rewritten as a -1 factor, so "2 - -x" parses. A
// reserved function name must be immediately followed by '(' and its
// argument substring is parsed recursively.
func Parse(text string, dom Domain) (Expression, error) {
	var values []Expression
	var ops []byte

	applyTop := func() error {
		if len(ops) == 0 || len(values) < 2 {
			return fmt.Errorf("%w: malformed expression", ErrSyntax)
		}
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		rhs := values[len(values)-1]
		lhs := values[len(values)-2]
		values = values[:len(values)-2]

		var result Expression
		switch op {
		case '+':
			result = lhs.Add(rhs)
		case '-':
			result = lhs.Sub(rhs)
		case '*':
			result = lhs.Mul(rhs)
		case '/':
			var err error
			result, err = lhs.Div(rhs)
			if err != nil {
				return err
			}
		case '^':
			result = lhs.Pow(rhs)
		}
		values = append(values, result)
		return nil
	}

	expectOperand := true

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case isSpace(c):
			continue

		case c == '-' && expectOperand:
			// unary minus: a -1 factor, still expecting an operand
			values = append(values, dom.Lit(-1))
			ops = append(ops, '*')

		case isDigit(c) || c == '.':
			start := i
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			num := text[start:i]
			i--
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return Expression{}, fmt.Errorf("%w: bad number %q", ErrSyntax, num)
			}
			if !expectOperand {
				ops = append(ops, '*')
			}
			values = append(values, Lit(dom.FromFloat(f)))
			expectOperand = false

		case isAlpha(c):
			start := i
			for i < len(text) && isAlpha(text[i]) {
				i++
			}
			token := text[start:i]
			i--

			if _, reserved := functions[token]; reserved {
				if i+1 >= len(text) || text[i+1] != '(' {
					return Expression{}, fmt.Errorf("%w: expected '(' after %q", ErrSyntax, token)
				}
				i++
				argStart := i + 1
				depth := 1
				for i+1 < len(text) && depth > 0 {
					i++
					switch text[i] {
					case '(':
						depth++
					case ')':
						depth--
					}
				}
				if depth > 0 {
					return Expression{}, fmt.Errorf("%w: unmatched '(' in %s argument", ErrSyntax, token)
				}
				arg, err := Parse(text[argStart:i], dom)
				if err != nil {
					return Expression{}, err
				}
				call, err := applyFunction(token, arg)
				if err != nil {
					return Expression{}, err
				}
				if !expectOperand {
					ops = append(ops, '*')
				}
				values = append(values, call)
			} else {
				if !expectOperand {
					ops = append(ops, '*')
				}
				values = append(values, dom.Symbol(token))
			}
			expectOperand = false

		case c == '(':
			if !expectOperand {
				ops = append(ops, '*')
			}
			ops = append(ops, '(')
			expectOperand = true

		case c == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				if err := applyTop(); err != nil {
					return Expression{}, err
				}
			}
			if len(ops) == 0 {
				return Expression{}, fmt.Errorf("%w: unmatched ')'", ErrSyntax)
			}
			ops = ops[:len(ops)-1]
			expectOperand = false

		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			for len(ops) > 0 && ops[len(ops)-1] != '(' && precedence[ops[len(ops)-1]] >= precedence[c] {
				if err := applyTop(); err != nil {
					return Expression{}, err
				}
			}
			ops = append(ops, c)
			expectOperand = true

		default:
			return Expression{}, fmt.Errorf("%w: unexpected character %q", ErrSyntax, c)
		}
	}

	for len(ops) > 0 {
		if ops[len(ops)-1] == '(' {
			return Expression{}, fmt.Errorf("%w: unmatched '('", ErrSyntax)
		}
		if err := applyTop(); err != nil {
			return Expression{}, err
		}
	}

	if len(values) != 1 {
		if len(values) == 0 {
			return Expression{}, fmt.Errorf("%w: empty expression", ErrSyntax)
		}
		return Expression{}, fmt.Errorf("%w: malformed expression", ErrSyntax)
	}
	return values[0], nil
}

func applyFunction(name string, arg Expression) (Expression, error) {
	switch name {
	case "sin":
		return arg.Sin(), nil
	case "cos":
		return arg.Cos(), nil
	case "ln":
		return arg.Ln()
	case "exp":
		return arg.Exp(), nil
	}
	return Expression{}, fmt.Errorf("%w: unknown function %q", ErrSyntax, name)
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

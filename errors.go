package symexpr

import "errors"

// The four failure kinds of the engine. Callers match them with
// errors.Is; the wrapped message carries the offending detail.
var (
	// ErrSyntax reports malformed input text: an unknown character, a
	// function name not followed by '(', unmatched parentheses, a
	// malformed number, or empty input.
	ErrSyntax = errors.New("symexpr: syntax error")

	// ErrUnboundVariable reports evaluation of a name absent from the
	// bindings (and not the complex domain's built-in constant i).
	ErrUnboundVariable = errors.New("symexpr: unbound variable")

	// ErrDivisionByZero reports a divisor that is, or evaluates to, the
	// domain's zero. A literal zero divisor is rejected already at
	// construction time.
	ErrDivisionByZero = errors.New("symexpr: division by zero")

	// ErrDomain reports ln of a non-positive real, or of a complex value
	// whose real part is not positive.
	ErrDomain = errors.New("symexpr: ln domain error")
)

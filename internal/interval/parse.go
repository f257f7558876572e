package interval

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/mainterm/internal/rational"
)

// Parse reads the bracket notation used by String: "(1, 2]", "[3/2, 3/2]",
// "(0.5, 4)". Whitespace is ignored.
func Parse(s string) (Interval, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) < 5 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}

	var lowerInc, upperInc bool
	switch s[0] {
	case '[':
		lowerInc = true
	case '(':
	default:
		return Interval{}, fmt.Errorf("%w: %q must start with '(' or '['", ErrInvalidSyntax, s)
	}
	switch s[len(s)-1] {
	case ']':
		upperInc = true
	case ')':
	default:
		return Interval{}, fmt.Errorf("%w: %q must end with ')' or ']'", ErrInvalidSyntax, s)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: %q needs exactly two bounds", ErrInvalidSyntax, s)
	}

	lower, err := rational.Parse(parts[0])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: lower bound: %w", ErrInvalidSyntax, err)
	}
	upper, err := rational.Parse(parts[1])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: upper bound: %w", ErrInvalidSyntax, err)
	}

	return New(lower, upper, lowerInc, upperInc)
}

// ParseAll parses every expression, stopping at the first failure.
func ParseAll(exprs []string) ([]Interval, error) {
	out := make([]Interval, 0, len(exprs))
	for _, expr := range exprs {
		iv, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

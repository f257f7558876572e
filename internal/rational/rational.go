// Package rational holds the few exact-arithmetic helpers the interval
// and prover packages need on top of math/big.
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInvalidRational = errors.New("invalid rational number")

// New returns num/den. It panics when den is zero, like big.NewRat.
func New(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

// Int returns n as a rational.
func Int(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// FromInt converts an arbitrary precision integer.
func FromInt(n *big.Int) *big.Rat {
	return new(big.Rat).SetInt(n)
}

// Parse reads a rational written as an integer ("4"), a fraction ("3/2")
// or a decimal ("1.5").
func Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidRational)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRational, s)
	}
	return r, nil
}

// Clone returns a copy of r that does not share storage with it.
func Clone(r *big.Rat) *big.Rat {
	return new(big.Rat).Set(r)
}

// Ceil returns the smallest integer not less than r.
func Ceil(r *big.Rat) *big.Int {
	// the denominator is always positive, so Div is floor division here
	q := new(big.Int).Neg(r.Num())
	q.Div(q, r.Denom())
	return q.Neg(q)
}

// IsInteger reports whether r has denominator 1.
func IsInteger(r *big.Rat) bool {
	return r.IsInt()
}

// IsOdd reports whether n is odd. Negative values follow two's complement,
// so -1 is odd.
func IsOdd(n *big.Int) bool {
	return n.Bit(0) == 1
}

// Min returns a copy of the smaller of a and b.
func Min(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return Clone(a)
	}
	return Clone(b)
}

// Max returns a copy of the larger of a and b.
func Max(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return Clone(a)
	}
	return Clone(b)
}

// Add returns a+b.
func Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

// Mul returns a*b.
func Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

// String formats r without a denominator when it is an integer.
func String(r *big.Rat) string {
	return r.RatString()
}

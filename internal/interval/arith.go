package interval

import (
	"fmt"
	"math/big"

	"github.com/gnoswap-labs/mainterm/internal/rational"
)

// candidate is one endpoint product together with whether both of its
// factors were inclusive.
type candidate struct {
	value     *big.Rat
	inclusive bool
}

// Mul returns the interval of all products x*y with x in a and y in b.
//
// The bounds are the minimum and maximum of the four endpoint products.
// A bound is inclusive only if every endpoint pair reaching it is inclusive
// on both sides.
func Mul(a, b Interval) Interval {
	candidates := [4]candidate{
		{rational.Mul(a.lower, b.lower), a.lowerInc && b.lowerInc},
		{rational.Mul(a.lower, b.upper), a.lowerInc && b.upperInc},
		{rational.Mul(a.upper, b.lower), a.upperInc && b.lowerInc},
		{rational.Mul(a.upper, b.upper), a.upperInc && b.upperInc},
	}

	lo, hi := candidates[0].value, candidates[0].value
	for _, c := range candidates[1:] {
		if c.value.Cmp(lo) < 0 {
			lo = c.value
		}
		if c.value.Cmp(hi) > 0 {
			hi = c.value
		}
	}

	if lo.Cmp(hi) == 0 {
		if a.IsClosed() && b.IsClosed() {
			return Interval{lower: lo, upper: rational.Clone(hi), lowerInc: true, upperInc: true}
		}
		// empty
		return Interval{lower: lo, upper: rational.Clone(hi), lowerInc: false, upperInc: true}
	}

	lowerInc, upperInc := true, true
	for _, c := range candidates {
		if c.value.Cmp(lo) == 0 {
			lowerInc = lowerInc && c.inclusive
		}
		if c.value.Cmp(hi) == 0 {
			upperInc = upperInc && c.inclusive
		}
	}

	return Interval{lower: lo, upper: hi, lowerInc: lowerInc, upperInc: upperInc}
}

// Mul is shorthand for Mul(iv, other).
func (iv Interval) Mul(other Interval) Interval {
	return Mul(iv, other)
}

// IsContainedIn reports whether every point of iv is a point of other.
func (iv Interval) IsContainedIn(other Interval) bool {
	lo := iv.lower.Cmp(other.lower)
	hi := iv.upper.Cmp(other.upper)

	lowerOK := lo > 0 || lo == 0 && (!iv.lowerInc || other.lowerInc)
	upperOK := hi < 0 || hi == 0 && (!iv.upperInc || other.upperInc)
	return lowerOK && upperOK
}

// Union returns the convex hull of two connected intervals. Intervals are
// connected when they overlap or share a boundary point that at least one of
// them includes, e.g. (1, 3/2] and (3/2, 2].
func Union(a, b Interval) (Interval, error) {
	if !connected(a, b) {
		return Interval{}, fmt.Errorf("%w: %s | %s", ErrNotConnected, a, b)
	}

	out := Interval{}
	switch c := a.lower.Cmp(b.lower); {
	case c < 0:
		out.lower, out.lowerInc = rational.Clone(a.lower), a.lowerInc
	case c > 0:
		out.lower, out.lowerInc = rational.Clone(b.lower), b.lowerInc
	default:
		out.lower, out.lowerInc = rational.Clone(a.lower), a.lowerInc || b.lowerInc
	}
	switch c := a.upper.Cmp(b.upper); {
	case c > 0:
		out.upper, out.upperInc = rational.Clone(a.upper), a.upperInc
	case c < 0:
		out.upper, out.upperInc = rational.Clone(b.upper), b.upperInc
	default:
		out.upper, out.upperInc = rational.Clone(a.upper), a.upperInc || b.upperInc
	}
	return out, nil
}

// Union is shorthand for Union(iv, other).
func (iv Interval) Union(other Interval) (Interval, error) {
	return Union(iv, other)
}

func connected(a, b Interval) bool {
	if a.lower.Cmp(b.lower) > 0 {
		a, b = b, a
	}
	// a starts first; b must start no later than a ends
	switch c := b.lower.Cmp(a.upper); {
	case c < 0:
		return true
	case c == 0:
		return a.upperInc || b.lowerInc
	default:
		return false
	}
}

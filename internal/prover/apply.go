package prover

import (
	"fmt"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/rational"
)

var (
	threeHalves = interval.Point(rational.New(3, 2))
	half        = interval.Point(rational.New(1, 2))
)

// Apply maps an interval that does not straddle an integer through the
// main-term function. The branch is picked from the parity of ceil(upper).
func Apply(iv interval.Interval) (interval.Interval, error) {
	if straddles(iv) {
		return interval.Interval{}, fmt.Errorf("%w: %s", ErrStraddlesInteger, iv)
	}
	return interval.Mul(iv, Factor(iv)), nil
}

// Factor returns the constant [3/2, 3/2] or [1/2, 1/2] that Apply
// multiplies iv by.
func Factor(iv interval.Interval) interval.Interval {
	if rational.IsOdd(rational.Ceil(iv.Upper())) {
		return threeHalves
	}
	return half
}

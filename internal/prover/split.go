package prover

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/rational"
)

var (
	ErrNotOpenClosed    = errors.New("interval must be open-closed")
	ErrStraddlesInteger = errors.New("interval straddles an integer")
)

var one = rational.Int(1)

// BreakAtInteger splits the open-closed interval (lower, upper] into
// consecutive open-closed pieces whose inner bounds are integers, so that
// ceil is constant on every piece. The pieces cover the input exactly.
func BreakAtInteger(iv interval.Interval) ([]interval.Interval, error) {
	if !iv.IsOpenClosed() {
		return nil, fmt.Errorf("%w: %s", ErrNotOpenClosed, iv)
	}
	if iv.IsEmpty() {
		return nil, nil
	}

	lower, upper := iv.Lower(), iv.Upper()

	// lower itself is excluded, so an integer lower is not a split point
	split := rational.FromInt(rational.Ceil(lower))
	if split.Cmp(lower) == 0 {
		split = rational.Add(lower, one)
	}
	end := rational.FromInt(rational.Ceil(upper))

	var pieces []interval.Interval
	cur := lower
	for split.Cmp(end) < 0 {
		pieces = append(pieces, interval.MustOpenClosed(cur, split))
		cur = split
		split = rational.Add(split, one)
	}
	if rest := interval.MustOpenClosed(cur, upper); !rest.IsEmpty() {
		pieces = append(pieces, rest)
	}
	return pieces, nil
}

// straddles reports whether iv holds points with different ceilings.
func straddles(iv interval.Interval) bool {
	floor := new(big.Rat).Sub(rational.FromInt(rational.Ceil(iv.Upper())), one)
	c := iv.Lower().Cmp(floor)
	return c < 0 || c == 0 && iv.LowerInclusive()
}

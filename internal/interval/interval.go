// Package interval implements exact rational intervals whose lower and upper
// bounds are independently open or closed.
//
// An Interval is an immutable value. Every operation returns a new Interval
// and leaves its operands untouched, so values can be shared freely between
// goroutines.
package interval

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gnoswap-labs/mainterm/internal/rational"
)

var (
	ErrInvalidBounds = errors.New("lower bound is greater than upper bound")
	ErrNotConnected  = errors.New("intervals are not connected")
	ErrInvalidSyntax = errors.New("invalid interval syntax")
)

// Interval is a set of rationals between lower and upper.
type Interval struct {
	lower    *big.Rat
	upper    *big.Rat
	lowerInc bool
	upperInc bool
}

// New creates an interval, failing when lower > upper.
func New(lower, upper *big.Rat, lowerInc, upperInc bool) (Interval, error) {
	if lower == nil || upper == nil {
		return Interval{}, fmt.Errorf("%w: missing bound", ErrInvalidBounds)
	}
	if lower.Cmp(upper) > 0 {
		return Interval{}, fmt.Errorf("%w: %s > %s", ErrInvalidBounds, lower.RatString(), upper.RatString())
	}
	return Interval{
		lower:    rational.Clone(lower),
		upper:    rational.Clone(upper),
		lowerInc: lowerInc,
		upperInc: upperInc,
	}, nil
}

// Closed creates [lower, upper].
func Closed(lower, upper *big.Rat) (Interval, error) {
	return New(lower, upper, true, true)
}

// OpenClosed creates (lower, upper].
func OpenClosed(lower, upper *big.Rat) (Interval, error) {
	return New(lower, upper, false, true)
}

// MustClosed is like Closed but panics on invalid bounds.
func MustClosed(lower, upper *big.Rat) Interval {
	iv, err := Closed(lower, upper)
	if err != nil {
		panic(err)
	}
	return iv
}

// MustOpenClosed is like OpenClosed but panics on invalid bounds.
func MustOpenClosed(lower, upper *big.Rat) Interval {
	iv, err := OpenClosed(lower, upper)
	if err != nil {
		panic(err)
	}
	return iv
}

// Point returns the degenerate closed interval [v, v].
func Point(v *big.Rat) Interval {
	return MustClosed(v, v)
}

func (iv Interval) Lower() *big.Rat { return rational.Clone(iv.lower) }
func (iv Interval) Upper() *big.Rat { return rational.Clone(iv.upper) }

func (iv Interval) LowerInclusive() bool { return iv.lowerInc }
func (iv Interval) UpperInclusive() bool { return iv.upperInc }

// IsClosed reports whether both bounds are inclusive.
func (iv Interval) IsClosed() bool {
	return iv.lowerInc && iv.upperInc
}

// IsOpenClosed reports whether iv has the shape (lower, upper].
func (iv Interval) IsOpenClosed() bool {
	return !iv.lowerInc && iv.upperInc
}

// IsEmpty reports whether iv contains no point. Only a degenerate interval
// that is not closed on both sides is empty. The zero Interval is empty.
func (iv Interval) IsEmpty() bool {
	if iv.lower == nil || iv.upper == nil {
		return true
	}
	return iv.lower.Cmp(iv.upper) == 0 && !iv.IsClosed()
}

// ContainsPoint reports whether x lies in iv.
func (iv Interval) ContainsPoint(x *big.Rat) bool {
	lo := x.Cmp(iv.lower)
	hi := x.Cmp(iv.upper)
	return (lo > 0 || lo == 0 && iv.lowerInc) && (hi < 0 || hi == 0 && iv.upperInc)
}

// Equal reports whether both intervals have identical bounds and inclusivity.
func (iv Interval) Equal(other Interval) bool {
	return iv.lowerInc == other.lowerInc &&
		iv.upperInc == other.upperInc &&
		iv.lower.Cmp(other.lower) == 0 &&
		iv.upper.Cmp(other.upper) == 0
}

func (iv Interval) String() string {
	if iv.lower == nil || iv.upper == nil {
		return "()"
	}
	var b strings.Builder
	if iv.lowerInc {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(rational.String(iv.lower))
	b.WriteString(", ")
	b.WriteString(rational.String(iv.upper))
	if iv.upperInc {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// MarshalText encodes iv in the same form Parse accepts.
func (iv Interval) MarshalText() ([]byte, error) {
	return []byte(iv.String()), nil
}

// UnmarshalText decodes the textual form produced by MarshalText.
func (iv *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

// FormatList renders a sequence the way traces print working sets.
func FormatList(ivs []Interval) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = iv.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

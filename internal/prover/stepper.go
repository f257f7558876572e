package prover

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/rational"
)

var (
	ErrNonPositive   = errors.New("interval must lie in the positive reals")
	ErrEmptyInterval = errors.New("interval is empty")
	ErrExhausted     = errors.New("no unproven intervals left")
)

var target = interval.MustOpenClosed(rational.Int(0), rational.Int(1))

// Target returns (0, 1], the interval every point has to reach.
func Target() interval.Interval {
	return target
}

// Step is the snapshot of one round.
type Step struct {
	// Index counts rounds from 1; round 0 is the initial split.
	Index int

	Applied  []interval.Interval
	Broken   []interval.Interval
	Merged   []interval.Interval
	Unproven []interval.Interval
}

// Stepper advances the working set one round at a time. It cannot be
// rewound; create a new Stepper to start over.
type Stepper struct {
	unproven []interval.Interval
	index    int
}

// NewStepper validates iv and splits it at integers.
func NewStepper(iv interval.Interval) (*Stepper, error) {
	if err := validate(iv); err != nil {
		return nil, err
	}
	pieces, err := BreakAtInteger(iv)
	if err != nil {
		return nil, err
	}
	return &Stepper{unproven: pieces}, nil
}

func validate(iv interval.Interval) error {
	if !iv.IsOpenClosed() {
		return fmt.Errorf("%w: %s", ErrNotOpenClosed, iv)
	}
	if iv.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrEmptyInterval, iv)
	}
	if iv.Lower().Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrNonPositive, iv)
	}
	return nil
}

// Index returns the number of rounds performed so far.
func (s *Stepper) Index() int { return s.index }

// Unproven returns the current working set.
func (s *Stepper) Unproven() []interval.Interval {
	return slices.Clone(s.unproven)
}

// Done reports whether every piece has been proven.
func (s *Stepper) Done() bool {
	return len(s.unproven) == 0
}

// Next performs one round. It returns ErrExhausted once Done is true.
func (s *Stepper) Next() (Step, error) {
	if s.Done() {
		return Step{}, ErrExhausted
	}

	applied := make([]interval.Interval, 0, len(s.unproven))
	for _, iv := range s.unproven {
		image, err := Apply(iv)
		if err != nil {
			return Step{}, fmt.Errorf("round %d: %w", s.index+1, err)
		}
		applied = append(applied, image)
	}

	var broken []interval.Interval
	for _, iv := range applied {
		pieces, err := BreakAtInteger(iv)
		if err != nil {
			return Step{}, fmt.Errorf("round %d: %w", s.index+1, err)
		}
		broken = append(broken, pieces...)
	}

	merged := Merge(broken)

	unproven := make([]interval.Interval, 0, len(merged))
	for _, iv := range merged {
		if !iv.IsContainedIn(target) {
			unproven = append(unproven, iv)
		}
	}

	s.index++
	s.unproven = unproven

	return Step{
		Index:    s.index,
		Applied:  applied,
		Broken:   broken,
		Merged:   merged,
		Unproven: slices.Clone(unproven),
	}, nil
}

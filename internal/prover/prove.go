package prover

import (
	"context"
	"fmt"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

// Observer receives the working set as the iteration advances.
type Observer interface {
	Start(initial []interval.Interval)
	Step(step Step)
}

type multiObserver []Observer

func (m multiObserver) Start(initial []interval.Interval) {
	for _, o := range m {
		o.Start(initial)
	}
}

func (m multiObserver) Step(step Step) {
	for _, o := range m {
		o.Step(step)
	}
}

// MultiObserver fans every event out to each non-nil observer.
func MultiObserver(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

// Options bound a proof run.
type Options struct {
	// MaxIterations stops the run after that many rounds; zero means no limit.
	MaxIterations int
	Observer      Observer
}

// Result is the outcome of Prove.
type Result struct {
	Outcome      tt.Outcome
	Iterations   int
	PeakUnproven int
	// Unproven is the working set left behind by an inconclusive run.
	Unproven []interval.Interval
	Reason   string
}

// Prove iterates until every piece of iv lies in (0, 1]. When the round
// limit is hit or ctx is done it stops with OutcomeInconclusive instead.
// Errors are returned only for invalid input.
func Prove(ctx context.Context, iv interval.Interval, opts Options) (Result, error) {
	s, err := NewStepper(iv)
	if err != nil {
		return Result{}, err
	}

	obs := opts.Observer
	if obs == nil {
		obs = multiObserver(nil)
	}

	initial := s.Unproven()
	obs.Start(initial)

	res := Result{PeakUnproven: len(initial)}
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return inconclusive(res, s, fmt.Sprintf("stopped after %d rounds: %v", s.Index(), err)), nil
		}
		if opts.MaxIterations > 0 && s.Index() >= opts.MaxIterations {
			return inconclusive(res, s, fmt.Sprintf("iteration limit %d reached", opts.MaxIterations)), nil
		}

		step, err := s.Next()
		if err != nil {
			return res, err
		}
		obs.Step(step)

		res.Iterations = step.Index
		res.PeakUnproven = max(res.PeakUnproven, len(step.Unproven))
	}

	res.Outcome = tt.OutcomeProved
	return res, nil
}

func inconclusive(res Result, s *Stepper, reason string) Result {
	res.Outcome = tt.OutcomeInconclusive
	res.Iterations = s.Index()
	res.Unproven = s.Unproven()
	res.Reason = reason
	return res
}

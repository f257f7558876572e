package formatter

import (
	"fmt"
	"io"
	"sync"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/prover"
)

// Tracer prints the working set as a proof advances.
//
// At verbosity 1 it prints the round index and the unproven set, starting
// with round 0. At verbosity 2 and above every round is preceded by the
// applied, broken and merged sequences. Verbosity 0 prints nothing.
type Tracer struct {
	mu        sync.Mutex
	w         io.Writer
	verbosity int
}

var _ prover.Observer = (*Tracer)(nil)

func NewTracer(w io.Writer, verbosity int) *Tracer {
	return &Tracer{w: w, verbosity: verbosity}
}

func (t *Tracer) Start(initial []interval.Interval) {
	if t.verbosity < 1 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.round(0, initial)
}

func (t *Tracer) Step(step prover.Step) {
	if t.verbosity < 1 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.verbosity > 1 {
		t.stage("applied", step.Applied)
		t.stage("broken", step.Broken)
		t.stage("merged", step.Merged)
	}
	t.round(step.Index, step.Unproven)
}

func (t *Tracer) round(index int, ivs []interval.Interval) {
	fmt.Fprintf(t.w, "%s %s\n", lineStyle.Sprint(index), interval.FormatList(ivs))
}

func (t *Tracer) stage(name string, ivs []interval.Interval) {
	fmt.Fprintf(t.w, "%s %s\n", stageStyle.Sprint(name), interval.FormatList(ivs))
}

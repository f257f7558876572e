package types

import (
	"fmt"
	"time"
)

// Outcome is the verdict of a proof run. There is no "disproved" verdict:
// the iteration can only finish by proving the interval.
type Outcome int

const (
	OutcomeProved Outcome = iota
	OutcomeInconclusive
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProved:
		return "proved"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "proved":
		*o = OutcomeProved
	case "inconclusive":
		*o = OutcomeInconclusive
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

// Report summarizes the proof of one input interval.
type Report struct {
	Interval     string        `json:"interval"`
	Outcome      Outcome       `json:"outcome"`
	Iterations   int           `json:"iterations"`
	PeakUnproven int           `json:"peak_unproven"`
	Unproven     []string      `json:"unproven,omitempty"`
	Reason       string        `json:"reason,omitempty"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Proved reports whether the interval was fully proven.
func (r Report) Proved() bool {
	return r.Outcome == OutcomeProved
}

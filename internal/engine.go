package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/mainterm/formatter"
	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/prover"
	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

var ErrInvalidSettings = errors.New("invalid engine settings")

// Settings control every proof run by an Engine.
type Settings struct {
	// MaxIterations bounds the rounds per interval; zero means unbounded.
	MaxIterations int
	// Verbosity selects the trace level written to Output.
	Verbosity int
	Output    io.Writer
	// Cache, when set, answers intervals that were already proved. A cache
	// hit prints no trace.
	Cache *Cache
}

// Engine manages the proof process.
type Engine struct {
	logger   *zap.Logger
	settings Settings
}

// NewEngine creates a new proof engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger, settings Settings) (*Engine, error) {
	if settings.MaxIterations < 0 {
		return nil, fmt.Errorf("%w: max iterations %d is negative", ErrInvalidSettings, settings.MaxIterations)
	}
	if settings.Verbosity < 0 {
		return nil, fmt.Errorf("%w: verbosity %d is negative", ErrInvalidSettings, settings.Verbosity)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, settings: settings}, nil
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Run parses expr and proves it.
func (e *Engine) Run(ctx context.Context, expr string) (tt.Report, error) {
	iv, err := interval.Parse(expr)
	if err != nil {
		return tt.Report{}, fmt.Errorf("error parsing interval: %w", err)
	}
	return e.RunInterval(ctx, iv)
}

// RunInterval proves iv and summarizes the result.
func (e *Engine) RunInterval(ctx context.Context, iv interval.Interval) (tt.Report, error) {
	if e.settings.Cache != nil {
		if report, ok := e.settings.Cache.Get(iv.String(), e.settings.MaxIterations); ok {
			e.logger.Debug("cache hit", zap.String("interval", report.Interval))
			return report, nil
		}
	}

	var tracer prover.Observer
	if e.settings.Verbosity > 0 && e.settings.Output != nil {
		tracer = formatter.NewTracer(e.settings.Output, e.settings.Verbosity)
	}

	start := time.Now()
	res, err := prover.Prove(ctx, iv, prover.Options{
		MaxIterations: e.settings.MaxIterations,
		Observer:      prover.MultiObserver(tracer, &logObserver{logger: e.logger, input: iv.String()}),
	})
	if err != nil {
		return tt.Report{}, fmt.Errorf("error proving %s: %w", iv, err)
	}

	report := tt.Report{
		Interval:     iv.String(),
		Outcome:      res.Outcome,
		Iterations:   res.Iterations,
		PeakUnproven: res.PeakUnproven,
		Reason:       res.Reason,
		Elapsed:      time.Since(start),
	}
	for _, u := range res.Unproven {
		report.Unproven = append(report.Unproven, u.String())
	}

	e.logger.Info("proof finished",
		zap.String("interval", report.Interval),
		zap.Stringer("outcome", report.Outcome),
		zap.Int("iterations", report.Iterations),
		zap.Int("peak_unproven", report.PeakUnproven),
		zap.Duration("elapsed", report.Elapsed),
	)

	if e.settings.Cache != nil {
		e.settings.Cache.Set(report)
	}
	return report, nil
}

// Split parses expr and breaks it at integers.
func (e *Engine) Split(expr string) (interval.Interval, []interval.Interval, error) {
	iv, err := interval.Parse(expr)
	if err != nil {
		return interval.Interval{}, nil, fmt.Errorf("error parsing interval: %w", err)
	}
	pieces, err := prover.BreakAtInteger(iv)
	if err != nil {
		return interval.Interval{}, nil, err
	}
	return iv, pieces, nil
}

// logObserver reports every round at debug level.
type logObserver struct {
	logger *zap.Logger
	input  string
}

func (o *logObserver) Start(initial []interval.Interval) {
	o.logger.Debug("split input",
		zap.String("interval", o.input),
		zap.Int("pieces", len(initial)),
	)
}

func (o *logObserver) Step(step prover.Step) {
	o.logger.Debug("round finished",
		zap.String("interval", o.input),
		zap.Int("iteration", step.Index),
		zap.Int("broken", len(step.Broken)),
		zap.Int("merged", len(step.Merged)),
		zap.Int("unproven", len(step.Unproven)),
	)
}

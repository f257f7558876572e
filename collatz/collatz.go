// Package collatz is the public entry point for proving that the Collatz
// main-term map sends every point of a rational interval into (0, 1].
package collatz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/mainterm/formatter"
	"github.com/gnoswap-labs/mainterm/internal"
	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/prover"
	"github.com/gnoswap-labs/mainterm/internal/rational"
	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

// maxChunks caps the number of intervals a sweep may generate.
const maxChunks = 1_000_000

var ErrInvalidSweep = errors.New("invalid sweep range")

type (
	Interval = interval.Interval
	Report   = tt.Report
)

// ParseInterval reads the bracket notation, e.g. "(1, 2]".
func ParseInterval(s string) (Interval, error) {
	return interval.Parse(s)
}

type ProofEngine interface {
	Run(ctx context.Context, expr string) (tt.Report, error)
}

// Processor proves a single textual interval with engine.
type Processor func(ctx context.Context, engine ProofEngine, expr string) (tt.Report, error)

// New builds a proof engine from config. Trace output goes to out.
func New(logger *zap.Logger, config Config, out io.Writer) (*internal.Engine, error) {
	return NewCached(logger, config, out, nil)
}

// NewCached is like New but answers already proved intervals from cache.
func NewCached(logger *zap.Logger, config Config, out io.Writer, cache *internal.Cache) (*internal.Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return internal.NewEngine(logger, internal.Settings{
		MaxIterations: config.MaxIterations,
		Verbosity:     config.Verbose,
		Output:        out,
		Cache:         cache,
	})
}

// ProveInterval proves that every point of the open-closed interval iv
// reaches (0, 1], printing the trace selected by verbose to stdout.
//
// The search is unbounded: it returns true once the interval is proven and
// does not return otherwise. An error is returned only for invalid input.
func ProveInterval(iv Interval, verbose int) (bool, error) {
	res, err := prover.Prove(context.Background(), iv, prover.Options{
		Observer: formatter.NewTracer(os.Stdout, verbose),
	})
	if err != nil {
		return false, err
	}
	return res.Outcome == tt.OutcomeProved, nil
}

// ProcessInterval is the default Processor.
func ProcessInterval(ctx context.Context, engine ProofEngine, expr string) (tt.Report, error) {
	return engine.Run(ctx, expr)
}

// BatchOptions tune ProcessIntervals.
type BatchOptions struct {
	// Workers bounds concurrent proofs; zero means NumCPU.
	Workers int
	// Progress receives a progress bar when set and there is more than one
	// interval.
	Progress io.Writer
}

// ProcessIntervals proves every expression on a bounded worker pool and
// returns the reports in input order. The first processor error cancels
// the remaining work.
func ProcessIntervals(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofEngine,
	exprs []string,
	opts BatchOptions,
	processor Processor,
) ([]tt.Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil && len(exprs) > 1 {
		bar = progressbar.NewOptions(len(exprs),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("proving"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	reports := make([]tt.Report, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			report, err := processor(gctx, engine, expr)
			if err != nil {
				logger.Error("Error processing interval", zap.String("interval", expr), zap.Error(err))
				return fmt.Errorf("%s: %w", expr, err)
			}
			reports[i] = report
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// SweepChunks covers (from, to] with consecutive open-closed intervals of
// the given width; the last chunk may be shorter.
func SweepChunks(from, to, width string) ([]string, error) {
	lo, err := rational.Parse(from)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrInvalidSweep, err)
	}
	hi, err := rational.Parse(to)
	if err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrInvalidSweep, err)
	}
	step, err := rational.Parse(width)
	if err != nil {
		return nil, fmt.Errorf("%w: width: %w", ErrInvalidSweep, err)
	}

	switch {
	case lo.Sign() < 0:
		return nil, fmt.Errorf("%w: from %s is negative", ErrInvalidSweep, lo.RatString())
	case lo.Cmp(hi) >= 0:
		return nil, fmt.Errorf("%w: from %s is not below to %s", ErrInvalidSweep, lo.RatString(), hi.RatString())
	case step.Sign() <= 0:
		return nil, fmt.Errorf("%w: width %s is not positive", ErrInvalidSweep, step.RatString())
	}

	count := new(big.Rat).Sub(hi, lo)
	count.Quo(count, step)
	if rational.Ceil(count).Cmp(big.NewInt(maxChunks)) > 0 {
		return nil, fmt.Errorf("%w: more than %d chunks", ErrInvalidSweep, maxChunks)
	}

	var chunks []string
	for cur := lo; cur.Cmp(hi) < 0; {
		next := rational.Min(rational.Add(cur, step), hi)
		chunks = append(chunks, interval.MustOpenClosed(cur, next).String())
		cur = next
	}
	return chunks, nil
}

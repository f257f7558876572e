package internal

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gnoswap-labs/mainterm/internal/interval"
	"github.com/gnoswap-labs/mainterm/internal/prover"
	"github.com/gnoswap-labs/mainterm/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil, Settings{MaxIterations: 10})
	require.NoError(t, err)
	assert.NotNil(t, engine.logger)
	assert.Equal(t, 10, engine.Settings().MaxIterations)

	_, err = NewEngine(nil, Settings{MaxIterations: -1})
	assert.ErrorIs(t, err, ErrInvalidSettings)

	_, err = NewEngine(nil, Settings{Verbosity: -1})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestEngine_Run(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		expr         string
		limit        int
		outcome      types.Outcome
		iterations   int
		peakUnproven int
		unproven     []string
	}{
		{"single round", "(1, 2]", 0, types.OutcomeProved, 1, 1, nil},
		{"already inside", "(0, 1]", 0, types.OutcomeProved, 2, 1, nil},
		{"zero to four", "(0, 4]", 0, types.OutcomeProved, 11, 4, nil},
		{"round limit", "(0, 4]", 5, types.OutcomeInconclusive, 5, 4, []string{"(27/4, 7]", "(7, 243/32]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(zap.NewNop(), Settings{MaxIterations: tt.limit})
			require.NoError(t, err)

			report, err := engine.Run(context.Background(), tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, report.Interval)
			assert.Equal(t, tt.outcome, report.Outcome)
			assert.Equal(t, tt.iterations, report.Iterations)
			assert.Equal(t, tt.peakUnproven, report.PeakUnproven)
			assert.Equal(t, tt.unproven, report.Unproven)
			if tt.outcome == types.OutcomeInconclusive {
				assert.NotEmpty(t, report.Reason)
			}
		})
	}
}

func TestEngine_RunErrors(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil, Settings{})
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), "(1, 2")
	assert.ErrorIs(t, err, interval.ErrInvalidSyntax)

	_, err = engine.Run(context.Background(), "[1, 2]")
	assert.ErrorIs(t, err, prover.ErrNotOpenClosed)

	_, err = engine.Run(context.Background(), "(2, 2]")
	assert.ErrorIs(t, err, prover.ErrEmptyInterval)
}

func TestEngine_RunCanceled(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil, Settings{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := engine.Run(ctx, "(0, 4]")
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeInconclusive, report.Outcome)
	assert.Zero(t, report.Iterations)
	assert.Contains(t, report.Reason, "canceled")
}

func TestEngine_Trace(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	engine, err := NewEngine(nil, Settings{Verbosity: 2, Output: &out})
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), "(1, 2]")
	require.NoError(t, err)

	want := "0 [(1, 2]]\n" +
		"applied [(1/2, 1]]\n" +
		"broken [(1/2, 1]]\n" +
		"merged [(1/2, 1]]\n" +
		"1 []\n"
	assert.Equal(t, want, out.String())
}

func TestEngine_TraceNeedsOutput(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil, Settings{Verbosity: 2})
	require.NoError(t, err)

	report, err := engine.Run(context.Background(), "(1, 2]")
	require.NoError(t, err)
	assert.True(t, report.Proved())
}

func TestEngine_Logging(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	engine, err := NewEngine(zap.New(core), Settings{})
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), "(1, 2]")
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("split input").Len())
	assert.Equal(t, 1, logs.FilterMessage("round finished").Len())

	finished := logs.FilterMessage("proof finished").All()
	require.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.Equal(t, "(1, 2]", fields["interval"])
	assert.Equal(t, "proved", fields["outcome"])
	assert.EqualValues(t, 1, fields["iterations"])
}

func TestEngine_Split(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(nil, Settings{})
	require.NoError(t, err)

	iv, pieces, err := engine.Split("(3/2, 4]")
	require.NoError(t, err)
	assert.Equal(t, "(3/2, 4]", iv.String())
	assert.Equal(t, "[(3/2, 2], (2, 3], (3, 4]]", interval.FormatList(pieces))

	_, _, err = engine.Split("[1, 2]")
	assert.ErrorIs(t, err, prover.ErrNotOpenClosed)

	_, _, err = engine.Split("nope")
	assert.ErrorIs(t, err, interval.ErrInvalidSyntax)
}

// Package internal wires the exact interval prover to the rest of the tool.
//
// Engine turns textual intervals into proof reports. It parses the input,
// runs prover.Prove under the configured round limit, feeds every round to
// a trace printer and the debug logger, and records how long the run took.
//
// Usage:
//
//	engine, err := internal.NewEngine(logger, internal.Settings{MaxIterations: 1000})
//	if err != nil {
//	    // handle error
//	}
//
//	report, err := engine.Run(ctx, "(0, 4]")
//	if err != nil {
//	    // malformed interval
//	}
//	fmt.Println(report.Outcome)
//
// WatchFile re-runs a callback whenever a file is written, which the CLI
// uses to re-prove the intervals of a configuration file. A Cache passed in
// Settings lets those re-runs skip intervals that are already proved.
//
// This package is intended for internal use within the tool and should not be
// imported by external packages.
package internal

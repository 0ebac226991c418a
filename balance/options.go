// SPDX-License-Identifier: MIT
// Package balance: functional options.
//
// Defaults:
//   - MaxDenominator: DefaultMaxDenominator (100).
//   - RankTolerance:  DefaultRankTolerance (0, only exactly-zero singular values are dropped).
//   - Signs:          strict; a coefficient on the wrong side fails with ErrInconsistentSign.
//   - Logger:         discards everything.
//
// Option constructors panic on programmer error (invalid literals), never on user data.

package balance

import (
	"io"
	"log/slog"
	"math"
)

const (
	// DefaultMaxDenominator bounds the denominator of each reconstructed fraction.
	DefaultMaxDenominator int64 = 100

	// DefaultRankTolerance is the relative singular-value cutoff of the solver.
	DefaultRankTolerance = 0.0
)

// Options configures Balance. Use the With* constructors; the zero value is not valid.
type Options struct {
	maxDenominator int64
	rankTolerance  float64
	lenientSigns   bool
	logger         *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDenominator sets the largest denominator a relative coefficient may
// be approximated with. Panics if n < 1.
func WithMaxDenominator(n int64) Option {
	if n < 1 {
		panic("balance: WithMaxDenominator requires n >= 1")
	}

	return func(o *Options) { o.maxDenominator = n }
}

// WithRankTolerance sets the rcond cutoff passed to matrix.LeastSquares.
// Panics on negative or non-finite values.
func WithRankTolerance(rcond float64) Option {
	if rcond < 0 || math.IsNaN(rcond) || math.IsInf(rcond, 0) {
		panic("balance: WithRankTolerance requires a finite rcond >= 0")
	}

	return func(o *Options) { o.rankTolerance = rcond }
}

// WithLenientSigns discards the sign of every relative coefficient instead of
// checking it against the compound's side. Reactions the sign check would
// reject are then left to the verifier.
func WithLenientSigns() Option {
	return func(o *Options) { o.lenientSigns = true }
}

// WithLogger routes debug tracing of the pipeline to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{
		maxDenominator: DefaultMaxDenominator,
		rankTolerance:  DefaultRankTolerance,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

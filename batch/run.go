// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/chem"
)

// DefaultWorkers lets the pool size itself to runtime.NumCPU().
const DefaultWorkers = 0

// Result is the outcome of balancing one Entry.
type Result struct {
	ID       string                // run identifier
	Index    int                   // position in the input
	Name     string                // Entry.Name
	Equation string                // canonical equation, Entry.Text() when unparsable
	Reaction chem.BalancedReaction // zero when Err != nil
	Err      error
}

// OK reports whether the entry balanced.
func (r Result) OK() bool { return r.Err == nil }

// Options configures Run.
type Options struct {
	workers     int
	newID       func() string
	balanceOpts []balance.Option
	logger      *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the pool size; n <= 0 selects runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithIDFunc replaces the uuid generator used for Result.ID. IDs are drawn in
// input order from the submitting goroutine.
func WithIDFunc(f func() string) Option {
	return func(o *Options) {
		if f != nil {
			o.newID = f
		}
	}
}

// WithBalanceOptions forwards opts to every balance.Balance call.
func WithBalanceOptions(opts ...balance.Option) Option {
	return func(o *Options) { o.balanceOpts = append(o.balanceOpts, opts...) }
}

// WithLogger routes per-entry debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{
		workers: DefaultWorkers,
		newID:   func() string { return uuid.New().String() },
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Run balances every entry and returns results in input order.
// Per-entry failures are stored on the Result. The returned error is non-nil
// only when ctx ends before every entry was submitted; entries that never ran
// carry ctx.Err().
func Run(ctx context.Context, entries []Entry, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts)
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Index: i, Name: e.Name, Equation: e.Text()}
	}

	pool := newWorkerPool(o.workers)
	var stopErr error
	for i := range entries {
		i := i
		results[i].ID = o.newID()
		err := pool.submit(ctx, func() {
			res := balanceEntry(entries[i], o)
			results[i].Reaction, results[i].Err = res.Reaction, res.Err
			if res.Equation != "" {
				results[i].Equation = res.Equation
			}
			o.logger.Debug("batch entry done",
				slog.Int("index", i),
				slog.String("id", results[i].ID),
				slog.Bool("ok", res.Err == nil))
		})
		if err != nil {
			stopErr = err
			for j := i; j < len(entries); j++ {
				results[j].Err = err
			}
			break
		}
	}
	pool.shutdown()

	if stopErr != nil {
		return results, batchErrorf("Run", stopErr)
	}

	return results, nil
}

func balanceEntry(e Entry, o Options) Result {
	reagents, products, err := e.Compounds()
	if err != nil {
		return Result{Err: err}
	}
	r, err := balance.Balance(reagents, products, o.balanceOpts...)

	return Result{Equation: chem.Equation(reagents, products), Reaction: r, Err: err}
}

// Summarize counts balanced and failed results.
func Summarize(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}

	return ok, failed
}

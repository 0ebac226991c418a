// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoich/batch"
	"github.com/katalvlaran/stoich/store"
)

// BatchItem is the outcome of one batch entry.
type BatchItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Equation string    `json:"equation"`
	Status   string    `json:"status"` // "ok" | "failed"
	Balanced string    `json:"balanced,omitempty"`
	Error    *CLIError `json:"error,omitempty"`
}

// BatchData is the payload of the batch command.
type BatchData struct {
	Results  []BatchItem `json:"results"`
	Balanced int         `json:"balanced"`
	Failed   int         `json:"failed"`
}

// String renders one line per entry plus a summary line.
func (d BatchData) String() string {
	var b strings.Builder
	for i, it := range d.Results {
		label := it.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		detail := it.Balanced
		if it.Error != nil {
			detail = fmt.Sprintf("[%s] %s", it.Error.Code, it.Error.Message)
		}
		fmt.Fprintf(&b, "%-6s %s: %s\n", it.Status, label, detail)
	}
	fmt.Fprintf(&b, "%d balanced, %d failed", d.Balanced, d.Failed)
	return b.String()
}

func newBatchData(results []batch.Result) BatchData {
	d := BatchData{Results: make([]BatchItem, len(results))}
	d.Balanced, d.Failed = batch.Summarize(results)
	for i, r := range results {
		it := BatchItem{ID: r.ID, Name: r.Name, Equation: r.Equation, Status: string(store.StatusOK)}
		if r.Err != nil {
			it.Status = string(store.StatusFailed)
			it.Error = &CLIError{Code: errorCode(r.Err), Message: r.Err.Error(), Details: errorDetails(r.Err)}
		} else {
			it.Balanced = r.Reaction.String()
		}
		d.Results[i] = it
	}
	return d
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &balanceFlags{}
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Balance every reaction listed in a YAML file",
		Long: `Balance every reaction listed in a YAML batch file:

  reactions:
    - name: aluminium chloride
      equation: Al + Cl2 = AlCl3
    - name: permanganate
      reagents: [KMnO4, HCl]
      products: [KCl, MnCl2, H2O, Cl2]

Results keep file order. Exit code 1 means at least one reaction failed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, flags, workers, args[0], cmd)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", batch.DefaultWorkers, "worker goroutines (0 = number of CPUs)")

	return cmd
}

func runBatch(opts *RootOptions, flags *balanceFlags, workers int, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger(formatter.GetErrWriter())

	balOpts, err := flags.options(logger)
	if err != nil {
		formatter.Error(ErrCodeInvalidOptions, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid options", err)
	}

	entries, err := batch.LoadFile(path)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "load failed", err)
	}

	results, err := batch.Run(cmd.Context(), entries,
		batch.WithWorkers(workers),
		batch.WithIDFunc(opts.newID),
		batch.WithBalanceOptions(balOpts...),
		batch.WithLogger(logger),
	)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "batch interrupted", err)
	}

	if flags.dbPath != "" {
		now := opts.now()
		runs := make([]store.Run, len(results))
		for i, r := range results {
			runs[i] = store.NewRun(r.ID, r.Equation, r.Reaction, r.Err, now)
		}
		if err := recordRuns(cmd.Context(), flags.dbPath, runs...); err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "record failed", err)
		}
	}

	data := newBatchData(results)
	if err := formatter.Success(data); err != nil {
		return WrapExitError(ExitCommandError, "write failed", err)
	}
	if data.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d reactions failed", data.Failed, len(results)))
	}
	return nil
}

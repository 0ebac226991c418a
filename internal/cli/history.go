// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoich/chem"
	"github.com/katalvlaran/stoich/store"
)

// HistoryItem is one recorded run.
type HistoryItem struct {
	ID        string `json:"id"`
	Equation  string `json:"equation"`
	Status    string `json:"status"`
	Balanced  string `json:"balanced,omitempty"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"` // RFC 3339, UTC
}

// HistoryData is the payload of the history command, newest run first.
type HistoryData struct {
	Runs []HistoryItem `json:"runs"`
}

// String renders one line per run.
func (d HistoryData) String() string {
	if len(d.Runs) == 0 {
		return "no runs recorded"
	}
	lines := make([]string, len(d.Runs))
	for i, r := range d.Runs {
		outcome := r.Balanced
		if r.Status != string(store.StatusOK) {
			outcome = r.Error
		}
		lines[i] = fmt.Sprintf("%s  %s  %-6s  %s  ->  %s", r.CreatedAt, r.ID, r.Status, r.Equation, outcome)
	}
	return strings.Join(lines, "\n")
}

func newHistoryItem(r store.Run) HistoryItem {
	return HistoryItem{
		ID:        r.ID,
		Equation:  r.Equation,
		Status:    string(r.Status),
		Balanced:  r.Balanced,
		Error:     r.Error,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type historyFlags struct {
	dbPath   string
	limit    int
	id       string
	equation string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &historyFlags{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded balancing runs",
		Long: `Show runs recorded with --db, newest first.

--id shows a single run; --equation shows the latest run of an equation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, flags, cmd)
		},
	}
	cmd.Flags().StringVar(&flags.dbPath, "db", "", "SQLite history database (required)")
	cmd.Flags().IntVar(&flags.limit, "limit", store.DefaultListLimit, "maximum number of runs to show")
	cmd.Flags().StringVar(&flags.id, "id", "", "show the run with this ID")
	cmd.Flags().StringVar(&flags.equation, "equation", "", "show the latest run of this equation")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *RootOptions, flags *historyFlags, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(flags.dbPath); err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "database not found", err)
	}
	s, err := store.Open(flags.dbPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open failed", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	var runs []store.Run
	switch {
	case flags.id != "":
		var r store.Run
		if r, err = s.Get(ctx, flags.id); err == nil {
			runs = []store.Run{r}
		}
	case flags.equation != "":
		var r store.Run
		if r, err = latestByEquation(ctx, s, flags.equation); err == nil {
			runs = []store.Run{r}
		}
	default:
		runs, err = s.List(ctx, flags.limit)
	}
	if err != nil {
		code := ErrCodeStore
		if errors.Is(err, store.ErrNotFound) {
			code = ErrCodeNotFound
		}
		formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitCommandError, "query failed", err)
	}

	data := HistoryData{Runs: make([]HistoryItem, len(runs))}
	for i, r := range runs {
		data.Runs[i] = newHistoryItem(r)
	}
	return formatter.Success(data)
}

// latestByEquation looks the equation up in canonical form when it parses,
// so spacing differences do not matter.
func latestByEquation(ctx context.Context, s *store.Store, equation string) (store.Run, error) {
	if reagents, products, err := chem.ParseEquation(equation); err == nil {
		equation = chem.Equation(reagents, products)
	}
	return s.LatestByEquation(ctx, equation)
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags and injectable collaborators for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// NewID issues run identifiers; defaults to random UUIDs.
	NewID func() string
	// Now timestamps recorded runs; defaults to time.Now.
	Now func() time.Time
}

func (o *RootOptions) newID() string {
	if o.NewID != nil {
		return o.NewID()
	}
	return uuid.NewString()
}

func (o *RootOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// logger writes pipeline tracing to w: debug level with --verbose, warnings otherwise.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // keep JSON on stdout clean
		Verbose:   o.Verbose,
	}
}

// NewRootCommand creates the root command for the stoich CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stoich",
		Short: "stoich - chemical equation balancer",
		Long:  "Balance chemical equations with the smallest positive integer coefficients.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true, // main prints non-ExitError failures
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")

	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewYieldCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

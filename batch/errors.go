// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEntry indicates a batch entry with a missing or conflicting shape.
	ErrInvalidEntry = errors.New("batch: invalid entry")

	// ErrNoReactions indicates a batch file without any reaction.
	ErrNoReactions = errors.New("batch: no reactions")

	// ErrPoolShutdown is returned when submitting to a closed worker pool.
	ErrPoolShutdown = errors.New("batch: worker pool has been shut down")
)

// EntryError locates an invalid entry inside a batch file.
type EntryError struct {
	Index  int    // zero-based position in the file
	Name   string // entry name, possibly empty
	Reason string
}

func (e *EntryError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s #%d: %s", ErrInvalidEntry.Error(), e.Index, e.Reason)
	}

	return fmt.Sprintf("%s #%d (%s): %s", ErrInvalidEntry.Error(), e.Index, e.Name, e.Reason)
}

func (e *EntryError) Unwrap() error { return ErrInvalidEntry }

func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

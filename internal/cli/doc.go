// SPDX-License-Identifier: MIT

// Package cli implements the stoich command tree (balance, batch, history,
// yield) on top of cobra. Every command writes either human-readable text or
// the {status,data,error} JSON envelope, and reports its outcome through
// ExitError codes: 0 success, 1 balancing failure, 2 command error.
package cli

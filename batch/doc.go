// SPDX-License-Identifier: MIT

// Package batch balances many reactions described in a YAML file.
//
// File format:
//
//	reactions:
//	  - name: aluminium chloride
//	    equation: Al + Cl2 = AlCl3
//	  - name: permanganate
//	    reagents: [KMnO4, HCl]
//	    products: [KCl, MnCl2, H2O, Cl2]
//
// Each entry carries either an equation or a reagents/products pair, never
// both. Load rejects unknown keys and malformed entries with ErrInvalidEntry.
//
// Run fans the entries out over a bounded worker pool and returns one Result
// per entry, in input order. A failing reaction never aborts the batch; its
// error is kept on its Result.
package batch

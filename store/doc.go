// SPDX-License-Identifier: MIT

// Package store keeps a SQLite history of balancing runs.
//
// The database is opened in WAL mode with a single connection (SQLite allows
// one writer). Schema creation is idempotent, so Open may be pointed at an
// existing file.
//
//	s, err := store.Open("stoich.db")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	err = s.Record(ctx, store.NewRun(id, "Al + Cl2 = AlCl3", reaction, nil, time.Now()))
package store

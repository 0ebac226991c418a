// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/chem"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, Run{ID: "a", Equation: "H2 + O2 = H2O", Status: StatusOK, CreatedAt: epoch}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.schemaVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, currentSchemaVersion, v)

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "H2 + O2 = H2O", got.Equation)
}

func TestRecordAndGet(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	reagents, products, err := chem.ParseEquation("Al + Cl2 = AlCl3")
	require.NoError(t, err)
	reaction, err := balance.Balance(reagents, products)
	require.NoError(t, err)

	run := NewRun("ok-1", "Al + Cl2 = AlCl3", reaction, nil, epoch)
	require.NoError(t, s.Record(ctx, run))

	got, err := s.Get(ctx, "ok-1")
	require.NoError(t, err)
	require.Equal(t, run.ID, got.ID)
	require.Equal(t, run.Equation, got.Equation)
	require.True(t, run.CreatedAt.Equal(got.CreatedAt))
	require.Empty(t, got.Error)
	require.Equal(t, "2 Al + 3 Cl2 = 2 AlCl3", got.Balanced)
	require.Equal(t, StatusOK, got.Status)

	failed := NewRun("bad-1", "H2O + NO2 = HNO3", chem.BalancedReaction{}, balance.ErrVerification, epoch)
	require.NoError(t, s.Record(ctx, failed))
	got, err = s.Get(ctx, "bad-1")
	require.NoError(t, err)
	require.Equal(t, StatusFailed, got.Status)
	require.Empty(t, got.Balanced)
	require.Equal(t, balance.ErrVerification.Error(), got.Error)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordDuplicateID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := Run{ID: "dup", Equation: "H2 + O2 = H2O", Status: StatusOK, CreatedAt: epoch}
	require.NoError(t, s.Record(ctx, run))
	require.Error(t, s.Record(ctx, run))
}

func TestRecordRejectsUnknownStatus(t *testing.T) {
	s := createTestStore(t)
	err := s.Record(context.Background(), Run{ID: "x", Equation: "H2 = H2", Status: "maybe"})
	require.Error(t, err)
}

func TestRecordDefaultsCreatedAt(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	before := time.Now().UTC()
	require.NoError(t, s.Record(ctx, Run{ID: "now", Equation: "H2 + O2 = H2O", Status: StatusOK}))
	got, err := s.Get(ctx, "now")
	require.NoError(t, err)
	require.False(t, got.CreatedAt.Before(before))
}

func TestLatestByEquationAndList(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		eq := "Al + Cl2 = AlCl3"
		if i%2 == 1 {
			eq = "H2 + O2 = H2O"
		}
		require.NoError(t, s.Record(ctx, Run{
			ID:        fmt.Sprintf("run-%d", i),
			Equation:  eq,
			Status:    StatusOK,
			CreatedAt: epoch.Add(time.Duration(i) * time.Minute),
		}))
	}

	latest, err := s.LatestByEquation(ctx, "Al + Cl2 = AlCl3")
	require.NoError(t, err)
	require.Equal(t, "run-4", latest.ID)

	latest, err = s.LatestByEquation(ctx, "H2 + O2 = H2O")
	require.NoError(t, err)
	require.Equal(t, "run-3", latest.ID)

	_, err = s.LatestByEquation(ctx, "Fe + O2 = Fe2O3")
	require.True(t, errors.Is(err, ErrNotFound))

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "run-4", runs[0].ID)
	require.Equal(t, "run-3", runs[1].ID)

	runs, err = s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 5)
}

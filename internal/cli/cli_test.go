// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testRootOptions returns options with deterministic run IDs and clock.
func testRootOptions() *RootOptions {
	n := 0
	return &RootOptions{
		Format: FormatText,
		NewID: func() string {
			n++
			return fmt.Sprintf("run-%03d", n)
		},
		Now: func() time.Time { return fixedNow },
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(opts)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reactions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const batchFixture = `reactions:
  - name: aluminium chloride
    equation: Al + Cl2 = AlCl3
  - name: permanganate
    reagents: [KMnO4, HCl]
    products: [KCl, MnCl2, H2O, Cl2]
  - name: mismatch
    equation: Fe3 + Cl5 = Cl2Fe5H2O
`

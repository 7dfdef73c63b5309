package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-simplex/simplex"
)

const network = `
node "plant" { supply = 3 }
node "store" { supply = -3 }

edge "p-h" {
  from = "plant"
  to   = "hub"
  cost = 1
}

edge "h-s" {
  from     = "hub"
  to       = "store"
  cost     = 1
  capacity = 2
  directed = false
}

edge "p-s" {
  from = "plant"
  to   = "store"
  cost = 4
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunFlow(t *testing.T) {
	opts := options{
		file:    writeFile(t, "net.hcl", network),
		script:  writeFile(t, "changes.txt", "se p-s cost 1\ncompute\nse p-s capacity 1\ncompute\n"),
		pricing: simplex.FirstNegative,
		check:   true,
	}
	var out bytes.Buffer
	require.NoError(t, run(opts, logr.Discard(), &out))

	got := out.String()
	require.Contains(t, got, "== initial\nstatus OPTIMAL cost 8 infeasibility 0 balance 0")
	require.Contains(t, got, "flow h-s hub->store 2\n")
	require.Contains(t, got, "== line 2\nstatus OPTIMAL cost 3 ")
	require.Contains(t, got, "flow p-s plant->store 3\n")
	require.Contains(t, got, "== line 4\nstatus OPTIMAL cost 5 ")
}

func TestRunShortestPaths(t *testing.T) {
	opts := options{
		file:    writeFile(t, "net.hcl", network),
		source:  "plant",
		pricing: simplex.MostNegative,
		check:   true,
	}
	var out bytes.Buffer
	require.NoError(t, run(opts, logr.Discard(), &out))

	got := out.String()
	require.Contains(t, got, "node plant length 0 path plant\n")
	require.Contains(t, got, "node hub length 1 path plant>hub\n")
	require.Contains(t, got, "node store length 2 path plant>hub>store\n")
}

func TestRunDIMACSInfeasible(t *testing.T) {
	opts := options{
		file:    writeFile(t, "net.min", "p min 2 1\nn 1 3\nn 2 -3\na 1 2 0 1 1\n"),
		pricing: simplex.MostNegative,
		check:   true,
	}
	var out bytes.Buffer
	require.NoError(t, run(opts, logr.Discard(), &out))
	require.Contains(t, out.String(), "status INFEASIBLE cost 1 infeasibility 4")
	require.Contains(t, out.String(), "unserved 2 2\n")
}

func TestRunErrors(t *testing.T) {
	opts := options{file: filepath.Join(t.TempDir(), "missing.min")}
	require.Error(t, run(opts, logr.Discard(), &bytes.Buffer{}))

	opts = options{
		file:   writeFile(t, "net.hcl", network),
		script: writeFile(t, "bad.txt", "frobnicate\n"),
	}
	require.Error(t, run(opts, logr.Discard(), &bytes.Buffer{}))

	opts = options{
		file:   writeFile(t, "net.hcl", network),
		script: writeFile(t, "gone.txt", "de nope\ncompute\n"),
	}
	require.Error(t, run(opts, logr.Discard(), &bytes.Buffer{}))

	opts = options{file: writeFile(t, "net.hcl", network), source: "ghost"}
	require.Error(t, run(opts, logr.Discard(), &bytes.Buffer{}))
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netrixframework/safez3/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := RootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetIn(strings.NewReader(stdin))
	configPath := filepath.Join(t.TempDir(), "missing.json")
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\.\d+\.\d+\.\d+\n$`, out)
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.smt2")
	require.NoError(t, os.WriteFile(path, []byte(`
		(declare-const a Int)
		(assert (= (+ a 1) 3))`), 0o644))

	out, err := run(t, "", "check", path)
	require.NoError(t, err)

	var report context.CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "sat", report.Status)
	assert.Equal(t, "2", report.Model["a"])
}

func TestCheckStdin(t *testing.T) {
	out, err := run(t, "(assert false)", "check", "-")
	require.NoError(t, err)

	var report context.CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "unsat", report.Status)
}

func TestCheckMissingFile(t *testing.T) {
	_, err := run(t, "", "check", filepath.Join(t.TempDir(), "nope.smt2"))
	require.Error(t, err)
}

func TestParams(t *testing.T) {
	out, err := run(t, "", "params")
	require.NoError(t, err)
	assert.Contains(t, out, "timeout")
}

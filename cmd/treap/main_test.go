package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/treap/internal/script"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	out, logs, err := run(t, "", "demo", "--seed", "3", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "add 5: false\n")
	assert.Contains(t, out, "find 45: false\n")
	assert.True(t, strings.HasPrefix(out, "add 4: true\n"), out)
	assert.Contains(t, logs, "script finished")
	assert.NotContains(t, logs, "level=DEBUG")
}

func TestDemo_TreeFormat(t *testing.T) {
	out, logs, err := run(t, "", "demo", "--format", "tree", "-v", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "└── nil\n")
	assert.Contains(t, logs, "level=DEBUG")
}

func TestRun_FileAndStdin(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(p, []byte("add 1 5\nadd 1 7\nfind 1\n"), 0o600))
	out, _, err := run(t, "", "run", p, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "add 1: true\nadd 1: false\nfind 1: true\n", out)

	out, _, err = run(t, "del 2\nprint\n", "run", "-", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "delete 2: false\nnil\n\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := run(t, "add 1\nadd\n", "run")
	var se *script.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Line)

	_, _, err = run(t, "", "run", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "", "demo", "--format", "xml")
	assert.Error(t, err)
}

func TestRun_IgnoresParentConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".treap.yaml"), []byte("format: tree\n"), 0o600))
	t.Cleanup(func() { _ = os.Remove(filepath.Join(wd, ".treap.yaml")) })

	out, _, err := run(t, "add 1 5\nprint\n", "run", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "add 1: true\n(key = 1, priority = 5)\n  nil\n  nil\n\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "treap dev\n", out)
}

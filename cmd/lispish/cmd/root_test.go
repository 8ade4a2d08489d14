package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	out, _, err := execute(t, "(a 1)\n")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, strings.Repeat("=", 50), lines[0])
	assert.Equal(t, "Input: (a 1)", lines[1])
	assert.Equal(t, "Tokens", lines[4])
	assert.Equal(t, "LITERAL           \t: (", lines[6])
	assert.Equal(t, "ID                \t: a", lines[7])
	assert.Equal(t, "INT               \t: 1", lines[8])
	assert.Contains(t, out, "Parse Tree\n")
	assert.Contains(t, out, "\n              INT"+strings.Repeat(" ", 40-14-3)+" 1\n")
	assert.NotContains(t, out, "Threw an exception")
}

func TestRootCommandInvalidInput(t *testing.T) {
	testCases := []struct {
		In        string
		HasTokens bool
	}{
		{"(a b", true},
		{"3.", false},
		{")", true},
	}

	for _, tc := range testCases {
		out, stderr, err := execute(t, tc.In)

		assert.True(t, errors.Is(err, errInvalidInput), "input: %q", tc.In)
		assert.True(t, strings.HasSuffix(out, "Threw an exception on invalid input.\n"), "input: %q", tc.In)
		assert.Equal(t, tc.HasTokens, strings.Contains(out, "Tokens\n"), "input: %q", tc.In)
		assert.NotContains(t, out, "Parse Tree")
		assert.Empty(t, stderr)
	}
}

func TestRootCommandVerbose(t *testing.T) {
	_, stderr, err := execute(t, "(a", "-v")

	assert.True(t, errors.Is(err, errInvalidInput))
	assert.Contains(t, stderr, "lispish: ")
	assert.Contains(t, stderr, "unexpected EOF")
}

func TestRootCommandFlags(t *testing.T) {
	out, _, err := execute(t, "(a)", "--tokens=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "Tokens\n")
	assert.Contains(t, out, "Parse Tree\n")

	out, _, err = execute(t, "(a)", "--tree=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Tokens\n")
	assert.NotContains(t, out, "Parse Tree\n")

	out, _, err = execute(t, "((a))", "--max-depth", "1")
	assert.True(t, errors.Is(err, errInvalidInput))
	assert.Contains(t, out, "Threw an exception on invalid input.")

	out, _, err = execute(t, "a", "--tokens=false", "--column", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "\n      ID   a\n")

	_, _, err = execute(t, "a", "--column", "-1")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, errInvalidInput))
}

func TestRootCommandFile(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "prog.lisp")
	require.NoError(t, os.WriteFile(src, []byte("(define x\n 42)"), 0o644))

	out, _, err := execute(t, "", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Input: (define x\n 42)\n")
	assert.Contains(t, out, "INT               \t: 42\n")

	_, _, err = execute(t, "", filepath.Join(dir, "missing.lisp"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, errInvalidInput))

	out, _, err = execute(t, "b", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "ID                \t: b\n")
}

func TestRootCommandConfig(t *testing.T) {
	dir := t.TempDir()

	cfgFile := filepath.Join(dir, "lispish.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output:\n  tokens: false\nparser:\n  max_depth: 1\n"), 0o644))

	out, _, err := execute(t, "(a)", "--config", cfgFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "Tokens\n")

	// flags take precedence over the file
	out, _, err = execute(t, "((a))", "--config", cfgFile, "--max-depth", "0", "--tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "Tokens\n")

	_, _, err = execute(t, "((a))", "--config", cfgFile)
	assert.True(t, errors.Is(err, errInvalidInput))

	_, _, err = execute(t, "a", "--config", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

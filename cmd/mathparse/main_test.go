package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp runs the command with args and returns its output streams.
func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"mathparse"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestExprTree(t *testing.T) {
	stdout, stderr, err := runApp(t, "", "-e", "f(x) = x ^ 2\nprint(f(3))")
	require.NoError(t, err)
	assert.Equal(t, "(def f (x) (^ x 2))\n(print (call f 3))\n", stdout)
	assert.Empty(t, stderr)
}

func TestFormatSource(t *testing.T) {
	stdout, _, err := runApp(t, "", "--format", "source", "-e", "x=1+2*(y)")
	require.NoError(t, err)
	assert.Equal(t, "x = 1 + 2 * (y)\n", stdout)
}

func TestFormatGo(t *testing.T) {
	stdout, _, err := runApp(t, "", "--format", "go", "-e", "x = 1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ast.AssignStmt")
	assert.Contains(t, stdout, "ast.Ident")
	assert.Contains(t, stdout, `"x"`)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := runApp(t, "", "--format", "xml", "-e", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestStdin(t *testing.T) {
	stdout, _, err := runApp(t, "a = 2\n\nprint(a)\n")
	require.NoError(t, err)
	assert.Equal(t, "(assign a 2)\n(print a)\n", stdout)
}

func TestEmptyInput(t *testing.T) {
	stdout, stderr, err := runApp(t, "   \n")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestParseErrorReport(t *testing.T) {
	stdout, stderr, err := runApp(t, "", "-e", "1 + 2 extra")
	require.ErrorIs(t, err, errParseFailed)
	assert.Empty(t, stdout)
	assert.Equal(t, "<expr>:1:7: expected one of {operator, line break, end of input}, got identifier \"extra\"\n", stderr)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.calc")
	bad := filepath.Join(dir, "bad.calc")
	require.NoError(t, os.WriteFile(good, []byte("x = 1\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("x = 1\ny = 1.\n"), 0o600))

	stdout, stderr, err := runApp(t, "", good, bad)
	require.ErrorIs(t, err, errParseFailed)
	assert.Equal(t, "(assign x 1)\n", stdout)
	assert.Equal(t, bad+`:2:5: malformed number "1.": expected digit after '.'`+"\n", stderr)

	_, _, err = runApp(t, "", filepath.Join(dir, "missing.calc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.calc")
}

func TestCheck(t *testing.T) {
	stdout, stderr, err := runApp(t, "", "--check", "-e", "print(1)")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	_, stderr, err = runApp(t, "", "--check", "-e", "print()")
	require.ErrorIs(t, err, errParseFailed)
	assert.Contains(t, stderr, "print takes exactly one argument")
}

func TestMaxDepthFlag(t *testing.T) {
	src := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)

	_, stderr, err := runApp(t, "", "--max-depth", "5", "-e", src)
	require.ErrorIs(t, err, errParseFailed)
	assert.Contains(t, stderr, "nested too deeply")

	_, _, err = runApp(t, "", "--max-depth", "50", "-e", src)
	require.NoError(t, err)
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := runApp(t, "", "--log-level", "debug", "--check", "-e", "f(x) = x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "parsed")
	assert.Contains(t, stderr, "functions=1")

	_, _, err = runApp(t, "", "--log-level", "loud", "-e", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestExprWithFiles(t *testing.T) {
	_, _, err := runApp(t, "", "-e", "1", "file.calc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI over fs and returns stdout, stderr and the error.
func run(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(fs)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestTokenizeCmd(t *testing.T) {
	fs := memFs(t, map[string]string{"a.js": "let x = 1;"})
	out, _, err := run(t, fs, "", "tokenize", "a.js")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "LET"), lines[0])
	assert.Contains(t, lines[1], `"x"`)
	assert.True(t, strings.HasSuffix(lines[1], "1:5"), lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "EOF"), lines[5])
}

func TestTokenizeCmdStdin(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(), "a / b", "tokenize", "-")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"))

	_, _, err = run(t, afero.NewMemMapFs(), "'open", "tokenize", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string constant")
}

func TestParseCmdJSON(t *testing.T) {
	fs := memFs(t, map[string]string{"a.js": "x = 1;"})
	out, _, err := run(t, fs, "", "parse", "a.js")
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "Program", tree["type"])
	assert.Equal(t, "script", tree["sourceType"])
	body := tree["body"].([]interface{})
	require.Len(t, body, 1)
	stmt := body[0].(map[string]interface{})
	assert.Equal(t, "ExpressionStatement", stmt["type"])
	assign := stmt["expression"].(map[string]interface{})
	assert.Equal(t, "AssignmentExpression", assign["type"])
	assert.Equal(t, "=", assign["operator"])
	assert.Equal(t, false, assign["parens"])
	start := assign["start"].(map[string]interface{})
	assert.Equal(t, float64(1), start["line"])
	assert.Equal(t, float64(1), start["column"])
	assert.Equal(t, float64(0), start["offset"])
}

func TestParseCmdGrammar(t *testing.T) {
	fs := memFs(t, map[string]string{
		"a.tsx":        "const el = <T,>(x: T) => <b>{x}</b>;",
		"m.js":         "import x from 'y';",
		"esfront.yaml": "sourceType: module\n",
	})
	_, _, err := run(t, fs, "", "parse", "a.tsx")
	require.NoError(t, err)

	_, _, err = run(t, fs, "", "parse", "m.js")
	require.Error(t, err)
	_, _, err = run(t, fs, "", "parse", "--module", "m.js")
	require.NoError(t, err)
	_, _, err = run(t, fs, "", "parse", "--config", "esfront.yaml", "m.js")
	require.NoError(t, err)

	out, _, err := run(t, fs, "", "parse", "--format", "pretty", "--module", "m.js")
	require.NoError(t, err)
	assert.Contains(t, out, "ImportDeclaration")

	_, _, err = run(t, fs, "", "parse", "--format", "xml", "--module", "m.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestPrintCmd(t *testing.T) {
	fs := memFs(t, map[string]string{"a.js": "if (a) b()\nelse   c()\n"})
	out, _, err := run(t, fs, "", "print", "a.js")
	require.NoError(t, err)
	assert.Equal(t, "if (a) b(); else c();\n", out)

	out, _, err = run(t, fs, "", "print", "--diff", "a.js")
	require.NoError(t, err)
	assert.Equal(t, "-if (a) b()\n-else   c()\n+if (a) b(); else c();\n", out)
}

func TestCheckCmd(t *testing.T) {
	fs := memFs(t, map[string]string{
		"ok.js":  "let a = 1;\n",
		"bad.js": "let a = 1;\nlet a = 2;\n",
	})
	out, errOut, err := run(t, fs, "", "check", "ok.js", "bad.js")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 files failed to parse", err.Error())
	assert.Contains(t, out, "ok   ok.js\n")
	assert.Contains(t, out, "FAIL bad.js\n")
	assert.Contains(t, errOut, "[SyntaxError]: Identifier 'a' has already been declared (2,5)")
	assert.Contains(t, errOut, "2|let a = 2;")

	out, _, err = run(t, fs, "", "check", "--quiet", "ok.js")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = run(t, fs, "", "check", "missing.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading missing.js")
}

func TestTest262Cmd(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/t262/test/language/pass.js": "var x = 1;\n",
		"/t262/test/language/neg.js":  "/*---\nnegative:\n  phase: parse\n  type: SyntaxError\n---*/\nvar = 1;\n",
		"/t262/test/language/dec.js":  "/*---\nfeatures: [decorators]\n---*/\n@d class C {}\n",
	})
	out, _, err := run(t, fs, "", "test262", "--path", "/t262", "--depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:    3")
	assert.Contains(t, out, "Passed:   2")
	assert.Contains(t, out, "Skipped:  1")
	assert.Contains(t, out, "language")

	require.NoError(t, afero.WriteFile(fs, "/t262/test/language/wrong.js", []byte("var = 1;\n"), 0o644))
	out, _, err = run(t, fs, "", "test262", "--path", "/t262", "--failures")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL language/wrong.js - sloppy mode: ")

	_, _, err = run(t, fs, "", "test262")
	require.Error(t, err)
}

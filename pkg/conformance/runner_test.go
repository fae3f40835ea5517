package conformance

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/driver"
)

func header(lines string) string {
	return "/*---\n" + lines + "\n---*/\n"
}

const negativeParse = "negative:\n  phase: parse\n  type: SyntaxError"

func suite(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/t262/harness/assert.js":                 header("description: harness") + "function assert() {",
		"/t262/test/language/pass.js":             header("description: plain") + "var x = 1;\n",
		"/t262/test/language/neg.js":              header(negativeParse) + "var x = ;\n",
		"/t262/test/language/neg-accepted.js":     header(negativeParse) + "var x = 1;\n",
		"/t262/test/language/strict-with.js":      header(negativeParse+"\nflags: [onlyStrict]") + "with (a) {}\n",
		"/t262/test/language/sloppy-with.js":      header("description: both modes") + "with (a) {}\n",
		"/t262/test/language/raw-with.js":         header("flags: [raw]") + "with (a) {}\n",
		"/t262/test/module/import.js":             header("flags: [module]") + "import x from 'y';\nexport { x };\n",
		"/t262/test/module/resolution.js":         header("negative:\n  phase: resolution\n  type: SyntaxError\nflags: [module]") + "import x from './missing.js';\n",
		"/t262/test/module/decorators.js":         header("features: [decorators]") + "@dec class C {}\n",
		"/t262/test/module/helper_FIXTURE.js":     "export default 1;\n",
		"/t262/test/module/notes.txt":             "not a test",
		"/t262/test/language/bad-front-matter.js": "/*---\nflags: [module\n---*/\n",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func statuses(results []Result) map[string]Status {
	out := map[string]Status{}
	for _, r := range results {
		out[r.Path] = r.Status
	}
	return out
}

func TestRun(t *testing.T) {
	r := &Runner{
		Fs:           suite(t),
		Root:         "/t262",
		Config:       driver.DefaultConfig(),
		SkipFeatures: []string{"decorators"},
	}
	stats, results, err := r.Run()
	require.NoError(t, err)

	assert.Equal(t, map[string]Status{
		"language/bad-front-matter.js": StatusFailed,
		"language/neg-accepted.js":     StatusFailed,
		"language/neg.js":              StatusPassed,
		"language/pass.js":             StatusPassed,
		"language/raw-with.js":         StatusPassed,
		"language/sloppy-with.js":      StatusFailed,
		"language/strict-with.js":      StatusPassed,
		"module/decorators.js":         StatusSkipped,
		"module/import.js":             StatusPassed,
		"module/resolution.js":         StatusPassed,
	}, statuses(results))

	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 6, stats.Passed)
	assert.Equal(t, 3, stats.Failed)
	assert.Equal(t, 1, stats.Skipped)
	assert.InDelta(t, 66.7, stats.PassRate(), 0.1)

	for _, res := range results {
		switch res.Path {
		case "language/sloppy-with.js":
			assert.Contains(t, res.Reason, "strict mode: ")
		case "language/neg-accepted.js":
			assert.Equal(t, "expected a SyntaxError in sloppy mode", res.Reason)
		case "module/decorators.js":
			assert.Equal(t, "feature decorators", res.Reason)
		}
	}
	assert.Equal(t, "language/bad-front-matter.js", results[0].Path)
}

func TestRunFilter(t *testing.T) {
	fs := suite(t)
	tests := []struct {
		filter string
		want   []string
	}{
		{"module/**", []string{"module/decorators.js", "module/import.js", "module/resolution.js"}},
		{"neg*.js", []string{"language/neg-accepted.js", "language/neg.js"}},
		{"language/*-with.js", []string{"language/raw-with.js", "language/sloppy-with.js", "language/strict-with.js"}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			_, results, err := Run(fs, "/t262", tt.filter)
			require.NoError(t, err)
			var paths []string
			for _, r := range results {
				paths = append(paths, r.Path)
			}
			assert.Equal(t, tt.want, paths)
		})
	}

	_, _, err := Run(fs, "/t262", "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestRunPlainDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cases/a.js", []byte("a\n++b\n"), 0o644))
	stats, results, err := Run(fs, "/cases", "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Passed)
	require.Len(t, results, 1)
	assert.Equal(t, "a.js", results[0].Path)

	_, _, err = Run(fs, "/nowhere", "")
	require.Error(t, err)
}

func TestReport(t *testing.T) {
	results := []Result{
		{Path: "language/expressions/a.js", Status: StatusPassed},
		{Path: "language/expressions/b.js", Status: StatusFailed, Reason: "Unexpected token (1:5)"},
		{Path: "language/statements/c.js", Status: StatusSkipped},
		{Path: "top.js", Status: StatusPassed},
	}
	dirs := ByDirectory(results, 1)
	require.Len(t, dirs, 2)
	assert.Equal(t, 3, dirs["language"].Total)
	assert.Equal(t, 1, dirs["."].Passed)
	assert.InDelta(t, 50.0, dirs["language"].PassRate(), 0.01)

	dirs = ByDirectory(results, 2)
	assert.Contains(t, dirs, "language/expressions")
	assert.Contains(t, dirs, "language/statements")

	var buf bytes.Buffer
	WriteFailures(&buf, results)
	assert.Equal(t, "FAIL language/expressions/b.js - Unexpected token (1:5)\n", buf.String())

	buf.Reset()
	WriteSummary(&buf, Stats{Total: 4, Passed: 2, Failed: 1, Skipped: 1})
	assert.Contains(t, buf.String(), "Passed:   2 (50.0%)")

	buf.Reset()
	WriteDirectories(&buf, results, 1)
	assert.Contains(t, buf.String(), "language")
	assert.Contains(t, buf.String(), "3/1/1/1")
}

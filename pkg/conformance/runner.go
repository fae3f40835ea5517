package conformance

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"esfront/pkg/driver"
	"esfront/pkg/errors"
	"esfront/pkg/parser"
	"esfront/pkg/source"
)

// Status is the outcome of one test file.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASS"
	case StatusFailed:
		return "FAIL"
	case StatusSkipped:
		return "SKIP"
	}
	return "UNKNOWN"
}

// Result is the outcome of one test file. Path is slash-separated and
// relative to the directory that was walked.
type Result struct {
	Path     string
	Status   Status
	Reason   string
	Duration time.Duration
}

// Stats aggregates results.
type Stats struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

func (s *Stats) add(r Result) {
	s.Total++
	switch r.Status {
	case StatusPassed:
		s.Passed++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	}
	s.Duration += r.Duration
}

// PassRate is the percentage of passed tests among those that ran.
func (s Stats) PassRate() float64 {
	ran := s.Total - s.Skipped
	if ran == 0 {
		return 0
	}
	return float64(s.Passed) / float64(ran) * 100
}

// Runner walks a suite on Fs and parses every test file.
type Runner struct {
	Fs afero.Fs
	// Root is either a test262 checkout, whose test/ directory is walked, or
	// a directory of test files.
	Root string
	// Filter selects files by a path.Match pattern against the relative
	// path, or against the base name when it has no slash. A trailing /**
	// selects a whole directory.
	Filter string
	// Config is the base parser configuration; the runner sets the source
	// type per test.
	Config parser.Config
	// SkipFeatures lists front-matter features whose tests are skipped.
	SkipFeatures []string
	Logger       *zap.Logger
}

// Run runs every test under root on fs that matches filter with the
// default parser configuration.
func Run(fs afero.Fs, root, filter string) (Stats, []Result, error) {
	r := &Runner{Fs: fs, Root: root, Filter: filter, Config: driver.DefaultConfig()}
	return r.Run()
}

// Run walks the suite and returns the aggregate and per-file results in
// path order.
func (r *Runner) Run() (Stats, []Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if _, err := path.Match(r.Filter, ""); err != nil {
		return Stats{}, nil, pkgerrors.Wrapf(err, "invalid filter %q", r.Filter)
	}

	dir := r.Root
	if ok, _ := afero.DirExists(r.Fs, filepath.Join(r.Root, "test")); ok {
		dir = filepath.Join(r.Root, "test")
	}
	files, err := r.findTestFiles(dir)
	if err != nil {
		return Stats{}, nil, err
	}
	log.Info("running suite", zap.String("dir", dir), zap.Int("files", len(files)))

	var stats Stats
	results := make([]Result, 0, len(files))
	start := time.Now()
	for _, rel := range files {
		res := r.runSingleTest(dir, rel)
		if res.Status == StatusFailed {
			log.Debug("test failed", zap.String("path", rel), zap.String("reason", res.Reason))
		}
		stats.add(res)
		results = append(results, res)
	}
	stats.Duration = time.Since(start)
	return stats, results, nil
}

// findTestFiles returns the relative slash paths of the .js files under
// dir that match the filter. Harness fixtures are not tests.
func (r *Runner) findTestFiles(dir string) ([]string, error) {
	var files []string
	err := afero.Walk(r.Fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(p) != ".js" || strings.Contains(info.Name(), "_FIXTURE") {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchFilter(r.Filter, rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "error walking %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

func matchFilter(filter, rel string) bool {
	if filter == "" {
		return true
	}
	if strings.HasSuffix(filter, "/**") {
		return strings.HasPrefix(rel, strings.TrimSuffix(filter, "**"))
	}
	target := rel
	if !strings.Contains(filter, "/") {
		target = path.Base(rel)
	}
	ok, _ := path.Match(filter, target)
	return ok
}

func (r *Runner) runSingleTest(dir, rel string) (res Result) {
	start := time.Now()
	res = Result{Path: rel, Status: StatusPassed}
	defer func() { res.Duration = time.Since(start) }()

	fullPath := filepath.Join(dir, filepath.FromSlash(rel))
	content, err := afero.ReadFile(r.Fs, fullPath)
	if err != nil {
		return fail(res, pkgerrors.Wrapf(err, "error reading %s", rel).Error())
	}
	meta, err := ParseMetadata(string(content))
	if err != nil {
		return fail(res, err.Error())
	}
	for _, f := range meta.Features {
		if r.skipsFeature(f) {
			res.Status = StatusSkipped
			res.Reason = "feature " + f
			return res
		}
	}

	cfg := r.Config
	cfg.SourceType = parser.SourceScript
	if meta.HasFlag(FlagModule) {
		cfg.SourceType = parser.SourceModule
	}
	for _, strict := range meta.StrictModes() {
		text := string(content)
		mode := "sloppy"
		if strict {
			text = "\"use strict\";\n" + text
			mode = "strict"
		}
		if cfg.Module() {
			mode = "module"
		}
		perr, panicked := parseGuarded(source.FromFile(fullPath, text), cfg)
		switch {
		case panicked != nil:
			return fail(res, panicked.Error())
		case meta.ExpectsSyntaxError() && perr == nil:
			return fail(res, "expected a SyntaxError in "+mode+" mode")
		case !meta.ExpectsSyntaxError() && perr != nil:
			return fail(res, mode+" mode: "+firstMessage(perr))
		}
	}
	return res
}

func (r *Runner) skipsFeature(feature string) bool {
	for _, f := range r.SkipFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

func fail(res Result, reason string) Result {
	res.Status = StatusFailed
	res.Reason = reason
	return res
}

// parseGuarded parses src and turns a parser panic into an error of its
// own so a crash never passes as an expected SyntaxError.
func parseGuarded(src *source.SourceFile, cfg parser.Config) (parseErr, panicked error) {
	defer func() {
		if rec := recover(); rec != nil {
			panicked = pkgerrors.Errorf("parser panicked: %v", rec)
		}
	}()
	_, parseErr = driver.ParseSource(src, cfg)
	return parseErr, nil
}

func firstMessage(err error) string {
	if perr, ok := err.(*errors.ParseError); ok && perr.First() != nil {
		d := perr.First()
		return fmt.Sprintf("%s (%d:%d)", d.Msg, d.Line, d.Column)
	}
	return err.Error()
}

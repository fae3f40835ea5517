package conformance

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteSummary prints the totals of a run.
func WriteSummary(w io.Writer, stats Stats) {
	pct := func(n int) float64 {
		if stats.Total == 0 {
			return 0
		}
		return float64(n) / float64(stats.Total) * 100
	}
	fmt.Fprintf(w, "\n=== Test262 Summary ===\n")
	fmt.Fprintf(w, "Total:    %d\n", stats.Total)
	fmt.Fprintf(w, "Passed:   %d (%.1f%%)\n", stats.Passed, pct(stats.Passed))
	fmt.Fprintf(w, "Failed:   %d (%.1f%%)\n", stats.Failed, pct(stats.Failed))
	fmt.Fprintf(w, "Skipped:  %d (%.1f%%)\n", stats.Skipped, pct(stats.Skipped))
	fmt.Fprintf(w, "Duration: %v\n", stats.Duration)
	fmt.Fprintf(w, "======================\n")
}

// WriteFailures prints one line per failed test.
func WriteFailures(w io.Writer, results []Result) {
	for _, r := range results {
		if r.Status == StatusFailed {
			fmt.Fprintf(w, "%s %s - %s\n", r.Status, r.Path, r.Reason)
		}
	}
}

// ByDirectory aggregates results by their first depth path segments. Files
// shallower than depth count toward their own directory.
func ByDirectory(results []Result, depth int) map[string]*Stats {
	out := map[string]*Stats{}
	for _, r := range results {
		parts := strings.Split(r.Path, "/")
		parts = parts[:len(parts)-1]
		if len(parts) > depth {
			parts = parts[:depth]
		}
		key := strings.Join(parts, "/")
		if key == "" {
			key = "."
		}
		s, ok := out[key]
		if !ok {
			s = &Stats{}
			out[key] = s
		}
		s.add(r)
	}
	return out
}

// WriteDirectories prints the per-directory pass rates of ByDirectory.
func WriteDirectories(w io.Writer, results []Result, depth int) {
	dirs := ByDirectory(results, depth)
	keys := make([]string, 0, len(dirs))
	for k := range dirs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "\n%-60s %8s %24s\n", "Directory", "% Passed", "Total/Pass/Fail/Skip")
	fmt.Fprintln(w, strings.Repeat("-", 94))
	for _, k := range keys {
		s := dirs[k]
		fmt.Fprintf(w, "%-60s %7.1f%% %24s\n", k, s.PassRate(),
			fmt.Sprintf("%d/%d/%d/%d", s.Total, s.Passed, s.Failed, s.Skipped))
	}
}

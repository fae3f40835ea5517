// Package conformance runs the parser over test262-style suites. Each test
// file carries a YAML front-matter block between /*--- and ---*/ telling
// whether the source must be rejected at parse time and how it is to be
// parsed.
package conformance

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Test flags understood by the runner.
const (
	FlagModule     = "module"
	FlagOnlyStrict = "onlyStrict"
	FlagNoStrict   = "noStrict"
	FlagRaw        = "raw"
)

// Negative phases. Only parse and early errors are the parser's business;
// resolution and runtime negatives must parse cleanly.
const (
	PhaseParse      = "parse"
	PhaseEarly      = "early"
	PhaseResolution = "resolution"
	PhaseRuntime    = "runtime"
)

// Negative is the expected failure of a negative test.
type Negative struct {
	Phase string `yaml:"phase"`
	Type  string `yaml:"type"`
}

// Metadata is the decoded front-matter of one test file.
type Metadata struct {
	Description string    `yaml:"description"`
	Info        string    `yaml:"info"`
	Negative    *Negative `yaml:"negative"`
	Flags       []string  `yaml:"flags"`
	Features    []string  `yaml:"features"`
	Includes    []string  `yaml:"includes"`
}

// HasFlag reports whether the test lists flag.
func (m *Metadata) HasFlag(flag string) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// ExpectsSyntaxError reports whether the source must fail to parse.
func (m *Metadata) ExpectsSyntaxError() bool {
	if m.Negative == nil {
		return false
	}
	return m.Negative.Phase == PhaseParse || m.Negative.Phase == PhaseEarly
}

// StrictModes lists the modes the source is parsed in: false for sloppy,
// true for strict. Plain scripts are parsed both ways; modules are strict
// by themselves and are parsed once.
func (m *Metadata) StrictModes() []bool {
	switch {
	case m.HasFlag(FlagModule), m.HasFlag(FlagRaw), m.HasFlag(FlagNoStrict):
		return []bool{false}
	case m.HasFlag(FlagOnlyStrict):
		return []bool{true}
	}
	return []bool{false, true}
}

// frontMatter returns the text between the first /*--- and the following
// ---*/, or "" when the file has none.
func frontMatter(content string) string {
	start := strings.Index(content, "/*---")
	if start == -1 {
		return ""
	}
	end := strings.Index(content[start+5:], "---*/")
	if end == -1 {
		return ""
	}
	return content[start+5 : start+5+end]
}

// ParseMetadata decodes the front-matter of a test file. A file without
// front-matter yields empty metadata.
func ParseMetadata(content string) (*Metadata, error) {
	meta := &Metadata{}
	header := frontMatter(content)
	if strings.TrimSpace(header) == "" {
		return meta, nil
	}
	if err := yaml.Unmarshal([]byte(header), meta); err != nil {
		return nil, pkgerrors.Wrap(err, "error decoding front-matter")
	}
	return meta, nil
}

// Package driver is the public entry point of the front end: it turns
// source text, or a file on an afero filesystem, into a syntax tree or a
// token list.
package driver

import (
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/parser"
	"esfront/pkg/source"
)

// Parse parses src as a whole program. On failure the returned error is an
// *errors.ParseError carrying every diagnostic.
func Parse(src string, cfg parser.Config) (*ast.Program, error) {
	return parseSource(source.NewInputSource(src), cfg)
}

// Tokenize drains the lexer over src without running the parser. A lexical
// error is returned as an *errors.ParseError together with the tokens read
// up to that point.
func Tokenize(src string) ([]lexer.Token, error) {
	return TokenizeSource(source.NewInputSource(src))
}

// TokenizeFile is Tokenize over the contents of path.
func TokenizeFile(fs afero.Fs, path string) ([]lexer.Token, error) {
	src, err := ReadSource(fs, path)
	if err != nil {
		return nil, err
	}
	return TokenizeSource(src)
}

// TokenizeSource is Tokenize over an already loaded source file.
func TokenizeSource(src *source.SourceFile) ([]lexer.Token, error) {
	toks, err := lexer.Tokenize(src.Content)
	if err != nil {
		return toks, asParseError(src, err)
	}
	return toks, nil
}

// ParseFile reads path from fs and parses it. Diagnostics refer to the
// file by its path.
func ParseFile(fs afero.Fs, path string, cfg parser.Config) (*ast.Program, error) {
	src, err := ReadSource(fs, path)
	if err != nil {
		return nil, err
	}
	return parseSource(src, cfg)
}

// ReadSource loads path from fs as a source file. The path "-" is not
// special here; callers that read stdin build the source themselves.
func ReadSource(fs afero.Fs, path string) (*source.SourceFile, error) {
	buf, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "error reading %s", path)
	}
	return source.FromFile(path, string(buf)), nil
}

// ParseSource parses an already loaded source file.
func ParseSource(src *source.SourceFile, cfg parser.Config) (*ast.Program, error) {
	return parseSource(src, cfg)
}

func parseSource(src *source.SourceFile, cfg parser.Config) (*ast.Program, error) {
	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, "invalid config")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prog, err := parser.NewParser(src, cfg).ParseProgram()
	if err != nil {
		log.Debug("parse failed", zap.String("source", src.DisplayPath()), zap.Error(err))
		return nil, asParseError(src, err)
	}
	log.Debug("parsed", zap.String("source", src.DisplayPath()), zap.Int("statements", len(prog.Body)))
	return prog, nil
}

// asParseError lifts a lone diagnostic into a report bound to src so that
// every failure renders with a source excerpt.
func asParseError(src *source.SourceFile, err error) error {
	switch e := err.(type) {
	case *errors.ParseError:
		if e.Source == nil {
			e.Source = src
		}
		return e
	case *errors.SyntaxError:
		return &errors.ParseError{Source: src, Diagnostics: []*errors.SyntaxError{e}}
	}
	return err
}

// ConfigForFile derives the grammar from the file extension on top of
// base: .mjs and .mts are modules, .jsx and .tsx enable JSX, .ts, .mts,
// .cts and .tsx enable TypeScript. Plugins already in base are kept.
func ConfigForFile(path string, base parser.Config) parser.Config {
	cfg := base
	cfg.Plugins = append([]string(nil), base.Plugins...)
	add := func(name string) {
		for _, p := range cfg.Plugins {
			if p == name {
				return
			}
		}
		cfg.Plugins = append(cfg.Plugins, name)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mjs":
		cfg.SourceType = parser.SourceModule
	case ".jsx":
		add(parser.PluginJSX)
	case ".ts", ".cts":
		add(parser.PluginTypeScript)
	case ".mts":
		cfg.SourceType = parser.SourceModule
		add(parser.PluginTypeScript)
	case ".tsx":
		add(parser.PluginTypeScript)
		add(parser.PluginJSX)
	}
	return cfg
}

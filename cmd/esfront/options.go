package main

import (
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"esfront/pkg/driver"
	"esfront/pkg/parser"
	"esfront/pkg/source"
)

// grammarFlags selects the grammar of the commands that parse.
type grammarFlags struct {
	module     bool
	jsx        bool
	typescript bool
	configPath string
}

func (g *grammarFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&g.module, "module", false, "parse as an ES module")
	cmd.Flags().BoolVar(&g.jsx, "jsx", false, "enable JSX syntax")
	cmd.Flags().BoolVar(&g.typescript, "ts", false, "enable TypeScript syntax")
	cmd.Flags().StringVarP(&g.configPath, "config", "c", "", "YAML parser configuration")
}

// config builds the parser configuration for path: the config file or the
// defaults, then the file extension, then the flags.
func (g *grammarFlags) config(a *app, path string) (parser.Config, error) {
	cfg := driver.DefaultConfig()
	if g.configPath != "" {
		var err error
		if cfg, err = driver.LoadConfig(a.fs, g.configPath); err != nil {
			return cfg, err
		}
	}
	cfg = driver.ConfigForFile(path, cfg)
	if g.module {
		cfg.SourceType = parser.SourceModule
	}
	if g.jsx && !cfg.JSX() {
		cfg.Plugins = append(cfg.Plugins, parser.PluginJSX)
	}
	if g.typescript && !cfg.TypeScript() {
		cfg.Plugins = append(cfg.Plugins, parser.PluginTypeScript)
	}
	cfg.Logger = a.log
	return cfg, nil
}

// loadSource reads path, or standard input when path is "-".
func loadSource(a *app, cmd *cobra.Command, path string) (*source.SourceFile, error) {
	if path == "-" {
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, pkgerrors.Wrap(err, "error reading stdin")
		}
		return source.NewStdinSource(string(buf)), nil
	}
	return driver.ReadSource(a.fs, path)
}

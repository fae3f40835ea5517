package driver

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"esfront/pkg/errors"
	"esfront/pkg/parser"
)

// DefaultConfig returns a script-mode configuration with no plugins.
func DefaultConfig() parser.Config {
	return parser.Config{
		SourceType: parser.SourceScript,
		MaxErrors:  errors.DefaultMaxErrors,
	}
}

// LoadConfig reads a YAML parser configuration from path. Keys missing
// from the file keep their DefaultConfig values.
//
//	sourceType: module
//	plugins: [jsx, typescript]
//	allowReturnOutsideFunction: true
func LoadConfig(fs afero.Fs, path string) (parser.Config, error) {
	buf, err := afero.ReadFile(fs, path)
	if err != nil {
		return parser.Config{}, pkgerrors.Wrapf(err, "error reading config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return parser.Config{}, pkgerrors.Wrapf(err, "error decoding config %s", path)
	}
	if cfg.SourceType == "" {
		cfg.SourceType = parser.SourceScript
	}
	if err := cfg.Validate(); err != nil {
		return parser.Config{}, pkgerrors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

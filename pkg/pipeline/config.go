package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
	"github.com/matzehuels/rimealogy/pkg/visibility"
)

// Config is the content of an optional configuration file. Empty fields
// leave the corresponding option untouched.
type Config struct {
	Output  string            `toml:"output" yaml:"output"`
	Draw    string            `toml:"draw" yaml:"draw"`
	Named   string            `toml:"named" yaml:"named"`
	Format  string            `toml:"format" yaml:"format"`
	Escape  bool              `toml:"escape" yaml:"escape"`
	Palette genealogy.Palette `toml:"palette" yaml:"palette"`
}

// LoadConfig reads a configuration file. The syntax is chosen by
// extension: .toml, or .yaml and .yml. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if err := apperr.ValidateInputFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "loading config %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "loading config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "loading config %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and leaves cfg empty.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "loading config %s", path)
		}
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "loading config %s: unsupported extension %q (must be .toml, .yaml or .yml)", path, ext)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Draw != "" {
		if _, err := visibility.ParseDrawMode(cfg.Draw); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidMode, err, "config")
		}
	}
	if cfg.Named != "" {
		if _, err := visibility.ParseNamedMode(cfg.Named); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidMode, err, "config")
		}
	}
	if cfg.Format != "" {
		if err := ValidateFormat(cfg.Format); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the non-empty fields of c into opts. Callers apply
// explicit command-line values afterward so they take precedence.
func (c *Config) Apply(opts *Options) {
	if c.Output != "" {
		opts.Output = c.Output
	}
	if c.Draw != "" {
		opts.DrawMode = c.Draw
	}
	if c.Named != "" {
		opts.NamedMode = c.Named
	}
	if c.Format != "" {
		opts.Format = c.Format
	}
	if c.Escape {
		opts.Escape = true
	}
	fill := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	fill(&opts.Palette.Player, c.Palette.Player)
	fill(&opts.Palette.Neutral, c.Palette.Neutral)
	fill(&opts.Palette.Friendly, c.Palette.Friendly)
	fill(&opts.Palette.Hostile, c.Palette.Hostile)
	fill(&opts.Palette.Anonymous, c.Palette.Anonymous)
}

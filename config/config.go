// Package config loads rghost settings from YAML.
//
// A configuration file only needs the keys it changes; everything else
// keeps the value from [Default]:
//
//	ghostscript:
//	  path: /usr/local/bin/gs
//	document:
//	  font_encoding: IsoLatin9
//	  paper: Letter
//	  preload: [jpeg]
//	logging:
//	  enabled: true
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/madamkiwi/rghost/logging"
	"github.com/madamkiwi/rghost/logging/gologger"
	"github.com/madamkiwi/rghost/paper"
	"github.com/madamkiwi/rghost/ps"
	"github.com/madamkiwi/rghost/units"
)

// Config aggregates interpreter, document and logging settings.
type Config struct {
	Ghostscript GhostscriptConfig `yaml:"ghostscript"`
	Document    DocumentConfig    `yaml:"document"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GhostscriptConfig locates the interpreter.
type GhostscriptConfig struct {
	// Path is the interpreter binary, looked up in PATH when not absolute.
	Path string `yaml:"path"`
	// Params are switches added to every run.
	Params []string `yaml:"params"`
}

// DocumentConfig holds document defaults. Lengths are in Unit.
type DocumentConfig struct {
	FontEncoding string   `yaml:"font_encoding"`
	Unit         string   `yaml:"unit"`
	Paper        string   `yaml:"paper"`
	Landscape    bool     `yaml:"landscape"`
	Margin       float64  `yaml:"margin"`
	RowsPerPage  int      `yaml:"rows_per_page"`
	CountPages   int      `yaml:"count_pages"`
	RowHeight    float64  `yaml:"row_height"`
	RowPadding   float64  `yaml:"row_padding"`
	Preload      []string `yaml:"preload"`
	// LibraryDir overrides embedded libraries with files from a directory
	// laid out as ps/<name>.ps and enc/<name>.enc.
	LibraryDir string `yaml:"library_dir"`
}

// LoggingConfig captures the go-logger options.
type LoggingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ghostscript: GhostscriptConfig{
			Path: "gs",
		},
		Document: DocumentConfig{
			FontEncoding: ps.DefaultEncoding,
			Unit:         units.Centimeter.String(),
			Paper:        paper.A4.Name,
			Margin:       paper.DefaultMargin,
			RowsPerPage:  80,
			CountPages:   10,
			RowHeight:    0.4,
			RowPadding:   0.1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected. An empty input yields the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks every section.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Ghostscript),
		validation.Field(&c.Document),
		validation.Field(&c.Logging),
	)
}

// Validate checks the interpreter path and switches.
func (g GhostscriptConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Path, validation.Required),
		validation.Field(&g.Params, validation.Each(validation.By(func(value any) error {
			param, _ := value.(string)
			if !strings.HasPrefix(param, "-") {
				return validation.NewError("config.param_invalid", "must start with '-'")
			}
			return nil
		}))),
	)
}

// Validate checks names and lengths.
func (d DocumentConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FontEncoding, validation.By(func(any) error {
			if _, err := ps.NewEncoder(d.FontEncoding); err != nil {
				return validation.NewError("config.font_encoding_unknown", err.Error())
			}
			return nil
		})),
		validation.Field(&d.Unit, validation.Required, validation.By(func(any) error {
			if _, err := units.Lookup(d.Unit); err != nil {
				return validation.NewError("config.unit_unknown", err.Error())
			}
			return nil
		})),
		validation.Field(&d.Paper, validation.Required, validation.By(func(any) error {
			if _, err := paper.Lookup(d.Paper); err != nil {
				return validation.NewError("config.paper_unknown", err.Error())
			}
			return nil
		})),
		validation.Field(&d.Margin, validation.Min(0.0)),
		validation.Field(&d.RowsPerPage, validation.Required, validation.Min(1)),
		validation.Field(&d.CountPages, validation.Min(0)),
		validation.Field(&d.RowHeight, validation.Required, validation.Min(0.0)),
		validation.Field(&d.RowPadding, validation.Min(0.0)),
		validation.Field(&d.Preload, validation.Each(validation.By(func(value any) error {
			name, _ := value.(string)
			if !ps.ValidName(name) || strings.Contains(name, "..") {
				return validation.NewError("config.preload_invalid", fmt.Sprintf("invalid library name %q", name))
			}
			return nil
		}))),
	)
}

// Validate checks level and format names.
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.By(oneOf("debug", "info", "warn", "warning", "error"))),
		validation.Field(&l.Format, validation.By(oneOf("console", "json", "pretty"))),
	)
}

// Provider returns a go-logger provider for the settings, or nil when
// logging is disabled.
func (l LoggingConfig) Provider() (logging.Provider, error) {
	if !l.Enabled {
		return nil, nil
	}
	p, err := gologger.NewProvider(gologger.Config{
		Level:     l.Level,
		Format:    l.Format,
		AddSource: l.AddSource,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func oneOf(allowed ...string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return validation.NewError("config.value_unsupported", fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
	}
}

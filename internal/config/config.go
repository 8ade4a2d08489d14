package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiam/lispish/ast"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrInvalidConfig is wrapped by every error returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the lispish command
type Config struct {
	Printer PrinterConfig `toml:"printer" yaml:"printer"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// PrinterConfig controls how parse trees are rendered
type PrinterConfig struct {
	Column int `toml:"column" yaml:"column"`
	Indent int `toml:"indent" yaml:"indent"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// OutputConfig selects the sections that are printed
type OutputConfig struct {
	Tokens bool `toml:"tokens" yaml:"tokens"`
	Tree   bool `toml:"tree" yaml:"tree"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Printer: PrinterConfig{
			Column: ast.DefaultPrinter.Column,
			Indent: len(ast.DefaultPrinter.Indent),
		},
		Output: OutputConfig{
			Tokens: true,
			Tree:   true,
		},
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a TOML or YAML file on top of the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := cfg.decode(content, detectFormat(path)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(content []byte, format Format) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), c); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, c); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// Validate checks that every value is within range.
func (c *Config) Validate() error {
	if c.Printer.Column < 0 {
		return fmt.Errorf("%w: printer.column must not be negative, got %d", ErrInvalidConfig, c.Printer.Column)
	}
	if c.Printer.Indent < 0 {
		return fmt.Errorf("%w: printer.indent must not be negative, got %d", ErrInvalidConfig, c.Printer.Indent)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("%w: parser.max_depth must not be negative, got %d", ErrInvalidConfig, c.Parser.MaxDepth)
	}
	return nil
}

// TreePrinter returns the printer described by the configuration.
func (c *Config) TreePrinter() ast.Printer {
	return ast.Printer{
		Column: c.Printer.Column,
		Indent: strings.Repeat(" ", c.Printer.Indent),
	}
}

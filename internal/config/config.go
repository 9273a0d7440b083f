package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/t14raptor/es3parse/parser"
)

// Output formats understood by the command line tool.
const (
	FormatSexp = "sexp"
	FormatJS   = "js"
	FormatYAML = "yaml"
)

// Config holds the settings of the command line tool.
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
}

// ParserConfig holds parser options
type ParserConfig struct {
	Strict bool `toml:"strict"`
	Fold   bool `toml:"fold"`
}

// OutputConfig holds output options
type OutputConfig struct {
	Format   string `toml:"format"`
	Warnings bool   `toml:"warnings"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{Fold: true},
		Output: OutputConfig{Format: FormatSexp, Warnings: true},
	}
}

// Load reads a TOML configuration file on top of the defaults. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be expressed by the field types.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatSexp, FormatJS, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format %q (want %s, %s or %s)", c.Output.Format, FormatSexp, FormatJS, FormatYAML)
}

// Mode converts the parser settings to parser flags.
func (c *Config) Mode() parser.Mode {
	var mode parser.Mode
	if c.Parser.Strict {
		mode |= parser.Strict
	}
	if !c.Parser.Fold {
		mode |= parser.SkipFolding
	}
	return mode
}

package acrotex

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project config file looked up in the working directory.
const ConfigFileName = "acrotex.yaml"

// Config holds settings that can be kept in a YAML file next to the input.
type Config struct {
	// Input is the CSV path or URL used when none is given on the command line.
	Input string `yaml:"input"`
	// Output overrides the derived .tex path.
	Output string `yaml:"output"`
	// Escape enables escaping of LaTeX reserved characters.
	Escape bool `yaml:"escape"`
	// Theme names the preview theme.
	Theme string `yaml:"theme"`
	// Width wraps preview lines; 0 uses the terminal width.
	Width int `yaml:"width"`
	// Delimiter is the CSV field separator.
	Delimiter string `yaml:"delimiter"`
	// Jobs bounds parallel formatting.
	Jobs int `yaml:"jobs"`
	// Columns maps custom header names to canonical columns.
	Columns map[string]string `yaml:"columns"`
	// Missing lists cell values treated as absent.
	Missing []string `yaml:"missing"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:     "acroList.csv",
		Theme:     "default",
		Delimiter: ",",
		Jobs:      1,
	}
}

// LoadConfigFile reads a YAML config file on top of DefaultConfig.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	if c.Jobs < 0 {
		return errors.New("jobs must be >= 0")
	}
	if c.Width < 0 {
		return errors.New("width must be >= 0")
	}
	if c.Theme != "" {
		if _, ok := ThemeByName(c.Theme); !ok {
			return fmt.Errorf("unknown theme %q", c.Theme)
		}
	}
	for from, to := range c.Columns {
		if !isCanonical(normalizeHeader(to)) {
			return fmt.Errorf("columns: %q maps to unknown column %q", from, to)
		}
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a single rune.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError || size != len(c.Delimiter) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return r, nil
}

// LoadOptions returns the loader options described by c.
func (c *Config) LoadOptions() []LoadOption {
	delim, _ := c.DelimiterRune()
	opts := []LoadOption{WithDelimiter(delim)}
	if len(c.Columns) > 0 {
		opts = append(opts, WithColumnAliases(c.Columns))
	}
	if len(c.Missing) > 0 {
		opts = append(opts, WithMissingMarkers(c.Missing...))
	}
	return opts
}

// FormatOptions returns the formatter options described by c.
func (c *Config) FormatOptions() []FormatOption {
	return []FormatOption{WithEscape(c.Escape), WithConcurrency(c.Jobs)}
}

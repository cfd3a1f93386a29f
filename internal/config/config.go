package config

import (
	"fmt"

	"github.com/AbdelazizMoustafa10m/quill"
)

// ConfigFileName is the name of the quill configuration file.
const ConfigFileName = "quill.toml"

// Config is the top-level configuration structure mapping to quill.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
}

// OutputConfig maps to the [output] section in quill.toml.
type OutputConfig struct {
	// When controls escape sequence emission: "auto", "always" or
	// "never". Overridable per invocation with --when.
	When string `toml:"when"`

	// NoColor disables color in the CLI's own informational output
	// (reference tables, log decoration). It does not affect the
	// transformed text itself.
	NoColor bool `toml:"no_color"`
}

// Default returns the configuration used when no quill.toml is found.
func Default() *Config {
	return &Config{
		Output: OutputConfig{When: quill.WhenAuto.String()},
	}
}

// Validate checks field values. It returns the first problem found.
func (c *Config) Validate() error {
	if _, err := quill.ParseWhen(c.Output.When); err != nil {
		return fmt.Errorf("output.when: %w", err)
	}
	return nil
}

// When returns the configured emission mode. Validate must have
// accepted the config first.
func (c *Config) When() quill.When {
	w, err := quill.ParseWhen(c.Output.When)
	if err != nil {
		return quill.WhenAuto
	}
	return w
}

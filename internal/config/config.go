// Package config loads propbind settings from defaults, an optional TOML
// file and PROPBIND_* environment variables, in increasing precedence.
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"propbind/internal/binder"
	"propbind/internal/bindfile"
)

// Environment variable names.
const (
	EnvCulture       = "PROPBIND_CULTURE"
	EnvStrictOneTime = "PROPBIND_STRICT_ONE_TIME"
	EnvVerbose       = "PROPBIND_VERBOSE"
	EnvFormat        = "PROPBIND_FORMAT"
)

// Config holds propbind settings.
type Config struct {
	// Culture is the BCP-47 tag used by bindings that do not name one.
	Culture string `toml:"culture"`
	// StrictOneTime makes OneTime bindings push once without subscribing.
	StrictOneTime bool `toml:"strict_one_time"`
	// Verbose turns on lifecycle tracing.
	Verbose bool `toml:"verbose"`
	// Format is the binding file format: yaml, toml or auto.
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Culture: "en",
		Format:  string(bindfile.FormatAuto),
	}
}

// Load returns the defaults overlaid with the TOML file at path, if path is
// not empty, and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overlays values found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCulture); ok && v != "" {
		c.Culture = v
	}

	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}

	var errs []error

	for name, dst := range map[string]*bool{
		EnvStrictOneTime: &c.StrictOneTime,
		EnvVerbose:       &c.Verbose,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid boolean %q", name, v))
			continue
		}

		*dst = b
	}

	return errors.Join(errs...)
}

// Validate rejects unparsable cultures and unknown formats.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Culture); err != nil {
		return fmt.Errorf("invalid culture %q: %w", c.Culture, err)
	}

	if _, err := bindfile.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}

// Tag returns the culture tag, or English if it does not parse.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Culture)
	if err != nil {
		return language.English
	}

	return tag
}

// FileFormat returns the binding file format, or FormatAuto if it does not
// parse.
func (c Config) FileFormat() bindfile.Format {
	f, err := bindfile.ParseFormat(c.Format)
	if err != nil {
		return bindfile.FormatAuto
	}

	return f
}

// BinderOptions returns the binder options these settings imply.
func (c Config) BinderOptions() []binder.Option {
	opts := []binder.Option{binder.WithCulture(c.Tag())}
	if c.StrictOneTime {
		opts = append(opts, binder.WithStrictOneTime())
	}

	return opts
}

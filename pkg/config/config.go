// Package config loads pianolayout settings from a TOML file.
//
// A config file overrides the visual tuning of the keyboard and the default
// render options. Every key is optional; missing keys keep their defaults and
// unknown keys are rejected so typos do not go unnoticed.
//
//	[tuning]
//	span_correction = 0.006
//	width_overlap = 0.05
//	black_cross_extent = 0.6
//
//	[render]
//	formats = ["xml", "svg"]
//	orientation = "vertical"
//	width = 240
//	height = 1600
//	labels = true
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

// FileName is the config file looked up in the working directory when no
// path is given.
const FileName = "pianolayout.toml"

// Config is the decoded configuration file.
type Config struct {
	Tuning keyboard.Tuning `toml:"tuning"`
	Render Render          `toml:"render"`
}

// Render holds the default render options.
type Render struct {
	Formats     []string `toml:"formats"`
	Orientation string   `toml:"orientation"`
	Width       float64  `toml:"width"`
	Height      float64  `toml:"height"`
	Labels      bool     `toml:"labels"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tuning: keyboard.DefaultTuning(),
		Render: Render{
			Formats:     []string{"xml"},
			Orientation: "vertical",
		},
	}
}

// Load reads and validates the config at path, layered over [Default].
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// LoadOptional loads path if set, otherwise FileName from the working
// directory if it exists, otherwise returns [Default]. The returned string is
// the file actually used ("" for defaults).
func LoadOptional(path string) (Config, string, error) {
	return loadOptional(path, FileName)
}

func loadOptional(path, fallback string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	if _, err := os.Stat(fallback); errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	} else if err != nil {
		return Config{}, "", errs.Wrap(errs.ErrCodeInvalidConfig, err, "stat config %s", fallback)
	}
	cfg, err := Load(fallback)
	return cfg, fallback, err
}

// Parse decodes TOML data layered over [Default] and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks tuning ranges and render sizes. Format and orientation
// names are validated by the pipeline.
func (c Config) Validate() error {
	if err := keyboard.ValidateTuning(c.Tuning); err != nil {
		return err
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "render size must not be negative (%vx%v)", c.Render.Width, c.Render.Height)
	}
	return nil
}

// Encode writes cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

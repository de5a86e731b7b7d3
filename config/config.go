// 15 Oct 2026

// Package config loads the settings for an interface search: built in
// defaults, then an optional YAML file, then XTAL_ environment
// variables. Commands may bind their flags on top with Viper.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/andrew-torda/xtal_iface/contact"
	"github.com/andrew-torda/xtal_iface/logging"
	"github.com/andrew-torda/xtal_iface/xtal"
)

const envPrefix = "XTAL"

// Keys, as used in files, flags and (upper case, "_" for ".") the
// environment.
const (
	KeyCutoff   = "search.cutoff"
	KeyNumCells = "search.num_cells"
	KeyHetero   = "search.hetero"
	KeyWorkers  = "search.workers"
	KeyDetector = "search.detector"
	KeyPad      = "search.pad"
	KeyVerbose  = "search.verbose"
	KeyLevel    = "log.level"
	KeyFormat   = "log.format"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrInvalid = Error("invalid configuration")

// SearchConfig is what xtal.Options and the cutoff are made from.
type SearchConfig struct {
	Cutoff   float64 `mapstructure:"cutoff"`
	NumCells int     `mapstructure:"num_cells"`
	Hetero   bool    `mapstructure:"hetero"`
	Workers  int     `mapstructure:"workers"`
	Detector string  `mapstructure:"detector"` // grid or rtree
	Pad      float64 `mapstructure:"pad"`
	Verbose  bool    `mapstructure:"verbose"`
}

type Config struct {
	Search SearchConfig      `mapstructure:"search"`
	Log    logging.LogConfig `mapstructure:"log"`
}

// NewViper has the defaults, environment binding and YAML file type set.
// Every key has a default, so every key can come from the environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyCutoff, 5.5)
	v.SetDefault(KeyNumCells, xtal.DefNumCells)
	v.SetDefault(KeyHetero, true)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyDetector, "grid")
	v.SetDefault(KeyPad, 0.0)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLevel, "info")
	v.SetDefault(KeyFormat, "console")
	return v
}

// Load reads the file at path, if path is not empty, and returns the
// checked result.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals v and checks the result.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate catches the mistakes xtal.NewBuilder and UniqueInterfaces
// would, plus the names only we know about.
func (c *Config) Validate() error {
	s := &c.Search
	switch {
	case !(s.Cutoff > 0) || math.IsInf(s.Cutoff, 1):
		return fmt.Errorf("%w: cutoff %g", ErrInvalid, s.Cutoff)
	case s.NumCells < 0:
		return fmt.Errorf("%w: num_cells %d", ErrInvalid, s.NumCells)
	case s.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalid, s.Workers)
	case !(s.Pad >= 0) || math.IsInf(s.Pad, 1):
		return fmt.Errorf("%w: pad %g", ErrInvalid, s.Pad)
	case contact.New(s.Detector) == nil:
		return fmt.Errorf("%w: detector %q", ErrInvalid, s.Detector)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Options turns the search section into builder options.
func (c *Config) Options(log logging.Logger) xtal.Options {
	return xtal.Options{
		NumCells: c.Search.NumCells,
		Hetero:   c.Search.Hetero,
		Pad:      c.Search.Pad,
		Workers:  c.Search.Workers,
		Verbose:  c.Search.Verbose,
		Detector: contact.New(c.Search.Detector),
		Log:      log,
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/huffcode/internal/report"
	"github.com/abhinav/huffcode/internal/symtab"
	"gopkg.in/yaml.v3"
)

var _defaultConfig = config{
	Capacity: symtab.DefaultCapacity,
	Format:   report.Text,
}

type config struct {
	ConfigFile string `yaml:"-"`

	Capacity int           `yaml:"capacity"`
	Format   report.Format `yaml:"format"`
	Stats    bool          `yaml:"stats"`
	HTTP     string        `yaml:"http"`
	LogFile  string        `yaml:"log"`
	Color    bool          `yaml:"color"`
	Verbose  bool          `yaml:"verbose"`
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.ConfigFile, "config", "", "")
	flag.IntVar(&c.Capacity, "capacity", 0, "")
	flag.Var(&c.Format, "format", "")
	flag.BoolVar(&c.Stats, "stats", false, "")
	flag.StringVar(&c.HTTP, "http", "", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Color, "color", false, "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
// A zero capacity is empty, so "-capacity 0" selects the default.
func (c *config) FillFrom(o *config) {
	if c.Capacity == 0 {
		c.Capacity = o.Capacity
	}
	if len(c.Format) == 0 {
		c.Format = o.Format
	}
	if len(c.HTTP) == 0 {
		c.HTTP = o.HTTP
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Stats = c.Stats || o.Stats
	c.Color = c.Color || o.Color
	c.Verbose = c.Verbose || o.Verbose
}

// Validate reports problems with a fully populated config.
func (c *config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	return nil
}

// loadConfigFile reads a YAML configuration file.
// Unknown keys are an error.
func loadConfigFile(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return &cfg, nil
}

// Package config loads the sweepisect runtime configuration: the sweep
// epsilon, resultstore block layout, and log verbosity. It follows the
// same "load YAML, then fill in defaults" shape as resultstore.Options.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/bsm/sweepline/resultstore"
	"github.com/bsm/sweepline/sweep"
)

// LogLevel names one of logrus's levels, accepted verbatim from YAML.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) isValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// Sweep configures the geometric core.
type Sweep struct {
	// Epsilon offsets a segment's status key to break ties at an exact
	// crossing point. Must be > 0. Default: sweep.DefaultEpsilon.
	Epsilon float64 `yaml:"epsilon"`
}

// Store configures the resultstore block writer used by --store.
type Store struct {
	// BlockSize is the size, in bytes, of a resultstore block. Must be
	// >= 1KiB. Default: 16KiB.
	BlockSize int `yaml:"block_size"`

	// SectionSize is the number of entries per section. Must be > 0.
	// Default: 16.
	SectionSize int `yaml:"section_size"`

	// Compression selects the block codec: "none" or "snappy".
	// Default: "snappy".
	Compression string `yaml:"compression"`
}

// Config is the top-level sweepisect configuration document.
type Config struct {
	Sweep    Sweep    `yaml:"sweep"`
	Store    Store    `yaml:"store"`
	LogLevel LogLevel `yaml:"log_level"`
}

// norm returns a copy of c with every unset field filled in with its
// default, the way resultstore.Options.norm does.
func (c *Config) norm() *Config {
	var cc Config
	if c != nil {
		cc = *c
	}

	if cc.Sweep.Epsilon <= 0 {
		cc.Sweep.Epsilon = sweep.DefaultEpsilon
	}
	if cc.Store.BlockSize < 1 {
		cc.Store.BlockSize = 16 * resultstore.KiB
	}
	if cc.Store.SectionSize < 1 {
		cc.Store.SectionSize = 16
	}
	if cc.Store.Compression == "" {
		cc.Store.Compression = "snappy"
	}
	if !cc.LogLevel.isValid() {
		cc.LogLevel = LogLevelInfo
	}
	return &cc
}

// StoreOptions translates the Store section into resultstore.Options.
func (c *Config) StoreOptions() (*resultstore.Options, error) {
	opt := &resultstore.Options{
		BlockSize:   c.Store.BlockSize,
		SectionSize: c.Store.SectionSize,
	}
	switch c.Store.Compression {
	case "none":
		opt.Compression = resultstore.NoCompression
	case "snappy":
		opt.Compression = resultstore.SnappyCompression
	default:
		return nil, fmt.Errorf("config: unknown compression %q", c.Store.Compression)
	}
	return opt, nil
}

// Default returns a fully-populated Config with every field at its
// zero-config default.
func Default() *Config {
	return (&Config{}).norm()
}

// Load reads and parses a YAML config document, filling in defaults for
// anything left unset. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a YAML config document from r.
func Parse(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c.norm(), nil
}

// Package config loads the imgprobe command's YAML configuration.
package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Config holds settings for probing files and writing reports.
type Config struct {
	// MaxFileSize is the largest file, in bytes, that will be read.
	MaxFileSize int64 `yaml:"max_file_size"`
	// Workers is the number of files decoded concurrently.
	Workers int `yaml:"workers"`
	Report  Report `yaml:"report"`
}

type Report struct {
	Title  string `yaml:"title"`
	Format string `yaml:"format"` // FormatHTML or FormatMarkdown
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxFileSize: 64 << 20,
		Workers:     runtime.NumCPU(),
		Report: Report{
			Title:  "Image report",
			Format: FormatHTML,
		},
	}
}

// Load reads the config file at p. Fields missing from the file keep their
// default values, and a missing file yields Default.
func Load(p string) (Config, error) {
	cfg := Default()
	if p == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %v", p)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %v", p)
	}
	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.MaxFileSize < 1 {
		return errors.Errorf("max_file_size must be positive, got %d", c.MaxFileSize)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Report.Format {
	case FormatHTML, FormatMarkdown:
	default:
		return errors.Errorf("unknown report format %q", c.Report.Format)
	}
	return nil
}

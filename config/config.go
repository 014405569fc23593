package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"book-scraper/exporter"
	"book-scraper/fetcher"
	"book-scraper/parser"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"
)

// DefaultURLs are the list pages scraped when no config file overrides them.
// The second entry does not use the Goodreads list markup and yields no
// books; it is kept so runs stay comparable with earlier output.
var DefaultURLs = []string{
	"https://www.goodreads.com/list/show/1.Best_Books_Ever",
	"https://www.librarything.com/",
}

// DelayConfig bounds the random wait before each request
type DelayConfig struct {
	Min time.Duration `yaml:"min"`
	Max time.Duration `yaml:"max"`
}

// Config represents the scraper configuration
type Config struct {
	URLs           []string         `yaml:"urls"`
	UserAgent      string           `yaml:"user_agent"`
	RequestTimeout time.Duration    `yaml:"request_timeout"`
	Delay          DelayConfig      `yaml:"delay"`
	Output         exporter.Outputs `yaml:"output"`
	Selectors      parser.Selectors `yaml:"selectors"`
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	delay := fetcher.DefaultDelay()
	return &Config{
		URLs:      append([]string(nil), DefaultURLs...),
		UserAgent: fetcher.DefaultUserAgent,
		Delay: DelayConfig{
			Min: delay.Min,
			Max: delay.Max,
		},
		Output:    exporter.DefaultOutputs(),
		Selectors: parser.DefaultSelectors(),
	}
}

// Validate checks delay bounds, output paths and selectors
func (c *Config) Validate() error {
	var errs []error

	if c.Delay.Min < 0 || c.Delay.Max < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative"))
	}
	if c.Delay.Max < c.Delay.Min {
		errs = append(errs, fmt.Errorf("delay.max (%s) is less than delay.min (%s)", c.Delay.Max, c.Delay.Min))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative"))
	}

	for name, path := range map[string]string{
		"output.text": c.Output.Text,
		"output.csv":  c.Output.CSV,
		"output.json": c.Output.JSON,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}

	for name, sel := range map[string]string{
		"selectors.entry":  c.Selectors.Entry,
		"selectors.title":  c.Selectors.Title,
		"selectors.author": c.Selectors.Author,
	} {
		if _, err := cascadia.Compile(sel); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", name, sel, err))
		}
	}

	return errors.Join(errs...)
}

// FetcherOptions converts the config into options for the colly fetcher
func (c *Config) FetcherOptions() fetcher.Options {
	return fetcher.Options{
		UserAgent:      c.UserAgent,
		Delay:          fetcher.Delay{Min: c.Delay.Min, Max: c.Delay.Max},
		RequestTimeout: c.RequestTimeout,
	}
}

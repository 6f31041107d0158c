package randsym

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the expansion settings. The
// zero value expands leniently to the writer passed to ExpandAll, without
// tracing or extension filtering.
type Config struct {
	// Strict reports malformed and truncated markers instead of degrading silently
	Strict bool `json:"strict" yaml:"strict"`
	// Output is the destination folder URL, empty to write to stdout
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	// Extensions filters files expanded from folder sources, e.g. ".rs", ".go"
	Extensions []string      `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Tracing    TracingConfig `json:"tracing" yaml:"tracing"`
}

type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	ServiceName string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	// File receives spans, stdout when empty
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultConfig returns a Config populated with default values. Callers may
// modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Tracing: TracingConfig{ServiceName: "randsym"},
	}
}

// Validate returns error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q: expected .ext", ext)
		}
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must not be empty")
	}
	return nil
}

// Matches returns true if the location passes the extension filter
func (c *Config) Matches(location string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	for _, ext := range c.Extensions {
		if strings.HasSuffix(location, ext) {
			return true
		}
	}
	return false
}

// LoadConfig decodes YAML config from URL on top of DefaultConfig
func LoadConfig(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config from %s: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

package randsym

import (
	"log"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/randsym/symbol"
	"github.com/viant/randsym/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents service option
type Option func(s *Service)

// WithConfig sets the configuration; nil keeps DefaultConfig
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithGenerator sets the identifier generator
func WithGenerator(generator symbol.Generator) Option {
	return func(s *Service) {
		s.generator = generator
	}
}

// WithStrict reports malformed and truncated markers as errors
func WithStrict(strict bool) Option {
	return func(s *Service) {
		s.strict = &strict
	}
}

// WithFileSystem sets the storage service used by ExpandURL and Diff
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithFsOptions sets storage options used when reading sources, e.g. an embed.FS
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. Only the
// first successful initialisation in a process takes effect.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			log.Printf("failed to initialise tracing: %v", err)
		}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			log.Printf("failed to initialise tracing: %v", err)
		}
	}
}

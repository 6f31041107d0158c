package randsym

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/randsym/diff"
	"github.com/viant/randsym/lexer"
	"github.com/viant/randsym/rewriter"
	"github.com/viant/randsym/symbol"
	"github.com/viant/randsym/token"
	"github.com/viant/randsym/tracing"
)

// Version is reported as the tracing service version
const Version = "0.1.0"

// Service expands randsym markers in token streams, source text and files
type Service struct {
	config    *Config
	generator symbol.Generator
	strict    *bool
	fs        afs.Service
	fsOptions []storage.Option
	rewriter  *rewriter.Rewriter
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if err := s.config.Validate(); err != nil {
		log.Printf("invalid config: %v", err)
	}
	strict := s.config.Strict
	if s.strict != nil {
		strict = *s.strict
	}
	if tracingConfig := s.config.Tracing; tracingConfig.Enabled {
		if err := tracing.Init(tracingConfig.ServiceName, Version, tracingConfig.File); err != nil {
			log.Printf("failed to initialise tracing: %v", err)
		}
	}
	s.rewriter = rewriter.New(rewriter.WithGenerator(s.generator), rewriter.WithStrict(strict))
}

// Config returns service configuration
func (s *Service) Config() *Config {
	return s.config
}

// Rewrite replaces markers in input as a single invocation
func (s *Service) Rewrite(ctx context.Context, input token.Stream) (output token.Stream, err error) {
	_, span := tracing.StartSpan(ctx, "randsym.rewrite")
	defer func() { tracing.EndSpan(span, err) }()

	bindings := rewriter.NewBindings()
	output, err = s.rewriter.Rewrite(input, bindings)
	span.WithAttributes(map[string]string{
		"tokens.in":  strconv.Itoa(count(input)),
		"tokens.out": strconv.Itoa(count(output)),
		"bindings":   strconv.Itoa(bindings.Len()),
	})
	return output, err
}

// Expand replaces markers in source text, preserving its layout
func (s *Service) Expand(ctx context.Context, source []byte) ([]byte, error) {
	doc, err := lexer.Parse(source)
	if err != nil {
		return nil, err
	}
	stream, err := s.Rewrite(ctx, doc.Stream)
	if err != nil {
		return nil, err
	}
	return doc.WithStream(stream).Bytes(), nil
}

// ExpandURL expands sourceURL content into destURL
func (s *Service) ExpandURL(ctx context.Context, sourceURL, destURL string) error {
	expanded, err := s.expandURL(ctx, sourceURL)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, destURL, file.DefaultFileOsMode, bytes.NewReader(expanded)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", destURL, err)
	}
	return nil
}

// Diff returns unified diff between sourceURL content and its expansion
func (s *Service) Diff(ctx context.Context, sourceURL string) (string, diff.Stats, error) {
	data, err := s.fs.DownloadWithURL(ctx, sourceURL, s.fsOptions...)
	if err != nil {
		return "", diff.Stats{}, fmt.Errorf("failed to download %s: %w", sourceURL, err)
	}
	expanded, err := s.Expand(ctx, data)
	if err != nil {
		return "", diff.Stats{}, fmt.Errorf("failed to expand %s: %w", sourceURL, err)
	}
	return diff.GenerateDiff(data, expanded, url.Path(sourceURL), 3)
}

// Sources resolves location into file URLs; folders are listed recursively
// and filtered by the configured extensions
func (s *Service) Sources(ctx context.Context, location string) ([]*Source, error) {
	object, err := s.fs.Object(ctx, location, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", location, err)
	}
	if !object.IsDir() {
		return []*Source{{URL: location, Path: object.Name()}}, nil
	}
	objects, err := s.fs.List(ctx, location, append([]storage.Option{option.NewRecursive(true)}, s.fsOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", location, err)
	}
	basePath := url.Path(object.URL())
	var result []*Source
	for _, candidate := range objects {
		if candidate.IsDir() || !s.config.Matches(candidate.Name()) {
			continue
		}
		relative := strings.TrimPrefix(strings.TrimPrefix(url.Path(candidate.URL()), basePath), "/")
		result = append(result, &Source{URL: candidate.URL(), Path: relative})
	}
	return result, nil
}

// ExpandAll expands every source under locations. With an output folder
// configured files are written there, otherwise expansions are written to w,
// each preceded by a "// <path>" line when more than one source is expanded.
func (s *Service) ExpandAll(ctx context.Context, locations []string, w io.Writer) error {
	var sources []*Source
	for _, location := range locations {
		located, err := s.Sources(ctx, location)
		if err != nil {
			return err
		}
		sources = append(sources, located...)
	}
	for _, source := range sources {
		if output := s.config.Output; output != "" {
			destURL := url.Join(output, source.Path)
			if err := s.ExpandURL(ctx, source.URL, destURL); err != nil {
				return err
			}
			log.Printf("expanded %v -> %v", source.URL, destURL)
			continue
		}
		expanded, err := s.expandURL(ctx, source.URL)
		if err != nil {
			return err
		}
		if len(sources) > 1 {
			if _, err = fmt.Fprintf(w, "// %s\n", source.Path); err != nil {
				return err
			}
			if n := len(expanded); n > 0 && expanded[n-1] != '\n' {
				expanded = append(expanded, '\n')
			}
		}
		if _, err = w.Write(expanded); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) expandURL(ctx context.Context, sourceURL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, sourceURL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", sourceURL, err)
	}
	expanded, err := s.Expand(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", sourceURL, err)
	}
	return expanded, nil
}

// Source represents a file selected for expansion
type Source struct {
	URL string
	// Path is relative to the listed folder, or the file name
	Path string
}

func count(stream token.Stream) int {
	ret := 0
	stream.Walk(func(token.Token) bool {
		ret++
		return true
	})
	return ret
}

// New creates a service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

package rewriter

import "github.com/viant/randsym/symbol"

// Option represents rewriter option
type Option func(r *Rewriter)

// WithGenerator sets identifier generator
func WithGenerator(generator symbol.Generator) Option {
	return func(r *Rewriter) {
		if generator != nil {
			r.generator = generator
		}
	}
}

// WithStrict reports malformed and truncated markers as errors
func WithStrict(strict bool) Option {
	return func(r *Rewriter) {
		r.strict = strict
	}
}

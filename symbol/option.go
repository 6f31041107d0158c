package symbol

import "io"

// Option represents generator option
type Option func(g *uuidGenerator)

// WithRandomSource sets entropy source, crypto/rand is used by default
func WithRandomSource(random io.Reader) Option {
	return func(g *uuidGenerator) {
		g.random = random
	}
}

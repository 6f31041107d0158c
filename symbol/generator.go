// Package symbol produces collision resistant identifiers
package symbol

import (
	"encoding/hex"
	"io"
	"regexp"

	"github.com/google/uuid"
)

// Prefix starts every generated identifier
const Prefix = "_randsym_"

var pattern = regexp.MustCompile(`^` + Prefix + `[0-9a-f]{32}$`)

// Generator produces a fresh identifier on every call
type Generator interface {
	Generate() string
}

// Func adapts a function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

type uuidGenerator struct {
	random io.Reader
}

// Generate returns Prefix followed by a random (v4) UUID in its simple form.
// It panics if the random source fails.
func (g *uuidGenerator) Generate() string {
	if g.random == nil {
		return Format(uuid.New())
	}
	id, err := uuid.NewRandomFromReader(g.random)
	if err != nil {
		panic(err)
	}
	return Format(id)
}

// Format returns identifier for the supplied UUID
func Format(id uuid.UUID) string {
	return Prefix + hex.EncodeToString(id[:])
}

// IsValid returns true if name has generated identifier format
func IsValid(name string) bool {
	return pattern.MatchString(name)
}

// New creates UUID backed generator
func New(options ...Option) Generator {
	ret := &uuidGenerator{}
	for _, option := range options {
		option(ret)
	}
	return ret
}

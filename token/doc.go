// Package token defines the host-agnostic token model consumed and produced
// by the rewriter: punctuation, identifiers, delimited groups and opaque
// literals. Tokens are plain values; a Stream is never mutated in place.
package token

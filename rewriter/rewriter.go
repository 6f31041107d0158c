package rewriter

import (
	"github.com/viant/randsym/symbol"
	"github.com/viant/randsym/token"
)

const (
	markerDelimiter = '/'
	markerOpening   = '?'
	markerBinding   = '@'
)

// Rewriter replaces markers with generated identifiers
type Rewriter struct {
	generator symbol.Generator
	strict    bool
}

// Strict returns true if malformed markers are reported as errors
func (r *Rewriter) Strict() bool {
	return r.strict
}

// RewriteStream rewrites input as a single invocation with its own bindings
func (r *Rewriter) RewriteStream(input token.Stream) (token.Stream, error) {
	return r.Rewrite(input, NewBindings())
}

// Rewrite returns a new stream with every marker in input replaced.
// Groups are rewritten recursively with the same bindings. A nil bindings
// table is replaced with a fresh one.
func (r *Rewriter) Rewrite(input token.Stream, bindings *Bindings) (token.Stream, error) {
	if bindings == nil {
		bindings = NewBindings()
	}
	output := make(token.Stream, 0, len(input))
	cur := &cursor{stream: input}
	for {
		tok, ok := cur.next()
		if !ok {
			return output, nil
		}
		switch {
		case tok.Kind == token.Group:
			inner, err := r.Rewrite(tok.Stream, bindings)
			if err != nil {
				return nil, err
			}
			output = append(output, tok.WithStream(inner))
		case tok.IsPunct(markerDelimiter):
			emitted, ok, err := r.marker(cur, tok, bindings)
			if err != nil {
				return nil, err
			}
			if !ok {
				return output, nil
			}
			output = append(output, emitted)
		default:
			output = append(output, tok)
		}
	}
}

// marker matches the remainder of a marker opened by slash and returns the
// substitution. ok is false when the stream ended inside the marker.
func (r *Rewriter) marker(cur *cursor, slash token.Token, bindings *Bindings) (emitted token.Token, ok bool, err error) {
	question, ok := cur.peek()
	if !ok || !question.IsPunct(markerOpening) {
		return slash, true, nil
	}
	cur.advance()

	next, ok := cur.peek()
	switch {
	case ok && next.IsPunct(markerBinding):
		cur.advance()
		return r.boundMarker(cur, slash, bindings)
	case ok && next.IsPunct(markerDelimiter):
		cur.advance()
		return token.NewIdent(r.generator.Generate()).At(slash), true, nil
	case !ok:
		if r.strict {
			return emitted, false, newTruncatedError(slash, "expected '@' or '/'")
		}
		return fallback(slash, question), true, nil
	default:
		if r.strict {
			return emitted, false, newMalformedError(slash, next, "expected '@' or '/'")
		}
		// the opening slash is dropped, next is rewritten by the main loop
		return fallback(slash, question), true, nil
	}
}

func (r *Rewriter) boundMarker(cur *cursor, slash token.Token, bindings *Bindings) (emitted token.Token, ok bool, err error) {
	name, ok := cur.next()
	if !ok {
		return r.truncated(slash, "expected bound name")
	}
	if name.Kind != token.Ident {
		if r.strict {
			return emitted, false, newMalformedError(slash, name, "expected bound name")
		}
		return fallback(slash, name), true, nil
	}
	if r.strict {
		closing, ok := cur.peek()
		if !ok {
			return r.truncated(slash, "expected closing '/'")
		}
		if !closing.IsPunct(markerDelimiter) {
			return emitted, false, newMalformedError(slash, closing, "expected closing '/'")
		}
	}
	// lenient mode binds the name even when the marker turns out malformed
	identifier := bindings.Resolve(name.Text, r.generator)
	closing, ok := cur.next()
	if !ok {
		return r.truncated(slash, "expected closing '/'")
	}
	if !closing.IsPunct(markerDelimiter) {
		return fallback(slash, closing), true, nil
	}
	return token.NewIdent(identifier).At(slash), true, nil
}

// fallback returns tok standing in for a malformed marker; it keeps the
// layout preceding the marker
func fallback(slash, tok token.Token) token.Token {
	tok.Leading = slash.Leading + tok.Leading
	return tok
}

func (r *Rewriter) truncated(slash token.Token, reason string) (token.Token, bool, error) {
	if r.strict {
		return token.Token{}, false, newTruncatedError(slash, reason)
	}
	return token.Token{}, false, nil
}

// New creates a rewriter
func New(options ...Option) *Rewriter {
	ret := &Rewriter{}
	for _, option := range options {
		option(ret)
	}
	if ret.generator == nil {
		ret.generator = symbol.New()
	}
	return ret
}

package rewriter

import (
	"errors"
	"fmt"

	"github.com/viant/randsym/token"
)

var (
	// ErrMalformedMarker is returned in strict mode when "/ ?" is not followed
	// by "/" or "@name/".
	ErrMalformedMarker = errors.New("malformed marker")

	// ErrTruncatedInput is returned in strict mode when a stream ends inside
	// a marker.
	ErrTruncatedInput = errors.New("truncated marker")
)

// MarkerError describes a marker that could not be rewritten
type MarkerError struct {
	Err    error
	Pos    int
	Reason string
	Token  *token.Token
}

func (e *MarkerError) Error() string {
	msg := e.Err.Error()
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%v at offset %d", msg, e.Pos)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Token != nil {
		msg = fmt.Sprintf("%v, got %q", msg, e.Token.String())
	}
	return msg
}

func (e *MarkerError) Unwrap() error {
	return e.Err
}

func newMalformedError(opening token.Token, got token.Token, reason string) error {
	return &MarkerError{Err: ErrMalformedMarker, Pos: opening.Pos, Reason: reason, Token: &got}
}

func newTruncatedError(opening token.Token, reason string) error {
	return &MarkerError{Err: ErrTruncatedInput, Pos: opening.Pos, Reason: reason}
}

package token

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Kind identifies a token variant
type Kind int

const (
	// Other covers literals, keywords and anything passed through unchanged
	Other Kind = iota
	Punct
	Ident
	Group
)

func (k Kind) String() string {
	switch k {
	case Punct:
		return "Punct"
	case Ident:
		return "Ident"
	case Group:
		return "Group"
	default:
		return "Other"
	}
}

// Delimiter identifies the bracket pair wrapping a Group
type Delimiter int

const (
	// None is an invisible group, rendered without brackets
	None Delimiter = iota
	Parenthesis
	Brace
	Bracket
)

// Open returns the opening bracket
func (d Delimiter) Open() string {
	switch d {
	case Parenthesis:
		return "("
	case Brace:
		return "{"
	case Bracket:
		return "["
	}
	return ""
}

// Close returns the closing bracket
func (d Delimiter) Close() string {
	switch d {
	case Parenthesis:
		return ")"
	case Brace:
		return "}"
	case Bracket:
		return "]"
	}
	return ""
}

// DelimiterOf returns the delimiter opened or closed by ch
func DelimiterOf(ch byte) (Delimiter, bool) {
	switch ch {
	case '(', ')':
		return Parenthesis, true
	case '{', '}':
		return Brace, true
	case '[', ']':
		return Bracket, true
	}
	return None, false
}

// Token represents a single lexical unit
type Token struct {
	Kind      Kind
	Text      string
	Delimiter Delimiter
	Stream    Stream
	// Pos is the byte offset in the originating source, -1 for synthetic tokens
	Pos int
	// Leading holds whitespace and comments preceding the token
	Leading string
	// Trailing holds whitespace and comments preceding a group's closing bracket
	Trailing string
}

// NewPunct creates a single character punctuation token
func NewPunct(ch byte) Token {
	return Token{Kind: Punct, Text: string(ch), Pos: -1}
}

// NewIdent creates an identifier token
func NewIdent(name string) Token {
	return Token{Kind: Ident, Text: name, Pos: -1}
}

// NewOther creates an opaque token
func NewOther(text string) Token {
	return Token{Kind: Other, Text: text, Pos: -1}
}

// NewGroup creates a group token wrapping stream
func NewGroup(delimiter Delimiter, stream Stream) Token {
	return Token{Kind: Group, Delimiter: delimiter, Stream: stream, Pos: -1}
}

// IsPunct returns true if token is punctuation ch
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// At returns a copy of the token placed at the position and trivia of other
func (t Token) At(other Token) Token {
	t.Pos = other.Pos
	t.Leading = other.Leading
	return t
}

// WithStream returns a copy of a group token wrapping stream
func (t Token) WithStream(stream Stream) Token {
	t.Stream = stream
	return t
}

// Equal compares kind, text and nested streams, ignoring position and trivia
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind || t.Text != other.Text {
		return false
	}
	if t.Kind != Group {
		return true
	}
	return t.Delimiter == other.Delimiter && t.Stream.Equal(other.Stream)
}

// String returns compact representation
func (t Token) String() string {
	if t.Kind != Group {
		return t.Text
	}
	inner := t.Stream.String()
	if inner == "" {
		return t.Delimiter.Open() + t.Delimiter.Close()
	}
	return t.Delimiter.Open() + " " + inner + " " + t.Delimiter.Close()
}

func (t Token) render(w io.Writer) error {
	if _, err := io.WriteString(w, t.Leading); err != nil {
		return err
	}
	if t.Kind != Group {
		_, err := io.WriteString(w, t.Text)
		return err
	}
	if _, err := io.WriteString(w, t.Delimiter.Open()); err != nil {
		return err
	}
	if err := t.Stream.Render(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, t.Trailing+t.Delimiter.Close())
	return err
}

// Stream represents an ordered token sequence
type Stream []Token

// Equal compares streams token by token
func (s Stream) Equal(other Stream) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// String returns tokens separated by a single space
func (s Stream) String() string {
	parts := make([]string, 0, len(s))
	for _, t := range s {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// Render writes tokens with their recorded trivia
func (s Stream) Render(w io.Writer) error {
	for i := range s {
		if err := s[i].render(w); err != nil {
			return fmt.Errorf("failed to render token %v: %w", s[i].Text, err)
		}
	}
	return nil
}

// Bytes returns rendered stream
func (s Stream) Bytes() []byte {
	buf := &bytes.Buffer{}
	_ = s.Render(buf)
	return buf.Bytes()
}

// Walk visits every token depth first, stopping when fn returns false
func (s Stream) Walk(fn func(t Token) bool) bool {
	for _, t := range s {
		if !fn(t) {
			return false
		}
		if t.Kind == Group && !t.Stream.Walk(fn) {
			return false
		}
	}
	return true
}

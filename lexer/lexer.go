// Package lexer splits source text into a token.Stream suitable for the
// rewriter. It knows identifiers, numbers, quoted literals, comments and
// brackets, which is enough to locate markers in most C-like languages;
// it does not understand any particular grammar.
package lexer

import (
	"errors"
	"fmt"

	"github.com/viant/parsly"
	"github.com/viant/randsym/token"
)

// ErrSyntax is returned for unbalanced brackets and unterminated literals
var ErrSyntax = errors.New("syntax error")

// Document represents tokenized source
type Document struct {
	Stream token.Stream
	// Trailing holds whitespace and comments after the last token
	Trailing string
}

// Bytes renders the document; rendering an unmodified document returns the original source
func (d *Document) Bytes() []byte {
	return append(d.Stream.Bytes(), d.Trailing...)
}

// WithStream returns a document sharing trailing trivia with d
func (d *Document) WithStream(stream token.Stream) *Document {
	return &Document{Stream: stream, Trailing: d.Trailing}
}

// Parse tokenizes source
func Parse(source []byte) (*Document, error) {
	p := &parser{cursor: parsly.NewCursor("", source, 0)}
	stream, trailing, err := p.parseStream(token.None, 0)
	if err != nil {
		return nil, err
	}
	return &Document{Stream: stream, Trailing: trailing}, nil
}

// Tokenize returns source token stream
func Tokenize(source []byte) (token.Stream, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return doc.Stream, nil
}

type parser struct {
	cursor *parsly.Cursor
}

// trivia consumes whitespace and comments
func (p *parser) trivia() string {
	start := p.cursor.Pos
	for {
		matched := p.cursor.MatchAny(whitespaceToken, lineCommentToken, blockCommentToken)
		switch matched.Code {
		case whitespaceCode, lineCommentCode, blockCommentCode:
			continue
		}
		return string(p.cursor.Input[start:p.cursor.Pos])
	}
}

// parseStream parses tokens up to the closing bracket of open, or the end of input for token.None
func (p *parser) parseStream(open token.Delimiter, openPos int) (token.Stream, string, error) {
	var stream token.Stream
	for {
		leading := p.trivia()
		pos := p.cursor.Pos
		if pos >= p.cursor.InputSize {
			if open != token.None {
				return nil, "", fmt.Errorf("%w: unterminated %v at offset %d", ErrSyntax, open.Open(), openPos)
			}
			return stream, leading, nil
		}

		var tok token.Token
		matched := p.cursor.MatchAny(identifierToken, numberToken, literalToken, groupOpenToken, groupCloseToken, punctToken)
		switch matched.Code {
		case identifierCode:
			tok = token.NewIdent(matched.Text(p.cursor))
		case numberCode, literalCode:
			tok = token.NewOther(matched.Text(p.cursor))
		case punctCode:
			tok = token.Token{Kind: token.Punct, Text: matched.Text(p.cursor)}
		case groupOpenCode:
			delimiter, _ := token.DelimiterOf(p.cursor.Input[pos])
			inner, trailing, err := p.parseStream(delimiter, pos)
			if err != nil {
				return nil, "", err
			}
			tok = token.NewGroup(delimiter, inner)
			tok.Trailing = trailing
		case groupCloseCode:
			delimiter, _ := token.DelimiterOf(p.cursor.Input[pos])
			if open == token.None || delimiter != open {
				return nil, "", fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.cursor.Input[pos], pos)
			}
			return stream, leading, nil
		default:
			return nil, "", fmt.Errorf("%w: unterminated literal at offset %d: %v", ErrSyntax, pos, p.cursor.NewError(literalToken))
		}
		tok.Pos = pos
		tok.Leading = leading
		stream = append(stream, tok)
	}
}

package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota + 1
	lineCommentCode
	blockCommentCode
	identifierCode
	numberCode
	literalCode
	groupOpenCode
	groupCloseCode
	punctCode
)

// Token definitions
var (
	whitespaceToken   = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	lineCommentToken  = parsly.NewToken(lineCommentCode, "//", newLineCommentMatcher())
	blockCommentToken = parsly.NewToken(blockCommentCode, "/*", newBlockCommentMatcher())
	identifierToken   = parsly.NewToken(identifierCode, "Identifier", newIdentifierMatcher())
	numberToken       = parsly.NewToken(numberCode, "Number", newNumberMatcher())
	literalToken      = parsly.NewToken(literalCode, "Literal", newLiteralMatcher())
	groupOpenToken    = parsly.NewToken(groupOpenCode, "([{", newByteSetMatcher("([{"))
	groupCloseToken   = parsly.NewToken(groupCloseCode, ")]}", newByteSetMatcher(")]}"))
	punctToken        = parsly.NewToken(punctCode, "Punct", newPunctMatcher())
)

func newLineCommentMatcher() parsly.Matcher {
	return &lineCommentMatcher{}
}

func newBlockCommentMatcher() parsly.Matcher {
	return &blockCommentMatcher{}
}

func newIdentifierMatcher() parsly.Matcher {
	return &identifierMatcher{}
}

func newNumberMatcher() parsly.Matcher {
	return &numberMatcher{}
}

func newLiteralMatcher() parsly.Matcher {
	return &literalMatcher{}
}

func newByteSetMatcher(set string) parsly.Matcher {
	return &byteSetMatcher{set: set}
}

func newPunctMatcher() parsly.Matcher {
	return &punctMatcher{}
}

// lineCommentMatcher matches "//" up to the end of line; "//?" is a marker
// closing slash followed by a marker opening slash, not a comment
type lineCommentMatcher struct{}

func (m *lineCommentMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos+1 >= size || input[pos] != '/' || input[pos+1] != '/' {
		return 0
	}
	if pos+2 < size && input[pos+2] == '?' {
		return 0
	}
	matched := 2
	for i := pos + 2; i < size && input[i] != '\n'; i++ {
		matched++
	}
	return matched
}

// blockCommentMatcher matches terminated /* ... */ comments
type blockCommentMatcher struct{}

func (m *blockCommentMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos+1 >= size || input[pos] != '/' || input[pos+1] != '*' {
		return 0
	}
	for i := pos + 2; i+1 < size; i++ {
		if input[i] == '*' && input[i+1] == '/' {
			return i + 2 - pos
		}
	}
	return 0
}

// identifierMatcher matches a letter or underscore followed by letters, digits or underscores
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	matched := 0
	for i := pos; i < size; {
		r, width := utf8.DecodeRune(input[i:size])
		if !isIdentifierRune(r, matched == 0) {
			break
		}
		matched += width
		i += width
	}
	return matched
}

func isIdentifierRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

// numberMatcher matches a digit followed by digits, letters, underscores or dots (1, 0x1F, 1_000, 2.5e3)
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size || !isDigit(input[pos]) {
		return 0
	}
	matched := 1
	for i := pos + 1; i < size; i++ {
		c := input[i]
		if isDigit(c) || isLetter(c) || c == '_' || c == '.' {
			matched++
			continue
		}
		break
	}
	return matched
}

// literalMatcher matches quoted literals; back-quoted literals are raw.
// A single quote only starts a literal holding one rune or one escape
// sequence ('x', '\n', '\u{1F600}'); otherwise it is punctuation, as in
// Rust lifetimes.
type literalMatcher struct{}

func (m *literalMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	quote := input[pos]
	switch quote {
	case '\'':
		return matchCharLiteral(input[pos:size])
	case '"', '`':
	default:
		return 0
	}
	for i := pos + 1; i < size; i++ {
		switch input[i] {
		case '\\':
			if quote != '`' {
				i++
			}
		case quote:
			return i + 1 - pos
		}
	}
	return 0
}

// maxEscapeSize bounds escape sequences such as \u{10FFFF}
const maxEscapeSize = 10

// matchCharLiteral matches a single quoted rune or escape sequence at the start of input
func matchCharLiteral(input []byte) int {
	if len(input) < 3 {
		return 0
	}
	if input[1] != '\\' {
		r, width := utf8.DecodeRune(input[1:])
		if r == '\'' || r == '\n' || 1+width >= len(input) || input[1+width] != '\'' {
			return 0
		}
		return width + 2
	}
	// the escaped character itself may be a quote: '\''
	for i := 3; i < len(input) && i <= 2+maxEscapeSize; i++ {
		switch input[i] {
		case '\'':
			return i + 1
		case '\n', ' ', '\t':
			return 0
		}
	}
	return 0
}

type byteSetMatcher struct {
	set string
}

func (m *byteSetMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	if strings.IndexByte(m.set, cursor.Input[cursor.Pos]) == -1 {
		return 0
	}
	return 1
}

// punctMatcher matches any single rune that does not start another token
type punctMatcher struct{}

func (m *punctMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	switch input[pos] {
	case '"', '`', '(', ')', '[', ']', '{', '}':
		return 0
	}
	r, width := utf8.DecodeRune(input[pos:size])
	if isIdentifierRune(r, true) || isDigit(input[pos]) {
		return 0
	}
	return width
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/randsym/token"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    string
	}{
		{description: "anonymous marker", input: "fn /?/ () {}", expected: "fn / ? / ( ) {}"},
		{description: "named marker", input: "/?@my_fn/()", expected: "/ ? @ my_fn / ( )"},
		{description: "adjacent markers", input: "/?//?/", expected: "/ ? / / ? /"},
		{description: "line comment", input: "a // b /?/\nc", expected: "a c"},
		{description: "block comment", input: "a /* /?/ */ b", expected: "a b"},
		{description: "literals", input: `x("a/?/b", 'c', ` + "`raw\\`" + `)`, expected: `x ( "a/?/b" , 'c' , ` + "`raw\\`" + ` )`},
		{description: "numbers", input: "1_000 + 0x1F - 2.5e3", expected: "1_000 + 0x1F - 2.5e3"},
		{description: "unicode identifier", input: "héllo → wörld", expected: "héllo → wörld"},
		{description: "lifetime quote", input: "&'a str", expected: "& ' a str"},
		{description: "lifetimes on one line", input: "fn /?@f/<'a>(x: &'a str) -> &'a str { x }", expected: "fn / ? @ f / < ' a > ( x : & ' a str ) - > & ' a str { x }"},
		{description: "marker between lifetimes", input: "struct S<'a> { /?@v/: &'a u8 }", expected: "struct S < ' a > { / ? @ v / : & ' a u8 }"},
		{description: "char escapes", input: `['\n', '\'', '\u{1F600}', 'é']`, expected: `[ '\n' , '\'' , '\u{1F600}' , 'é' ]`},
		{description: "nested groups", input: "{[(x)]}", expected: "{ [ ( x ) ] }"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			stream, err := Tokenize([]byte(tc.input))
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tc.expected, stream.String())
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	stream, err := Tokenize([]byte(`f(1, "s") / b`))
	assert.Nil(t, err)
	if !assert.Len(t, stream, 4) {
		return
	}
	assert.Equal(t, token.Ident, stream[0].Kind)
	assert.Equal(t, token.Group, stream[1].Kind)
	assert.Equal(t, token.Parenthesis, stream[1].Delimiter)
	assert.Equal(t, token.Other, stream[1].Stream[0].Kind)
	assert.Equal(t, token.Punct, stream[1].Stream[1].Kind)
	assert.Equal(t, token.Other, stream[1].Stream[2].Kind)
	assert.True(t, stream[2].IsPunct('/'))
	assert.Equal(t, 10, stream[2].Pos)
	assert.Equal(t, " ", stream[2].Leading)
	assert.Equal(t, token.Ident, stream[3].Kind)
}

func TestParse_RoundTrip(t *testing.T) {
	sources := []string{
		"",
		"   \n",
		"fn /?/ () -> String {\n\t\"I have a random name!\".into()\n}\n",
		"fn /?@my_fn/ () {}\n\nprintln!(\"{}\", /?@my_fn/()); // trailing comment",
		"func ( x ) { /* c */ return x[ 1 ] }  ",
	}
	for _, source := range sources {
		doc, err := Parse([]byte(source))
		if !assert.Nil(t, err, source) {
			continue
		}
		assert.Equal(t, source, string(doc.Bytes()))
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		description string
		input       string
	}{
		{description: "unterminated group", input: "f(a, b"},
		{description: "unexpected closing", input: "a)"},
		{description: "mismatched closing", input: "(a]"},
		{description: "unterminated string", input: `x = "abc`},
		{description: "unterminated raw string", input: "x = `abc"},
	}
	for _, tc := range testCases {
		_, err := Parse([]byte(tc.input))
		assert.True(t, errors.Is(err, ErrSyntax), tc.description)
	}
}

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_String(t *testing.T) {
	testCases := []struct {
		description string
		stream      Stream
		expected    string
	}{
		{
			description: "flat stream",
			stream:      Stream{NewIdent("a"), NewPunct('/'), NewIdent("b")},
			expected:    "a / b",
		},
		{
			description: "nested group",
			stream:      Stream{NewIdent("f"), NewGroup(Parenthesis, Stream{NewOther("1")})},
			expected:    "f ( 1 )",
		},
		{
			description: "empty group",
			stream:      Stream{NewGroup(Brace, nil)},
			expected:    "{}",
		},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.stream.String(), tc.description)
	}
}

func TestStream_Bytes(t *testing.T) {
	group := NewGroup(Brace, Stream{NewIdent("x")})
	group.Leading = " "
	group.Trailing = "\n"
	ident := NewIdent("x")
	ident.Leading = "\n\t"
	group.Stream[0] = ident
	stream := Stream{NewIdent("fn"), group}
	assert.Equal(t, "fn {\n\tx\n}", string(stream.Bytes()))
}

func TestToken_Equal(t *testing.T) {
	a := NewGroup(Bracket, Stream{NewPunct('/'), NewIdent("a")})
	b := NewGroup(Bracket, Stream{NewPunct('/'), NewIdent("a")})
	b.Pos = 10
	b.Leading = "  "
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewGroup(Parenthesis, b.Stream)))
	assert.False(t, NewPunct('/').Equal(NewOther("/")))
}

func TestToken_At(t *testing.T) {
	anchor := NewPunct('/')
	anchor.Pos = 7
	anchor.Leading = " "
	moved := NewIdent("name").At(anchor)
	assert.Equal(t, 7, moved.Pos)
	assert.Equal(t, " ", moved.Leading)
	assert.Equal(t, "name", moved.Text)
}

func TestStream_Walk(t *testing.T) {
	stream := Stream{NewIdent("a"), NewGroup(Parenthesis, Stream{NewIdent("b"), NewGroup(Brace, Stream{NewIdent("c")})})}
	var names []string
	stream.Walk(func(tok Token) bool {
		if tok.Kind == Ident {
			names = append(names, tok.Text)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

package rewriter

import "github.com/viant/randsym/token"

// cursor walks a stream with one token of lookahead
type cursor struct {
	stream token.Stream
	pos    int
}

func (c *cursor) peek() (token.Token, bool) {
	if c.pos >= len(c.stream) {
		return token.Token{}, false
	}
	return c.stream[c.pos], true
}

func (c *cursor) next() (token.Token, bool) {
	ret, ok := c.peek()
	if ok {
		c.pos++
	}
	return ret, ok
}

func (c *cursor) advance() {
	c.pos++
}

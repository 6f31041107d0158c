package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindings_Resolve(t *testing.T) {
	bindings := NewBindings()
	generator := sequence()
	assert.Equal(t, "sym1", bindings.Resolve("a", generator))
	assert.Equal(t, "sym2", bindings.Resolve("b", generator))
	assert.Equal(t, "sym1", bindings.Resolve("a", generator))
	assert.Equal(t, 2, bindings.Len())
	assert.Equal(t, []string{"a", "b"}, bindings.Names())

	value, ok := bindings.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "sym2", value)
	_, ok = bindings.Lookup("c")
	assert.False(t, ok)
}

package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDiff(t *testing.T) {
	oldText := "fn /?/ () {}\nline2\nline3\n"
	newText := "fn _randsym_0123456789abcdef0123456789abcdef () {}\nline2\nline3\n"

	patch, stats, err := GenerateDiff([]byte(oldText), []byte(newText), "main.rs", 3)
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(patch, "--- main.rs (original)\n+++ main.rs (expanded)\n"), patch)
	assert.Contains(t, patch, "-fn /?/ () {}\n")
	assert.Contains(t, patch, "+fn _randsym_0123456789abcdef0123456789abcdef () {}\n")
	assert.Equal(t, Stats{Hunks: 1, Added: 1, Removed: 1}, stats)
}

func TestGenerateDiff_Identical(t *testing.T) {
	patch, stats, err := GenerateDiff([]byte("a\n"), []byte("a\n"), "a.txt", 0)
	assert.Nil(t, err)
	assert.Equal(t, "", patch)
	assert.Equal(t, Stats{}, stats)
}

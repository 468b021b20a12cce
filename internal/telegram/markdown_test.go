package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMessage_Short(t *testing.T) {
	assert.Equal(t, []string{"hello"}, SplitMessage("hello", 10))
}

func TestSplitMessage_PrefersNewlines(t *testing.T) {
	line := strings.Repeat("a", 30) + "\n"
	text := strings.Repeat(line, 5)

	parts := SplitMessage(text, 100)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 100)
		assert.True(t, strings.HasSuffix(p, "\n"), "part %q should end on a line break", p)
	}
}

func TestSplitMessage_Cyrillic(t *testing.T) {
	line := strings.Repeat("ж", 30) + "\n"
	text := strings.Repeat(line, 5)

	parts := SplitMessage(text, 100)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 100)
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "<code>a&lt;b</code>", Code("a<b"))
}

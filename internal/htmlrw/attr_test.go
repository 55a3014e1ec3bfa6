package htmlrw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagQuoteStyles(t *testing.T) {
	tag := `<img src="a.png" alt='pic' width=40>`
	parsed, ok := ParseTag(tag)
	require.True(t, ok)

	assert.Equal(t, "a.png", parsed.Attrs["src"].In(tag))
	assert.Equal(t, "pic", parsed.Attrs["alt"].In(tag))
	assert.Equal(t, "40", parsed.Attrs["width"].In(tag))
}

func TestParseTagCaseFoldsNames(t *testing.T) {
	tag := `<IMG SRC='x' Alt="y">`
	parsed, ok := ParseTag(tag)
	require.True(t, ok)
	assert.Equal(t, "x", parsed.Attrs["src"].In(tag))
	assert.Equal(t, "y", parsed.Attrs["alt"].In(tag))
}

func TestParseTagFirstOccurrenceWins(t *testing.T) {
	tag := `<img src="first" src="second">`
	parsed, ok := ParseTag(tag)
	require.True(t, ok)
	assert.Equal(t, "first", parsed.Attrs["src"].In(tag))
}

func TestParseTagWhitespaceAroundEquals(t *testing.T) {
	tag := `<img src = "a.png">`
	parsed, ok := ParseTag(tag)
	require.True(t, ok)
	assert.Equal(t, "a.png", parsed.Attrs["src"].In(tag))
}

func TestParseTagSelfClosing(t *testing.T) {
	tag := `<img src='baz' alt="hi"/>`
	parsed, ok := ParseTag(tag)
	require.True(t, ok)
	assert.Equal(t, "baz", parsed.Attrs["src"].In(tag))
	assert.Equal(t, "hi", parsed.Attrs["alt"].In(tag))
}

func TestParseTagNoAttributes(t *testing.T) {
	parsed, ok := ParseTag(`<br>`)
	require.True(t, ok)
	assert.Empty(t, parsed.Attrs)
}

func TestParseTagRejectsNonTags(t *testing.T) {
	for _, s := range []string{"", "plain text", "<>", "<1bad>", "<img src='x'", "img src='x'>"} {
		_, ok := ParseTag(s)
		assert.False(t, ok, "%q should not parse as a tag", s)
	}
}

func TestParseAttrsReoffsetsSpans(t *testing.T) {
	doc := `PREFIX src="a.png" SUFFIX`
	interior := doc[6:18] // ` src="a.png"`
	attrs := parseAttrs(interior, 6)
	require.Contains(t, attrs, "src")
	// The span must index the caller's string, not the interior.
	assert.Equal(t, "a.png", attrs["src"].In(doc))
}

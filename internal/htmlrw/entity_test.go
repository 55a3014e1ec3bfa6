package htmlrw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescapeNumeric(t *testing.T) {
	for in, want := range map[string]string{
		"&#65;":      "A",
		"&#x41;":     "A",
		"&#X41;":     "A",
		"&#x1F600;":  "\U0001F600",
		"&#233;":     "é",
		"&#x0041;":   "A",
		"no entity":  "no entity",
		"&#65;&#66;": "AB",
	} {
		got, err := Unescape(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestUnescapeNamed(t *testing.T) {
	got, err := Unescape("&amp; &lt; &gt; &quot; &nbsp; &mdash;")
	require.NoError(t, err)
	assert.Equal(t, "& < > \"   —", got)
}

func TestUnescapeUnknownNamePassesThrough(t *testing.T) {
	got, err := Unescape("x &unknownxyz; y")
	require.NoError(t, err)
	assert.Equal(t, "x &unknownxyz; y", got)
}

func TestUnescapeOverflow(t *testing.T) {
	for _, in := range []string{"&#x123456789;", "&#999999999999999999999;"} {
		_, err := Unescape(in)
		assert.ErrorIs(t, err, ErrInvalidEntity, in)
	}
}

func TestDecodeHex(t *testing.T) {
	got, err := decodeHex("41")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	_, err = decodeHex("")
	assert.ErrorIs(t, err, ErrInvalidEntity)
	_, err = decodeHex("123456789")
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		`a & b < c > d " e ' f`,
		"plain",
		"café 世界",
		`&&<<>>""''`,
	} {
		got, err := Unescape(EscapeAttr(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

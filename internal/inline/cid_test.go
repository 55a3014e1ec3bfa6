package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIDImages(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", pngBytes)

	res, err := CIDImages(`<img src="a.png"> <img src="http://x/y.png">`, dir)
	require.NoError(t, err)

	assert.Contains(t, res.HTML, `src="cid:img1.png"`)
	assert.Contains(t, res.HTML, `<img src="http://x/y.png">`)
	assert.Contains(t, res.DataURIHTML, "data:image/png;base64,")

	require.Equal(t, 1, res.Attachments.Len())
	att, ok := res.Attachments.Get("img1.png")
	require.True(t, ok)
	assert.Equal(t, pngBytes, att.Data)
	assert.Equal(t, "image/png", att.ContentType)
}

func TestCIDImagesDedup(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", pngBytes)
	writeImage(t, dir, "copy.png", pngBytes)
	writeImage(t, dir, "other.gif", []byte("GIF89a-different"))

	in := `<img src="a.png"><img src="a.png"><img src="copy.png"><img src="other.gif">`
	res, err := CIDImages(in, dir)
	require.NoError(t, err)

	// Identical bytes collapse to one attachment referenced three times.
	assert.Equal(t, 2, res.Attachments.Len())
	assert.Equal(t, []string{"img1.png", "img2.gif"}, res.Attachments.Names())
	assert.Equal(t,
		`<img src="cid:img1.png"><img src="cid:img1.png"><img src="cid:img1.png"><img src="cid:img2.gif">`,
		res.HTML)
}

func TestCIDImagesJpegExtension(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo.jpg", []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2})

	res, err := CIDImages(`<img src="photo.jpg">`, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"img1.jpg"}, res.Attachments.Names())
	att, _ := res.Attachments.Get("img1.jpg")
	assert.Equal(t, "image/jpeg", att.ContentType)
}

func TestCIDImagesNoLocalImages(t *testing.T) {
	in := `<img src="https://cdn/x.png"><p>text</p>`
	res, err := CIDImages(in, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, in, res.HTML)
	assert.Equal(t, 0, res.Attachments.Len())
}

func TestCIDImagesStateDoesNotLeakBetweenCalls(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", pngBytes)

	first, err := CIDImages(`<img src="a.png">`, dir)
	require.NoError(t, err)
	second, err := CIDImages(`<img src="a.png">`, dir)
	require.NoError(t, err)

	// Counter and dedup table are per call.
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, 1, second.Attachments.Len())
}

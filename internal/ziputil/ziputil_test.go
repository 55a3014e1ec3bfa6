package ziputil

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohit455273/EmailR/internal/inline"
)

func TestExportAttachments(t *testing.T) {
	dir := t.TempDir()
	pngData := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), pngData, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.gif"), []byte("GIF89a"), 0o644))

	res, err := inline.CIDImages(`<img src="a.png"><img src="b.gif">`, dir)
	require.NoError(t, err)
	require.Equal(t, 2, res.Attachments.Len())

	outZip := filepath.Join(t.TempDir(), "images.zip")
	require.NoError(t, ExportAttachments(res.Attachments, outZip))

	zr, err := zip.OpenReader(outZip)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 2)
	assert.Equal(t, "img1.png", zr.File[0].Name)
	assert.Equal(t, "img2.gif", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, pngData, data)
}

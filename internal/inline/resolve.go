// Package inline converts image references inside HTML into base64 data
// URIs or Content-ID references with a deduplicated attachment set, for
// embedding into MIME email.
package inline

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidFileURI reports a file: reference without the file:// prefix.
var ErrInvalidFileURI = errors.New("inline: invalid file URI")

// Extensions the platform mime registry may not know about.
var extraMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// SourceToDataURI resolves an image reference to a data URI. Network
// references and data: URIs come back unchanged. file: URIs and local
// paths are resolved against baseDir, read fully into memory and
// base64-encoded. A missing file or an undeterminable MIME type leaves the
// reference unchanged; a best-effort rewrite never aborts over one broken
// image.
func SourceToDataURI(src, baseDir string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:") {
		return src, nil
	}

	var path string
	if strings.HasPrefix(src, "file:") {
		p, err := fileURIToPath(src)
		if err != nil {
			return "", err
		}
		path = p
	} else {
		path = resolvePath(urlDecode(src), baseDir)
	}

	if _, err := os.Stat(path); err != nil {
		log.Debug("image not embedded, file missing", "src", src, "path", path)
		return src, nil
	}
	mimeType := mimeTypeByExtension(path)
	if mimeType == "" {
		log.Debug("image not embedded, unknown type", "src", src, "path", path)
		return src, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("image not embedded", "src", src, "err", err)
		return src, nil
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// fileURIToPath converts a file:// URI to a filesystem path. Anything with
// a file: scheme but without the double slash is malformed.
func fileURIToPath(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "file://")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileURI, uri)
	}
	return filepath.FromSlash(urlDecode(rest)), nil
}

// resolvePath makes p absolute relative to baseDir.
func resolvePath(p, baseDir string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// urlDecode unescapes percent-encoding, keeping the input as-is when it is
// not valid percent-encoding.
func urlDecode(s string) string {
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}

// mimeTypeByExtension guesses the content type from the file extension.
// Returns "" when the type cannot be determined.
func mimeTypeByExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	return extraMimeTypes[ext]
}

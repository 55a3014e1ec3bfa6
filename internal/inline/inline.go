package inline

import (
	"github.com/rohit455273/EmailR/internal/htmlrw"
)

// Images rewrites every <img> src in doc, converting local and file:
// references into base64 data URIs. Network references and images that are
// already inlined pass through, as do images that cannot be resolved. The
// rest of the document is preserved byte for byte.
func Images(doc, baseDir string) (string, error) {
	var rerr error
	out, err := htmlrw.RewriteAttribute(doc, "img", "src", func(src string) string {
		uri, err := SourceToDataURI(src, baseDir)
		if err != nil {
			if rerr == nil {
				rerr = err
			}
			return src
		}
		return uri
	})
	if err != nil {
		return "", err
	}
	if rerr != nil {
		return "", rerr
	}
	return out, nil
}

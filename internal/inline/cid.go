package inline

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/rohit455273/EmailR/internal/htmlrw"
)

var dataURIRe = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,(.*)$`)

// Attachment is one extracted image part.
type Attachment struct {
	Data        []byte
	ContentType string
}

// AttachmentSet holds extracted attachments keyed by their synthetic
// identifier (img1.png, img2.gif, ...), deduplicated by content hash:
// identical image bytes get one attachment no matter how many tags
// reference them. Identifier assignment is deterministic, in document
// order, first-seen content wins. The set is scoped to one CIDImages call.
type AttachmentSet struct {
	names  []string
	parts  map[string]Attachment
	byHash map[[sha256.Size]byte]string
}

func newAttachmentSet() *AttachmentSet {
	return &AttachmentSet{
		parts:  make(map[string]Attachment),
		byHash: make(map[[sha256.Size]byte]string),
	}
}

// Names returns the identifiers in assignment order.
func (s *AttachmentSet) Names() []string { return s.names }

// Len returns the number of distinct attachments.
func (s *AttachmentSet) Len() int { return len(s.names) }

// Get looks up an attachment by identifier.
func (s *AttachmentSet) Get(name string) (Attachment, bool) {
	a, ok := s.parts[name]
	return a, ok
}

func (s *AttachmentSet) put(sum [sha256.Size]byte, name string, a Attachment) {
	s.names = append(s.names, name)
	s.parts[name] = a
	s.byHash[sum] = name
}

// CIDResult is the output of the CIDImages pipeline.
type CIDResult struct {
	// HTML references attachments through cid: identifiers.
	HTML string
	// DataURIHTML is the intermediate document with every eligible image
	// inlined as a data URI.
	DataURIHTML string
	Attachments *AttachmentSet
}

// CIDImages converts the images in doc into Content-ID references plus an
// extracted attachment set for MIME embedding. Local images are first
// normalized to data URIs via Images, then every data URI becomes a
// cid:imgN.<ext> reference; values that are not image data URIs (remaining
// http:, mailto:, ...) pass through unchanged.
func CIDImages(doc, baseDir string) (CIDResult, error) {
	inlined, err := Images(doc, baseDir)
	if err != nil {
		return CIDResult{}, err
	}

	set := newAttachmentSet()
	counter := 0
	out, err := htmlrw.RewriteAttribute(inlined, "img", "src", func(src string) string {
		m := dataURIRe.FindStringSubmatch(src)
		if m == nil {
			return src
		}
		subtype, payload := m[1], m[2]

		// Dedup on the full data URI: same bytes and type, same part.
		sum := sha256.Sum256([]byte(src))
		if name, ok := set.byHash[sum]; ok {
			return "cid:" + name
		}
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return src
		}
		counter++
		// Identifiers carry no @domain suffix; some mail clients render
		// suffixed content ids as visible attachments.
		name := fmt.Sprintf("img%d.%s", counter, extForSubtype(subtype))
		set.put(sum, name, Attachment{Data: raw, ContentType: "image/" + subtype})
		return "cid:" + name
	})
	if err != nil {
		return CIDResult{}, err
	}
	return CIDResult{HTML: out, DataURIHTML: inlined, Attachments: set}, nil
}

func extForSubtype(subtype string) string {
	switch subtype {
	case "jpeg":
		return "jpg"
	case "svg+xml":
		return "svg"
	}
	return subtype
}

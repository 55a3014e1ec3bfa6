// Package ziputil exports extracted email attachments as zip archives.
package ziputil

import (
	"archive/zip"
	"fmt"
	"os"

	"github.com/rohit455273/EmailR/internal/inline"
)

// ExportAttachments writes every attachment in the set to a zip archive,
// one entry per identifier, in assignment order.
func ExportAttachments(set *inline.AttachmentSet, outZip string) error {
	f, err := os.Create(outZip)
	if err != nil {
		return fmt.Errorf("create zip: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	for _, name := range set.Names() {
		att, ok := set.Get(name)
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		if _, err := w.Write(att.Data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return zw.Close()
}

package htmlrw

import (
	"regexp"
	"strings"
)

// SubstFunc maps one match to its replacement. The match's spans index
// into the full document passed to SubstituteFunc. Returning ok=false
// leaves the matched text unchanged.
type SubstFunc func(m Match, doc string) (replacement string, ok bool)

// SubstituteFunc replaces every match of re in doc with fn's output,
// preserving all unmatched text verbatim. Single left-to-right pass over
// the document.
func SubstituteFunc(re *regexp.Regexp, doc string, fn SubstFunc) string {
	matches := FindAll(re, doc)
	if len(matches) == 0 {
		return doc
	}
	var b strings.Builder
	b.Grow(len(doc))
	last := 0
	for _, m := range matches {
		b.WriteString(doc[last:m.Whole.Start])
		if repl, ok := fn(m, doc); ok {
			b.WriteString(repl)
		} else {
			b.WriteString(m.Whole.In(doc))
		}
		last = m.Whole.End
	}
	b.WriteString(doc[last:])
	return b.String()
}

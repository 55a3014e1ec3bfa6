package htmlrw

import (
	"regexp"
	"strings"
)

// Attribute grammar for one tag interior: name = value with the value
// double-quoted, single-quoted, or a bare run without whitespace or tag
// metacharacters. Whitespace around '=' is allowed.
var (
	attrRe = regexp.MustCompile(`([a-zA-Z_:][a-zA-Z0-9:._-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+))`)
	tagRe  = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9-]*([ \t\r\n][^<>]*?)?/?>$`)
)

// Tag is one parsed HTML begin-tag or self-closing tag. Attrs maps the
// lower-cased attribute name to its value span; for a repeated name only
// the first occurrence is kept.
type Tag struct {
	Attrs map[string]Span
}

// parseAttrs parses name=value pairs out of a tag interior. offset is the
// interior's position within the caller's string; the returned spans are
// shifted into that coordinate space, so they index the caller's string
// directly. Text not matching the grammar (stray tokens, valueless
// attributes) is skipped.
func parseAttrs(interior string, offset int) map[string]Span {
	attrs := make(map[string]Span)
	for _, m := range FindAll(attrRe, interior) {
		name := strings.ToLower(m.Group(1).In(interior))
		if _, dup := attrs[name]; dup {
			continue
		}
		// Exactly one of the three value alternatives participates.
		for g := 2; g <= 4; g++ {
			if v := m.Group(g); v.Present() {
				attrs[name] = v.Shift(offset)
				break
			}
		}
	}
	return attrs
}

// ParseTag parses one complete begin/self-closing tag. The returned spans
// are relative to tag itself. A string that does not match the tag
// structure yields ok=false; callers treat that as "leave untouched".
func ParseTag(tag string) (Tag, bool) {
	ms := FindAll(tagRe, tag)
	if len(ms) == 0 {
		return Tag{}, false
	}
	interior := ms[0].Group(1)
	if !interior.Present() {
		return Tag{Attrs: map[string]Span{}}, true
	}
	return Tag{Attrs: parseAttrs(interior.In(tag), interior.Start)}, true
}

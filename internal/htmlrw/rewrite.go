package htmlrw

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadTagName reports a tag name that is not a plain identifier. Tag
// names are interpolated into a scan pattern, so anything else is rejected
// before compilation.
var ErrBadTagName = errors.New("htmlrw: tag name is not a valid identifier")

var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Transform rewrites one attribute value. It receives the value with HTML
// entities already decoded and returns the replacement; the caller
// re-escapes it before splicing. Returning the input unchanged is a no-op.
type Transform func(value string) string

// RewriteAttribute rewrites the named attribute on every begin-tag of
// tagName in doc, case-insensitively for both names. Tags that fail to
// parse, tags missing the attribute, and anything inside HTML comments are
// left untouched; all text outside the rewritten value spans is preserved
// byte for byte. Only the first occurrence of a repeated attribute is
// rewritten.
func RewriteAttribute(doc, tagName, attrName string, fn Transform) (string, error) {
	if !identRe.MatchString(tagName) {
		return "", fmt.Errorf("%w: %q", ErrBadTagName, tagName)
	}
	// Comments are matched first so tags inside them are consumed without
	// being rewritten.
	scanRe := regexp.MustCompile(`(?is)(<!--.*?-->)|<` + tagName + `[ \t\r\n][^>]*>`)
	attrName = strings.ToLower(attrName)

	var rerr error
	out := SubstituteFunc(scanRe, doc, func(m Match, doc string) (string, bool) {
		if rerr != nil || m.Group(1).Present() {
			return "", false
		}
		tagText := m.Whole.In(doc)
		tag, ok := ParseTag(tagText)
		if !ok {
			return "", false
		}
		val, ok := tag.Attrs[attrName]
		if !ok {
			return "", false
		}
		decoded, err := Unescape(val.In(tagText))
		if err != nil {
			rerr = err
			return "", false
		}
		repl := EscapeAttr(fn(decoded))
		return Substr(tagText, 0, val.Start) + repl + Substr(tagText, val.End, len(tagText)), true
	})
	if rerr != nil {
		return "", rerr
	}
	return out, nil
}

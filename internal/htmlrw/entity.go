package htmlrw

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
)

// ErrInvalidEntity reports a numeric character reference whose payload is
// not 1-8 hex digits (after decimal references are normalized to hex).
var ErrInvalidEntity = errors.New("htmlrw: invalid numeric entity")

// entityRe matches hex, decimal and named character references. The x
// prefix is case-insensitive; entity names are not.
var entityRe = regexp.MustCompile(`&(?:#[xX]([0-9a-fA-F]+);|#([0-9]+);|([a-zA-Z][a-zA-Z0-9]*);)`)

// namedEntities resolves entity names beyond the four standard ones
// handled inline in Unescape. Unknown names pass through verbatim.
var namedEntities = map[string]string{
	"apos":   "'",
	"nbsp":   " ",
	"copy":   "©",
	"reg":    "®",
	"deg":    "°",
	"middot": "·",
	"laquo":  "«",
	"raquo":  "»",
	"times":  "×",
	"divide": "÷",
	"ndash":  "–",
	"mdash":  "—",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
	"bull":   "•",
	"hellip": "…",
	"euro":   "€",
	"trade":  "™",
	"larr":   "←",
	"uarr":   "↑",
	"rarr":   "→",
	"darr":   "↓",
}

// decodeHex interprets 1-8 hex digits as a single code point. Code points
// outside the Unicode range decode to U+FFFD, matching string(rune)
// conversion.
func decodeHex(hex string) (string, error) {
	if len(hex) < 1 || len(hex) > 8 {
		return "", fmt.Errorf("%w: %q is not 1-8 hex digits", ErrInvalidEntity, hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidEntity, hex, err)
	}
	return string(rune(v)), nil
}

// Unescape decodes HTML character references in text to literal Unicode.
// Unrecognized entity names are left as-is. Numeric references with an
// out-of-format payload make the whole call fail.
func Unescape(text string) (string, error) {
	var derr error
	out := SubstituteFunc(entityRe, text, func(m Match, doc string) (string, bool) {
		if derr != nil {
			return "", false
		}
		switch {
		case m.Group(1).Present():
			s, err := decodeHex(m.Group(1).In(doc))
			if err != nil {
				derr = err
				return "", false
			}
			return s, true
		case m.Group(2).Present():
			// Decimal references are re-expressed as hex so format and
			// overflow checks live in one place.
			dec := m.Group(2).In(doc)
			n, err := strconv.ParseUint(dec, 10, 64)
			if err != nil {
				derr = fmt.Errorf("%w: &#%s;", ErrInvalidEntity, dec)
				return "", false
			}
			s, err := decodeHex(strconv.FormatUint(n, 16))
			if err != nil {
				derr = err
				return "", false
			}
			return s, true
		default:
			switch name := m.Group(3).In(doc); name {
			case "amp":
				return "&", true
			case "lt":
				return "<", true
			case "gt":
				return ">", true
			case "quot":
				return `"`, true
			default:
				if s, ok := namedEntities[name]; ok {
					return s, true
				}
				return "", false
			}
		}
	})
	if derr != nil {
		return "", derr
	}
	return out, nil
}

// EscapeAttr escapes text for insertion into an attribute value. Both
// quote styles are escaped since the surrounding markup may use either.
func EscapeAttr(text string) string {
	return html.EscapeString(text)
}

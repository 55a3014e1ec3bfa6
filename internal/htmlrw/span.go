// Package htmlrw rewrites attribute values inside HTML begin-tags without
// building a DOM. Tags are located by a linear-time regex scan, attributes
// are parsed positionally, and everything outside the rewritten value spans
// is carried through byte for byte.
package htmlrw

// Span is a half-open [Start, End) byte range into the string it was
// produced from. Byte offsets come from the regexp engine and therefore
// always fall on rune boundaries.
type Span struct {
	Start int
	End   int
}

// noSpan marks a capture group that did not participate in its match.
// Distinct from a present zero-length span.
var noSpan = Span{-1, -1}

// Present reports whether the span refers to actual text. A zero-length
// span is present; an absent capture group is not.
func (s Span) Present() bool { return s.Start >= 0 }

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.Present() {
		return 0
	}
	return s.End - s.Start
}

// In returns the text the span covers within its source string.
func (s Span) In(text string) string {
	if !s.Present() {
		return ""
	}
	return Substr(text, s.Start, s.End)
}

// Shift re-offsets the span by delta, converting between the coordinate
// space of a substring and the string it was cut from. Absent spans stay
// absent.
func (s Span) Shift(delta int) Span {
	if !s.Present() {
		return s
	}
	return Span{s.Start + delta, s.End + delta}
}

// Substr returns text[start:end). start at or past end yields the empty
// string, and end past the end of text means "through end of string".
func Substr(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

package markdown

// Text is one piece of report text: either raw markdown still to be
// converted, or HTML that was already rendered upstream. The tag travels
// with the value so no caller has to guess from the content.
type Text struct {
	value    string
	rendered bool
}

// Plain wraps raw markdown text.
func Plain(s string) Text { return Text{value: s} }

// Rendered wraps text that is already HTML.
func Rendered(html string) Text { return Text{value: html, rendered: true} }

// IsRendered reports whether the text is already HTML.
func (t Text) IsRendered() bool { return t.rendered }

// String returns the text as given, without conversion.
func (t Text) String() string { return t.value }

// HTML returns the text as HTML, converting through c only when the text
// is still markdown.
func (t Text) HTML(c *Converter) (string, error) {
	if t.rendered {
		return t.value, nil
	}
	return c.ToHTML([]byte(t.value))
}

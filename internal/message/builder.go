package message

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"

	"github.com/rohit455273/EmailR/internal/inline"
	"github.com/rohit455273/EmailR/internal/markdown"
	"github.com/rohit455273/EmailR/internal/templates"
)

// Mode selects how images end up inside the message.
type Mode string

const (
	// ModeInline embeds images as base64 data URIs inside the HTML body.
	ModeInline Mode = "inline"
	// ModeCID embeds images as MIME parts referenced through cid: URLs.
	ModeCID Mode = "cid"
)

// Builder renders Emails into MIME messages.
type Builder struct {
	conv    *markdown.Converter
	layout  *templates.Layout
	baseDir string
	mode    Mode
}

// NewBuilder returns a builder resolving relative image references against
// baseDir. A nil converter or layout selects the defaults.
func NewBuilder(baseDir string, mode Mode, conv *markdown.Converter, layout *templates.Layout) *Builder {
	if conv == nil {
		conv = markdown.DefaultConverter()
	}
	if layout == nil {
		layout = templates.DefaultLayout()
	}
	return &Builder{conv: conv, layout: layout, baseDir: baseDir, mode: mode}
}

// Build renders e into a MIME message. In ModeCID the returned attachment
// set lists the image parts embedded in the message; in ModeInline it is
// nil.
func (b *Builder) Build(e Email) (*mail.Msg, *inline.AttachmentSet, error) {
	doc, err := b.renderHTML(e)
	if err != nil {
		return nil, nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(e.From); err != nil {
		return nil, nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(e.To...); err != nil {
		return nil, nil, fmt.Errorf("set recipients: %w", err)
	}
	msg.Subject(e.Subject)

	switch b.mode {
	case ModeCID:
		res, err := inline.CIDImages(doc, b.baseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("extract images: %w", err)
		}
		msg.SetBodyString(mail.TypeTextHTML, res.HTML)
		for _, name := range res.Attachments.Names() {
			att, _ := res.Attachments.Get(name)
			err := msg.EmbedReader(name, bytes.NewReader(att.Data),
				mail.WithFileContentID(name),
				mail.WithFileContentType(mail.ContentType(att.ContentType)))
			if err != nil {
				return nil, nil, fmt.Errorf("embed %s: %w", name, err)
			}
		}
		return msg, res.Attachments, nil
	default:
		html, err := inline.Images(doc, b.baseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("inline images: %w", err)
		}
		msg.SetBodyString(mail.TypeTextHTML, html)
		return msg, nil, nil
	}
}

// renderHTML converts the three text sections and wraps them in the
// layout.
func (b *Builder) renderHTML(e Email) (string, error) {
	header, err := e.Header.HTML(b.conv)
	if err != nil {
		return "", fmt.Errorf("render header: %w", err)
	}
	body, err := e.Body.HTML(b.conv)
	if err != nil {
		return "", fmt.Errorf("render body: %w", err)
	}
	footer, err := e.Footer.HTML(b.conv)
	if err != nil {
		return "", fmt.Errorf("render footer: %w", err)
	}
	return b.layout.Render(templates.LayoutData{
		Subject: e.Subject,
		Header:  template.HTML(header),
		Body:    template.HTML(body),
		Footer:  template.HTML(footer),
	})
}

// Package message composes report emails: it renders the semantic email
// object (header, body, footer) to HTML, embeds images and assembles the
// MIME message.
package message

import (
	"context"

	"github.com/wneessen/go-mail"

	"github.com/rohit455273/EmailR/internal/markdown"
)

// Email is the semantic email object. Header, Body and Footer are report
// text in either markdown or pre-rendered HTML form.
type Email struct {
	From    string
	To      []string
	Subject string
	Header  markdown.Text
	Body    markdown.Text
	Footer  markdown.Text
}

// Sender delivers a built message. Implementations own the transport and
// its credentials.
type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// Package templates wraps rendered report fragments in a styled HTML email
// layout.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

//go:embed layout/email.html.tmpl
var layoutFS embed.FS

// LayoutData carries the fragments the layout interpolates. Header, Body
// and Footer are already-rendered HTML.
type LayoutData struct {
	Subject string
	Header  template.HTML
	Body    template.HTML
	Footer  template.HTML
}

// Layout renders LayoutData into a complete HTML document.
type Layout struct {
	tmpl *template.Template
}

// DefaultLayout returns the embedded email layout.
func DefaultLayout() *Layout {
	tmpl := template.Must(template.ParseFS(layoutFS, "layout/email.html.tmpl"))
	return &Layout{tmpl: tmpl}
}

// LoadLayout reads and parses a custom layout template from disk. The
// template sees the same LayoutData fields as the embedded one.
func LoadLayout(path string) (*Layout, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return &Layout{tmpl: tmpl}, nil
}

// Render executes the layout with the given data.
func (l *Layout) Render(data LayoutData) (string, error) {
	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// Command emailr composes report emails from markdown sources. Each job
// in the YAML config renders markdown to HTML, embeds referenced images
// either as data URIs or as Content-ID attachments, and writes the
// assembled MIME message to an .eml file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/rohit455273/EmailR/internal/chart"
	"github.com/rohit455273/EmailR/internal/markdown"
	"github.com/rohit455273/EmailR/internal/message"
	"github.com/rohit455273/EmailR/internal/templates"
	"github.com/rohit455273/EmailR/internal/ziputil"
)

// job describes one report email.
type job struct {
	Source    string     `yaml:"source"` // glob of markdown files, combined in match order
	Subject   string     `yaml:"subject"`
	From      string     `yaml:"from"`
	To        []string   `yaml:"to"`
	Output    string     `yaml:"output"`               // .eml path
	Mode      string     `yaml:"mode,omitempty"`       // inline (default) or cid
	Header    string     `yaml:"header,omitempty"`     // markdown
	Footer    string     `yaml:"footer,omitempty"`     // markdown
	Template  string     `yaml:"template,omitempty"`   // custom layout template path
	ImagesZip string     `yaml:"images_zip,omitempty"` // cid mode: export attachments here
	Charts    []chartJob `yaml:"charts,omitempty"`
}

// chartJob pre-renders an HTML chart snippet to a PNG the markdown can
// reference as a local image.
type chartJob struct {
	HTML   string `yaml:"html"`
	Output string `yaml:"output"`
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "emailr.yaml", "Path to YAML config describing report jobs")
	flag.Parse()

	jobs, err := loadConfig(configPath)
	if err != nil {
		log.Fatal("failed to load config", "path", configPath, "err", err)
	}

	executeJobs(jobs)
}

// loadConfig reads and parses the YAML configuration file.
func loadConfig(configPath string) ([]job, error) {
	cfgBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var jobs []job
	if err := yaml.Unmarshal(cfgBytes, &jobs); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return jobs, nil
}

// executeJobs processes all jobs from the configuration.
func executeJobs(jobs []job) {
	for _, j := range jobs {
		if err := executeJob(j); err != nil {
			log.Error("job failed", "source", j.Source, "err", err)
		}
	}
}

// executeJob composes one report email end to end.
func executeJob(j job) error {
	matches, err := findMatches(j.Source)
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(matches[0])

	if err := renderCharts(j.Charts, baseDir); err != nil {
		return err
	}

	combined, err := combineMarkdownFiles(matches, "\n\n---\n\n")
	if err != nil {
		return err
	}

	mode, err := embedMode(j.Mode)
	if err != nil {
		return err
	}

	var layout *templates.Layout
	if j.Template != "" {
		layout, err = templates.LoadLayout(j.Template)
		if err != nil {
			return err
		}
	}

	builder := message.NewBuilder(baseDir, mode, nil, layout)
	msg, atts, err := builder.Build(message.Email{
		From:    j.From,
		To:      j.To,
		Subject: j.Subject,
		Header:  markdown.Plain(j.Header),
		Body:    markdown.Plain(combined),
		Footer:  markdown.Plain(j.Footer),
	})
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(j.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := msg.WriteToFile(j.Output); err != nil {
		return fmt.Errorf("write eml: %w", err)
	}
	log.Info("composed", "output", j.Output, "files", len(matches))

	if j.ImagesZip != "" && atts != nil && atts.Len() > 0 {
		if err := ziputil.ExportAttachments(atts, j.ImagesZip); err != nil {
			return fmt.Errorf("export images: %w", err)
		}
		log.Info("exported images", "zip", j.ImagesZip, "count", atts.Len())
	}

	return nil
}

// embedMode maps the config value to a builder mode.
func embedMode(s string) (message.Mode, error) {
	switch s {
	case "", "inline":
		return message.ModeInline, nil
	case "cid":
		return message.ModeCID, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// renderCharts pre-renders chart snippets into the job's base directory.
func renderCharts(charts []chartJob, baseDir string) error {
	for _, c := range charts {
		snippet, err := os.ReadFile(c.HTML)
		if err != nil {
			return fmt.Errorf("read chart %s: %w", c.HTML, err)
		}
		out := c.Output
		if !filepath.IsAbs(out) {
			out = filepath.Join(baseDir, out)
		}
		if err := chart.ToPNG(string(snippet), out); err != nil {
			return fmt.Errorf("render chart %s: %w", c.HTML, err)
		}
		log.Info("rendered chart", "html", c.HTML, "output", out)
	}
	return nil
}

// findMatches finds all files matching the glob pattern.
func findMatches(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS("."), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matches for %s", pattern)
	}
	return matches, nil
}

// combineMarkdownFiles reads and combines multiple markdown files.
func combineMarkdownFiles(files []string, separator string) (string, error) {
	var parts []string
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", f, err)
		}
		parts = append(parts, string(content))
	}
	return strings.Join(parts, separator), nil
}

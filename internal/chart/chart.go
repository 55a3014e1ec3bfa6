// Package chart renders HTML chart snippets to PNG files using headless
// Chrome, so reports can reference charts as ordinary local images.
package chart

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Options configures chart rendering.
type Options struct {
	// Viewport size in pixels.
	Width  int
	Height int

	// Timeout for Chrome operations
	Timeout time.Duration

	// Path to Chrome binary (uses default if empty)
	ChromeBin string
}

// DefaultOptions returns sensible defaults for chart rendering.
func DefaultOptions() Options {
	return Options{
		Width:     900,
		Height:    600,
		Timeout:   30 * time.Second,
		ChromeBin: os.Getenv("CHROME_BIN"),
	}
}

// ToPNG renders HTML content to a PNG file at the output path.
func ToPNG(htmlContent, outputPath string) error {
	return ToPNGWithOptions(htmlContent, outputPath, DefaultOptions())
}

// ToPNGWithOptions renders HTML content to a PNG file with custom options.
func ToPNGWithOptions(htmlContent, outputPath string, opts Options) error {
	tmpFile, err := writeTempHTML(htmlContent)
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile)

	ctx, cancel, err := setupChromeContext(opts)
	if err != nil {
		return err
	}
	defer cancel()

	shot, err := capturePNG(ctx, tmpFile, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, shot, 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}

	return nil
}

// writeTempHTML writes HTML content to a temporary file.
func writeTempHTML(htmlContent string) (string, error) {
	tmpFile, err := os.CreateTemp("", "chart-*.html")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmpFile.WriteString(htmlContent); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}

	tmpFile.Close()
	return tmpFile.Name(), nil
}

// setupChromeContext creates a Chrome context with appropriate options.
func setupChromeContext(opts Options) (context.Context, context.CancelFunc, error) {
	chromeOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.WindowSize(opts.Width, opts.Height),
		chromedp.Flag("allow-file-access-from-files", true),
	)

	if opts.ChromeBin != "" {
		chromeOpts = append(chromeOpts, chromedp.ExecPath(opts.ChromeBin))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), chromeOpts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, timeoutCancel := context.WithTimeout(ctx, timeout)

	cancel := func() {
		timeoutCancel()
		ctxCancel()
		allocCancel()
	}

	return ctx, cancel, nil
}

// capturePNG uses Chrome to render an HTML file and screenshot the page.
func capturePNG(ctx context.Context, htmlPath string, opts Options) ([]byte, error) {
	var shot []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			shot, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("chromedp: %w", err)
	}

	return shot, nil
}

package pdf

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Rasterizer converts a standalone HTML page into PDF bytes
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

// ChromiumRasterizer prints HTML to PDF through headless Chromium
type ChromiumRasterizer struct {
	execPath string
	timeout  time.Duration
}

// NewChromiumRasterizer creates a rasterizer. execPath may be empty to use
// the Chromium found on PATH.
func NewChromiumRasterizer(execPath string, timeout time.Duration) *ChromiumRasterizer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromiumRasterizer{execPath: execPath, timeout: timeout}
}

// Rasterize navigates a fresh headless browser to the page and prints it.
// Page CSS controls size and margins, so printing uses the defaults plus
// backgrounds.
func (r *ChromiumRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(runCtx, r.timeout)
	defer cancelTimeout()

	var pdfBuf []byte
	dataURL := "data:text/html," + url.PathEscape(html)
	err := chromedp.Run(runCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if perr == nil {
				pdfBuf = buf
			}
			return perr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromium print failed: %w", err)
	}
	return pdfBuf, nil
}

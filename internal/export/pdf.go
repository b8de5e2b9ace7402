package export

import (
	"context"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/lee777maker/Job-Applier-sub000/internal/document"
)

// A4 paper size and margins in inches, held constant so the PDF paginates
// exactly like the on-screen preview.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.5

	pdfTimeout = 60 * time.Second
)

// ToPDF renders the sections through headless Chrome and paginates them
// with the devtools print command. Chrome or Chromium must be installed.
// The input section list is never mutated.
func ToPDF(ctx context.Context, sections document.Sections) ([]byte, error) {
	html := BuildHTML(sections)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, pdfTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "pdf rendering failed", Cause: err}
	}
	return pdf, nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const renderTimeout = 60 * time.Second

// A4 in inches, 15mm margins.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.59
)

// GenerateLibroClasesPDF renders the book to PDF bytes through a headless
// browser. The browser is acquired and torn down inside this call; every
// exit path releases it.
func GenerateLibroClasesPDF(ctx context.Context, data *LibroClasesData) ([]byte, error) {
	html := BuildHTML(data)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	renderCtx, cancelRender := context.WithTimeout(browserCtx, renderTimeout)
	defer cancelRender()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(renderCtx,
		chromedp.Navigate("about:blank"),
		setDocumentContent(html),
		printToPDF(&pdf),
	)
	if err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}

	log.Printf("[INFO] libro de clases rendered: course=%s scope=%s size=%dB in %s",
		data.Course.CourseId, data.Scope, len(pdf), time.Since(start).Round(time.Millisecond))
	return pdf, nil
}

// SaveLibroClasesPDF renders and writes the book to path.
func SaveLibroClasesPDF(ctx context.Context, data *LibroClasesData, path string) error {
	pdf, err := GenerateLibroClasesPDF(ctx, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir PDF: %w", err)
	}
	return nil
}

// setDocumentContent injects the built HTML into the blank page's main
// frame instead of serving it over HTTP.
func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}

func printToPDF(out *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		buf, _, err := page.PrintToPDF().
			WithPaperWidth(paperWidthIn).
			WithPaperHeight(paperHeightIn).
			WithMarginTop(marginIn).
			WithMarginBottom(marginIn).
			WithMarginLeft(marginIn).
			WithMarginRight(marginIn).
			WithPrintBackground(true).
			Do(ctx)
		if err != nil {
			return err
		}
		*out = buf
		return nil
	})
}

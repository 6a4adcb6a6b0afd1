package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"material-issue-sheet/models"
)

//go:embed templates/order_sheet.html
var orderSheetTemplate string

// PrintService renders an order sheet as a printable PDF through headless Chrome
type PrintService struct {
	chromePath string
	timeout    time.Duration
	tmpl       *template.Template
	logger     *zap.Logger
}

// NewPrintService creates a new PrintService. An empty chromePath triggers detection.
func NewPrintService(chromePath string, timeout time.Duration, logger *zap.Logger) (*PrintService, error) {
	tmpl, err := template.New("order_sheet").Parse(orderSheetTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &PrintService{
		chromePath: chromePath,
		timeout:    timeout,
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

// Ensure PrintService implements OrderSheetWriter
var _ OrderSheetWriter = (*PrintService)(nil)

func (s *PrintService) Extension() string   { return ".pdf" }
func (s *PrintService) ContentType() string { return "application/pdf" }

// detectChromePath returns the first Chrome/Chromium executable found, or "" to let chromedp search
func detectChromePath() string {
	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

type printRow struct {
	Cells  []any
	Title  bool
	Spacer bool
}

// RenderHTML renders the order sheet grid as an HTML table
func (s *PrintService) RenderHTML(sheet *models.OrderSheet) (string, error) {
	merged := make(map[int]bool)
	for _, m := range sheet.Merges {
		merged[m.StartRow] = true
	}

	rows := make([]printRow, 0, len(sheet.Rows))
	for i, cells := range sheet.Rows {
		rows = append(rows, printRow{
			Cells:  cells,
			Title:  merged[i] && len(cells) > 0,
			Spacer: len(cells) == 0,
		})
	}

	data := struct {
		Title   string
		Columns int
		Widths  []float64
		Rows    []printRow
	}{
		Title:   sheet.FileBaseName,
		Columns: len(sheet.ColumnWidths),
		Widths:  sheet.ColumnWidths,
		Rows:    rows,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Write prints the rendered order sheet to PDF
func (s *PrintService) Write(ctx context.Context, sheet *models.OrderSheet, out io.Writer) error {
	html, err := s.RenderHTML(sheet)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("table"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// US letter, landscape
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.logger.Info("order sheet printed", zap.String("file", sheet.FileBaseName), zap.Int("bytes", len(pdfBuf)))
	if _, err := out.Write(pdfBuf); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

package pdf

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

const maxWorkers = 4

type Processor struct {
	logger logger.Logger
}

func NewProcessor(log logger.Logger) *Processor {
	return &Processor{
		logger: log,
	}
}

// ExtractText extracts per-page plain text and joins the pages in order with
// newline separators. Pages are read with bounded parallelism; the indexed
// result slice keeps the output deterministic.
func (p *Processor) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return "", err
	}

	numPages := pdfReader.NumPage()
	pages := make([]string, numPages)

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxWorkers)

	for i := 1; i <= numPages; i++ {
		pageNum := i
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return ctx.Err()
			}

			page := pdfReader.Page(pageNum)
			if page.V.IsNull() {
				return nil
			}

			text, err := page.GetPlainText(nil)
			if err != nil {
				// A single broken page should not lose the rest of the
				// document; the classifier works on whatever text survives.
				p.logger.Warn("Failed to extract page text",
					logger.Int("page", pageNum),
					logger.Error(err),
				)
				return nil
			}

			pages[pageNum-1] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(pages, "\n"), nil
}

package html

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

type Processor struct {
	logger logger.Logger
}

func NewProcessor(log logger.Logger) *Processor {
	return &Processor{
		logger: log,
	}
}

// ExtractText decodes the bytes as UTF-8 with lossy replacement of invalid
// sequences, strips markup, and collapses inter-element whitespace to single
// spaces.
func (p *Processor) ExtractText(_ context.Context, data []byte) (string, error) {
	html := strings.ToValidUTF8(string(data), "�")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// Package document turns downloaded bytes into plain text, dispatching on
// file extension.
package document

import (
	"context"
	"strings"

	"github.com/feichai0017/inquiry-reader/internal/document/html"
	"github.com/feichai0017/inquiry-reader/internal/document/pdf"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

// Materializer holds the registered processors, keyed by lower-case
// extension without the dot. A kind with no registered processor is the
// "unavailable" variant: extraction degrades to empty text instead of
// failing, and the caller treats the document as unparseable.
type Materializer struct {
	processors map[string]Processor
	logger     logger.Logger
}

// NewMaterializer registers the default processors: PDF and HTML.
func NewMaterializer(log logger.Logger) *Materializer {
	m := &Materializer{
		processors: make(map[string]Processor),
		logger:     log,
	}

	m.Register("pdf", pdf.NewProcessor(log))

	htmlProc := html.NewProcessor(log)
	m.Register("html", htmlProc)
	m.Register("htm", htmlProc)

	return m
}

// NewEmptyMaterializer has no processors registered; every kind is
// unavailable. Used to model missing extraction capabilities.
func NewEmptyMaterializer(log logger.Logger) *Materializer {
	return &Materializer{
		processors: make(map[string]Processor),
		logger:     log,
	}
}

// Register installs a processor for one extension.
func (m *Materializer) Register(ext string, p Processor) {
	m.processors[strings.ToLower(strings.TrimPrefix(ext, "."))] = p
}

// ExtractText returns the plain text of data for the given extension, or ""
// when no processor is available or extraction yields nothing.
func (m *Materializer) ExtractText(ctx context.Context, data []byte, ext string) string {
	key := strings.ToLower(strings.TrimPrefix(ext, "."))
	proc, ok := m.processors[key]
	if !ok {
		m.logger.Warn("No text extractor available",
			logger.String("extension", key),
		)
		return ""
	}

	text, err := proc.ExtractText(ctx, data)
	if err != nil {
		m.logger.Warn("Text extraction failed",
			logger.String("extension", key),
			logger.Error(err),
		)
		return ""
	}

	return text
}

package document

import (
	"context"
)

// Processor extracts plain text from one document kind.
type Processor interface {
	// ExtractText returns the document's plain text, or an error when the
	// bytes cannot be parsed as this kind.
	ExtractText(ctx context.Context, data []byte) (string, error)
}

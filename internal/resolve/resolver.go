// Package resolve cross-references extracted invoice identifiers against the
// remote invoice table.
package resolve

import (
	"context"
	"strings"

	"github.com/feichai0017/inquiry-reader/internal/models"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

// BatchSize is the number of identifiers sent per equality-in-set query.
const BatchSize = 50

type Resolver struct {
	store  RecordStore
	logger logger.Logger
}

func NewResolver(store RecordStore, log logger.Logger) *Resolver {
	return &Resolver{
		store:  store,
		logger: log,
	}
}

// Resolve queries the store in batches of BatchSize and merges the results
// into a mapping keyed by the store's own key value, upper-cased — the
// stored case is not trusted to match the extractor's. Identifiers with no
// matching row are simply absent. The input is expected deduplicated, so
// batches are disjoint; an earlier batch's entry is never overwritten.
func (r *Resolver) Resolve(ctx context.Context, ids []string) (map[string]models.InvoiceRecord, error) {
	out := make(map[string]models.InvoiceRecord)
	if len(ids) == 0 {
		return out, nil
	}

	for start := 0; start < len(ids); start += BatchSize {
		end := start + BatchSize
		if end > len(ids) {
			end = len(ids)
		}

		records, err := r.store.QueryByKeys(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}

		for _, rec := range records {
			key := strings.ToUpper(rec.SupplierInvoiceNo)
			if key == "" {
				continue
			}
			if _, ok := out[key]; ok {
				continue
			}
			out[key] = rec
		}
	}

	r.logger.Debug("Resolved invoice identifiers",
		logger.Int("requested", len(ids)),
		logger.Int("matched", len(out)),
	)

	return out, nil
}

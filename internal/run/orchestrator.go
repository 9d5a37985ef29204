// Package run sequences the pipeline: download, materialize, classify,
// extract, resolve, draft, log.
package run

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feichai0017/inquiry-reader/internal/classify"
	"github.com/feichai0017/inquiry-reader/internal/document"
	"github.com/feichai0017/inquiry-reader/internal/draft"
	"github.com/feichai0017/inquiry-reader/internal/extract"
	"github.com/feichai0017/inquiry-reader/internal/models"
	"github.com/feichai0017/inquiry-reader/internal/resolve"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

// Downloader fetches one object's bytes.
type Downloader interface {
	Download(ctx context.Context, path string) ([]byte, error)
}

type Orchestrator struct {
	storage      Downloader
	materializer *document.Materializer
	resolver     *resolve.Resolver
	logger       logger.Logger
	now          func() time.Time
}

func NewOrchestrator(storage Downloader, mat *document.Materializer, resolver *resolve.Resolver, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		storage:      storage,
		materializer: mat,
		resolver:     resolver,
		logger:       log,
		now:          time.Now,
	}
}

// ProcessFiles runs the pipeline over the selected paths, one file fully
// processed before the next begins. Per-item failures are reported and
// skipped; nothing aborts the remaining files. Returns per-file results for
// display and the accumulated run log.
func (o *Orchestrator) ProcessFiles(ctx context.Context, paths []string) ([]models.FileResult, []models.RunLogEntry) {
	log := o.logger.With(logger.String("run_id", uuid.NewString()))

	results := make([]models.FileResult, 0, len(paths))
	var entries []models.RunLogEntry

	for i, path := range paths {
		log.Info(fmt.Sprintf("%d/%d • %s", i+1, len(paths), path))

		res := o.processFile(ctx, log, path, &entries)
		results = append(results, res)
	}

	return results, entries
}

func (o *Orchestrator) processFile(ctx context.Context, log logger.Logger, path string, entries *[]models.RunLogEntry) models.FileResult {
	res := models.FileResult{Path: path}

	data, err := o.storage.Download(ctx, path)
	if err != nil {
		log.Error("Download failed",
			logger.String("file", path),
			logger.Error(err),
		)
		res.Skipped = true
		res.SkipReason = "download failed"
		return res
	}

	text := o.materializer.ExtractText(ctx, data, extension(path))
	if text == "" {
		log.Warn("Could not parse file, skipping",
			logger.String("file", path),
		)
		res.Skipped = true
		res.SkipReason = "unparseable"
		return res
	}

	if !classify.IsPaymentInquiry(text) {
		log.Info("Document does not look like a payment inquiry, skipping",
			logger.String("file", path),
		)
		res.Skipped = true
		res.SkipReason = "not a payment inquiry"
		return res
	}

	invoiceIDs := extract.InvoiceIDs(text)
	emails := extract.Emails(text)

	// Deliberate simple tie-break: the lexicographically smallest address is
	// "the" vendor email.
	vendorEmail := ""
	if len(emails) > 0 {
		vendorEmail = emails[0]
	}

	res.InvoiceIDs = invoiceIDs
	res.VendorEmail = vendorEmail

	log.Info("Extracted identifiers",
		logger.String("file", path),
		logger.Strings("invoiceIds", invoiceIDs),
		logger.String("vendorEmail", vendorEmail),
	)

	if len(invoiceIDs) == 0 {
		d := draft.Email("Vendor", vendorEmail, draft.PlaceholderInvoiceID, nil)
		res.Drafts = append(res.Drafts, d)
		*entries = append(*entries, models.RunLogEntry{
			File:      path,
			InvoiceNo: nil,
			Status:    "Unknown",
			Action:    "Drafted – needs invoice number",
			Timestamp: o.timestamp(),
		})
		return res
	}

	// One lookup per file, not per run: repeated identifiers across files are
	// re-queried on purpose.
	lookup, err := o.resolver.Resolve(ctx, invoiceIDs)
	if err != nil {
		log.Error("Invoice lookup failed, drafting as not found",
			logger.String("file", path),
			logger.Error(err),
		)
		lookup = map[string]models.InvoiceRecord{}
	}

	for _, invNo := range invoiceIDs {
		var rec *models.InvoiceRecord
		if r, ok := lookup[invNo]; ok {
			rec = &r
		}

		d := draft.Email(vendorName(rec, vendorEmail), vendorEmail, invNo, rec)
		res.Drafts = append(res.Drafts, d)

		no := invNo
		*entries = append(*entries, models.RunLogEntry{
			File:      path,
			InvoiceNo: &no,
			Status:    rec.StatusOrDefault("Not Found"),
			Action:    "Drafted",
			Timestamp: o.timestamp(),
		})
	}

	return res
}

// vendorName picks the record's supplier name, else the title-cased local
// part of the detected vendor email, else "Vendor".
func vendorName(rec *models.InvoiceRecord, vendorEmail string) string {
	if rec != nil && rec.SupplierName != nil && *rec.SupplierName != "" {
		return *rec.SupplierName
	}
	if vendorEmail != "" {
		local, _, _ := strings.Cut(vendorEmail, "@")
		return draft.TitleCase(local)
	}
	return "Vendor"
}

func (o *Orchestrator) timestamp() string {
	return o.now().UTC().Format(time.RFC3339)
}

func extension(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}

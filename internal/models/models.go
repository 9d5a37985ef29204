package models

// InvoiceRecord is a read-only snapshot of one row of the remote invoice
// table, keyed by the supplier invoice number. Optional columns are explicit
// pointers; absence means the column was NULL.
type InvoiceRecord struct {
	SupplierInvoiceNo   string
	SupplierName        *string
	InvoiceDate         *string
	SupplierInvoiceDate *string
	TotalInvoiceAmount  *string
	Currency            *string
	Status              *string
	Comments            *string
}

// StatusOrDefault returns the record status, or fallback when the column is
// NULL or empty.
func (r *InvoiceRecord) StatusOrDefault(fallback string) string {
	if r == nil || r.Status == nil || *r.Status == "" {
		return fallback
	}
	return *r.Status
}

// DraftEmail is a rendered reply. Never persisted, only displayed and logged.
type DraftEmail struct {
	Subject string
	Body    string
}

// RunLogEntry is one line of the per-run log, appended once per
// (file, invoice id) pair, or once per file when no id was found.
type RunLogEntry struct {
	File      string
	InvoiceNo *string
	Status    string
	Action    string
	Timestamp string // UTC, ISO-8601 with trailing Z
}

// FileResult collects what one processed file produced, for display by the
// caller.
type FileResult struct {
	Path        string
	Skipped     bool
	SkipReason  string
	InvoiceIDs  []string
	VendorEmail string
	Drafts      []DraftEmail
}

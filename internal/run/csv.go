package run

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/feichai0017/inquiry-reader/internal/models"
)

var csvHeader = []string{"file", "invoice_no", "status", "action", "timestamp"}

// WriteCSV exports the run log as delimited text. A nil invoice number is an
// empty column.
func WriteCSV(w io.Writer, entries []models.RunLogEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		invoiceNo := ""
		if e.InvoiceNo != nil {
			invoiceNo = *e.InvoiceNo
		}
		record := []string{e.File, invoiceNo, e.Status, e.Action, e.Timestamp}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile exports the run log to path, creating or truncating it.
func WriteCSVFile(path string, entries []models.RunLogEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, entries)
}

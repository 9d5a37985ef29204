package resolve

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/feichai0017/inquiry-reader/config"
	"github.com/feichai0017/inquiry-reader/internal/models"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
)

// RecordStore is the equality-in-set query capability over the invoice table.
type RecordStore interface {
	QueryByKeys(ctx context.Context, keys []string) ([]models.InvoiceRecord, error)
}

// PostgresStore reads the invoices table over database/sql with the pgx
// driver.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(cfg *config.Config, log logger.Logger) (*PostgresStore, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{
		db:     db,
		logger: log,
	}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// QueryByKeys implements RecordStore.
func (s *PostgresStore) QueryByKeys(ctx context.Context, keys []string) ([]models.InvoiceRecord, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(keys))
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = k
	}

	query := fmt.Sprintf(`
		select supplier_invoice_no, supplier_name, invoice_date, supplier_invoice_date,
		       total_invoice_amount, currency, status, comments
		from invoices
		where supplier_invoice_no in (%s)
	`, strings.Join(placeholders, ", "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var records []models.InvoiceRecord
	for rows.Next() {
		var (
			rec models.InvoiceRecord

			supplierName        sql.NullString
			invoiceDate         sql.NullString
			supplierInvoiceDate sql.NullString
			totalAmount         sql.NullString
			currency            sql.NullString
			status              sql.NullString
			comments            sql.NullString
		)

		if err := rows.Scan(
			&rec.SupplierInvoiceNo,
			&supplierName,
			&invoiceDate,
			&supplierInvoiceDate,
			&totalAmount,
			&currency,
			&status,
			&comments,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}

		rec.SupplierName = nullableString(supplierName)
		rec.InvoiceDate = nullableString(invoiceDate)
		rec.SupplierInvoiceDate = nullableString(supplierInvoiceDate)
		rec.TotalInvoiceAmount = nullableString(totalAmount)
		rec.Currency = nullableString(currency)
		rec.Status = nullableString(status)
		rec.Comments = nullableString(comments)

		records = append(records, rec)
	}

	return records, rows.Err()
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

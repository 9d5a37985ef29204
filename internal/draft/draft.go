// Package draft renders reply emails for payment-status inquiries. Pure
// functions only: identical inputs always produce identical strings.
package draft

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/feichai0017/inquiry-reader/internal/models"
)

var titleCaser = cases.Title(language.English)

// PlaceholderInvoiceID is drafted against when a document yielded no
// identifier at all.
const PlaceholderInvoiceID = "(not provided)"

// Email renders a subject/body pair for one detected invoice identifier.
// A nil record produces the not-found template; otherwise the body states
// the status, lists the fields that are present, and closes with a
// status-specific line. vendorEmail is part of the drafting contract but the
// current templates address the vendor by name only.
func Email(vendorName, vendorEmail, invoiceID string, rec *models.InvoiceRecord) models.DraftEmail {
	name := vendorName
	if name == "" {
		name = "Team"
	}

	subject := fmt.Sprintf("Re: Payment Inquiry – %s", invoiceID)

	if rec == nil {
		body := fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thanks for reaching out. We couldn't find invoice %s in our records. "+
				"Could you please confirm the invoice number, amount, and date, or attach the invoice copy?\n\n"+
				"Regards,\nAccounts Payable",
			name, invoiceID,
		)
		return models.DraftEmail{Subject: subject, Body: body}
	}

	status := titleCaser.String(deref(rec.Status))

	currency := deref(rec.Currency)
	if currency == "" {
		currency = "USD"
	}
	invDate := deref(rec.InvoiceDate)
	if invDate == "" {
		invDate = deref(rec.SupplierInvoiceDate)
	}

	var details []string
	if amount := deref(rec.TotalInvoiceAmount); amount != "" {
		details = append(details, fmt.Sprintf("Amount: %s %s", currency, amount))
	}
	if invDate != "" {
		details = append(details, fmt.Sprintf("Invoice Date: %s", invDate))
	}
	if comments := deref(rec.Comments); comments != "" {
		details = append(details, fmt.Sprintf("Notes: %s", comments))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nHere’s the status for invoice %s: %s.\n", name, invoiceID, status)

	if len(details) > 0 {
		b.WriteString("\n")
		for i, d := range details {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("- " + d)
		}
		b.WriteString("\n")
	}

	switch status {
	case "Paid":
		b.WriteString("\nIf you haven't received the remittance advice, let us know and we'll resend.")
	case "Queued", "Processing":
		b.WriteString("\nWe expect completion soon; we'll notify you once it posts.")
	case "On Hold":
		b.WriteString("\nThis is pending additional review. We'll reach out if we need anything further.")
	case "Rejected", "Unpaid":
		b.WriteString("\nPlease review the details above and let us know if any corrections are needed.")
	}

	b.WriteString("\n\nRegards,\nAccounts Payable")

	return models.DraftEmail{Subject: subject, Body: b.String()}
}

// TitleCase exposes the caser used for statuses so callers derive vendor
// names (for example from an email local part) the same way.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

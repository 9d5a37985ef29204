package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feichai0017/inquiry-reader/internal/models"
)

func str(s string) *string { return &s }

func rec(status string) *models.InvoiceRecord {
	return &models.InvoiceRecord{
		SupplierInvoiceNo: "INV-1001",
		Status:            str(status),
	}
}

func TestEmail_NotFound(t *testing.T) {
	d := Email("Acme Supplies", "ap@acme.com", "INV-404X", nil)

	assert.Equal(t, "Re: Payment Inquiry – INV-404X", d.Subject)
	assert.Contains(t, d.Body, "Hi Acme Supplies,")
	assert.Contains(t, d.Body, "couldn't find invoice INV-404X")
	assert.Contains(t, d.Body, "confirm the invoice number, amount, and date")
	assert.Contains(t, d.Body, "Regards,\nAccounts Payable")
}

func TestEmail_EmptyVendorNameFallsBackToTeam(t *testing.T) {
	d := Email("", "", "INV-1", nil)
	assert.Contains(t, d.Body, "Hi Team,")
}

func TestEmail_PaidMentionsRemittanceAdvice(t *testing.T) {
	d := Email("Acme", "", "INV-1001", rec("Paid"))
	assert.Contains(t, d.Body, "status for invoice INV-1001: Paid.")
	assert.Contains(t, d.Body, "remittance advice")
}

func TestEmail_OnHoldMentionsPendingReview(t *testing.T) {
	d := Email("Acme", "", "INV-1001", rec("On Hold"))
	assert.Contains(t, d.Body, "pending additional review")
}

func TestEmail_StatusCaseNormalized(t *testing.T) {
	for _, raw := range []string{"on hold", "ON HOLD", "On Hold", "oN hOlD"} {
		d := Email("Acme", "", "INV-1001", rec(raw))
		assert.Contains(t, d.Body, "On Hold", "raw status %q", raw)
		assert.Contains(t, d.Body, "pending additional review", "raw status %q", raw)
	}
}

func TestEmail_QueuedAndProcessing(t *testing.T) {
	for _, s := range []string{"Queued", "processing"} {
		d := Email("Acme", "", "INV-1001", rec(s))
		assert.Contains(t, d.Body, "we'll notify you once it posts")
	}
}

func TestEmail_RejectedAndUnpaidAskForCorrections(t *testing.T) {
	for _, s := range []string{"Rejected", "unpaid"} {
		d := Email("Acme", "", "INV-1001", rec(s))
		assert.Contains(t, d.Body, "corrections")
	}
}

func TestEmail_UnknownStatusHasNoClosingLine(t *testing.T) {
	d := Email("Acme", "", "INV-1001", rec("Archived"))

	assert.Contains(t, d.Body, "status for invoice INV-1001: Archived.")
	assert.NotContains(t, d.Body, "remittance advice")
	assert.NotContains(t, d.Body, "pending additional review")
	assert.NotContains(t, d.Body, "corrections")
	assert.NotContains(t, d.Body, "once it posts")
}

func TestEmail_DetailsOnlyWhenPresent(t *testing.T) {
	r := rec("Paid")
	r.TotalInvoiceAmount = str("1250.00")
	r.Comments = str("Partial shipment")

	d := Email("Acme", "", "INV-1001", r)
	assert.Contains(t, d.Body, "- Amount: USD 1250.00")
	assert.Contains(t, d.Body, "- Notes: Partial shipment")
	assert.NotContains(t, d.Body, "Invoice Date:")
}

func TestEmail_CurrencyAndDateFallbacks(t *testing.T) {
	r := rec("Paid")
	r.TotalInvoiceAmount = str("900")
	r.Currency = str("EUR")
	r.SupplierInvoiceDate = str("2024-03-01")

	d := Email("Acme", "", "INV-1001", r)
	assert.Contains(t, d.Body, "Amount: EUR 900")
	assert.Contains(t, d.Body, "Invoice Date: 2024-03-01")
}

func TestEmail_NoDetailsNoBulletBlock(t *testing.T) {
	d := Email("Acme", "", "INV-1001", rec("Paid"))
	assert.NotContains(t, d.Body, "- ")
}

func TestEmail_Deterministic(t *testing.T) {
	r := rec("On Hold")
	r.TotalInvoiceAmount = str("10")

	first := Email("Acme", "a@b.co", "INV-1001", r)
	second := Email("Acme", "a@b.co", "INV-1001", r)
	assert.Equal(t, first, second)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Billing", TitleCase("billing"))
	assert.Equal(t, "Jane Doe", TitleCase("jane doe"))
}

func TestEmail_BodyStructure(t *testing.T) {
	r := rec("Paid")
	r.TotalInvoiceAmount = str("42")

	d := Email("Acme", "", "INV-1001", r)
	lines := strings.Split(d.Body, "\n")
	assert.Equal(t, "Hi Acme,", lines[0])
	assert.Equal(t, "Regards,", lines[len(lines)-2])
	assert.Equal(t, "Accounts Payable", lines[len(lines)-1])
}

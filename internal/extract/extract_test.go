package extract

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceIDs_ExplicitPrefix(t *testing.T) {
	ids := InvoiceIDs("Invoice No: ABC-12345. Remittance advice requested.")
	assert.Equal(t, []string{"ABC-12345"}, ids)
}

func TestInvoiceIDs_AllPatternShapes(t *testing.T) {
	text := "Invoice # XY-9001, reference INV-4455, also see PO20231201."
	ids := InvoiceIDs(text)

	assert.Contains(t, ids, "XY-9001")
	assert.Contains(t, ids, "4455")
	assert.Contains(t, ids, "PO20231201")
}

func TestInvoiceIDs_PatternOrderBeforePosition(t *testing.T) {
	// The bare-code shape matches AB1234 earlier in the text, but the
	// explicit-prefix pattern runs first, so its match leads the result.
	text := "code AB1234 then invoice no: ZZ-7777"
	ids := InvoiceIDs(text)
	require.Len(t, ids, 2)
	assert.Equal(t, "ZZ-7777", ids[0])
	assert.Equal(t, "AB1234", ids[1])
}

func TestInvoiceIDs_DedupKeepsFirstPosition(t *testing.T) {
	text := "invoice no: INV-4455 and again inv-4455 mentioned"
	ids := InvoiceIDs(text)

	count := 0
	for _, id := range ids {
		if id == "INV-4455" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestInvoiceIDs_TrimsPunctuationAndEnforcesLength(t *testing.T) {
	ids := InvoiceIDs("invoice no: ABCD-99).")
	require.NotEmpty(t, ids)
	assert.Equal(t, "ABCD-99", ids[0])

	for _, id := range ids {
		assert.GreaterOrEqual(t, len(id), 4)
	}
}

func TestInvoiceIDs_Idempotent(t *testing.T) {
	text := "Invoice # XY-9001, reference INV-4455, also see PO20231201 and inv_8888."
	first := InvoiceIDs(text)
	second := InvoiceIDs(text)
	assert.Equal(t, first, second)
}

func TestInvoiceIDs_NoDuplicatesNoShortValues(t *testing.T) {
	text := "inv 123 invoice no: AB-1 invoice # CDEF-22 CDEF-22 GH5678 GH5678"
	ids := InvoiceIDs(text)

	seen := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
		assert.GreaterOrEqual(t, len(id), 4)
	}
}

func TestInvoiceIDs_NoMatch(t *testing.T) {
	assert.Empty(t, InvoiceIDs("no identifiers in this text at all"))
}

func TestEmails_SortedUnique(t *testing.T) {
	text := "From: zed@vendor.com, cc ap@vendor.com, zed@vendor.com again"
	emails := Emails(text)

	assert.Equal(t, []string{"ap@vendor.com", "zed@vendor.com"}, emails)
	assert.True(t, sort.StringsAreSorted(emails))
}

func TestEmails_PreservesCaseFromText(t *testing.T) {
	emails := Emails("Reach Billing.Dept@Vendor.COM for details")
	assert.Equal(t, []string{"Billing.Dept@Vendor.COM"}, emails)
}

func TestEmails_Empty(t *testing.T) {
	assert.Empty(t, Emails("no addresses here"))
}

func TestEndToEndScenario(t *testing.T) {
	text := "Invoice No: ABC-12345. Remittance advice requested. Contact vendor@example.com"

	ids := InvoiceIDs(text)
	assert.Contains(t, ids, "ABC-12345")

	emails := Emails(text)
	assert.Equal(t, []string{"vendor@example.com"}, emails)
}

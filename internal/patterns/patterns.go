// Package patterns holds the static pattern library: invoice-identifier
// regexes, payment-intent keywords, and the email pattern. No state.
package patterns

import "regexp"

// InvoiceRegexes are applied in order; each captures the candidate
// identifier in group 1. The shapes are independent and all run against the
// same text: an explicit "invoice no/#/id" prefix, an INV-prefixed number,
// and a bare letter-prefix + digit code.
var InvoiceRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)invoice\s*(?:#|no\.?:?|id:?)\s*([A-Z0-9\-_/]{4,})`),
	regexp.MustCompile(`(?i)\bINV[-_/]?(\d{4,})\b`),
	regexp.MustCompile(`(?i)\b([A-Z]{2,5}\d{4,})\b`),
}

// PaymentIntentKeywords score inquiry intent; each contributes at most one
// point per document regardless of repeats.
var PaymentIntentKeywords = []string{
	"payment status", "paid?", "payment when", "remittance", "remittance advice",
	"payment date", "has it been paid", "when will i get paid", "invoice status",
	"payment confirmation", "receipt confirmation", "remit",
}

// EmailRegex matches candidate sender addresses in original-case text.
var EmailRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// IDTrimSet is stripped from both ends of a captured invoice identifier.
const IDTrimSet = ".,;: )("

// MinIDLength is the minimum accepted identifier length after trimming.
const MinIDLength = 4

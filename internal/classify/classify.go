// Package classify decides whether a block of text reads like a vendor
// payment-status inquiry.
package classify

import (
	"strings"

	"github.com/feichai0017/inquiry-reader/internal/patterns"
)

// IsPaymentInquiry scores the lower-cased text against the intent keyword
// list; each keyword counts once no matter how often it repeats. The gate is
// deliberately low-precision, high-recall: a false positive only wastes a
// drafted reply, a false negative silently drops a document.
func IsPaymentInquiry(text string) bool {
	low := strings.ToLower(text)

	score := 0
	for _, kw := range patterns.PaymentIntentKeywords {
		if strings.Contains(low, kw) {
			score++
		}
	}

	return (strings.Contains(low, "invoice") && score >= 1) || score >= 2
}

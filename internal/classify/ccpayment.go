package classify

import (
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// CCPaymentDetector identifies outgoing credit card payment legs by literal
// phrase containment in the description or payee.
type CCPaymentDetector struct {
	phrases []string
}

// NewCCPaymentDetector creates a detector over the given phrase list.
func NewCCPaymentDetector(phrases []string) *CCPaymentDetector {
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return &CCPaymentDetector{phrases: lowered}
}

// Detect proposes a transfer classification for a credit card payment, or
// nil for positive amounts, already-linked transactions, and non-matches.
func (d *CCPaymentDetector) Detect(txn model.Transaction) *Match {
	if !txn.Amount.IsNegative() || txn.Linked() {
		return nil
	}

	haystack := strings.ToLower(txn.Description + " " + txn.Payee)
	for _, phrase := range d.phrases {
		if strings.Contains(haystack, phrase) {
			return &Match{
				Category: model.CategoryTransfer,
				Reason:   model.Reason{Kind: model.ReasonAutoCCPayment},
			}
		}
	}
	return nil
}
